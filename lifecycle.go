package clippy

import (
	"errors"
	"fmt"
	"log"
)

// State is the phase of a clipping session.
type State int

// The session phases. The toggle control only advances them in the
// Idle -> Clipping -> Complete -> Idle cycle.
const (
	Idle State = iota
	Clipping
	Complete
)

// ErrInvalidTransition is returned when a transition outside the session cycle is requested.
var ErrInvalidTransition = errors.New("invalid clipping state transition")

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Clipping:
		return "clipping"
	case Complete:
		return "complete"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Next returns the state the toggle control moves to from s.
func (s State) Next() State {
	switch s {
	case Idle:
		return Clipping
	case Clipping:
		return Complete
	}
	return Idle
}

// Label returns the caption of the toggle control while in state s.
func (s State) Label() string {
	switch s {
	case Clipping:
		return "Stop clipping"
	case Complete:
		return "Restart clipping"
	}
	return "Begin clipping"
}

// transition is an edge of the session cycle.
type transition struct {
	from, to State
}

// Clipper owns a single clipping session: its phase, the handle set built
// during it, the measured bounds of the wrapped element and the finalized path.
// A Clipper is driven from one event loop and is not safe for concurrent use.
type Clipper struct {
	state   State
	handles HandleSet
	bounds  Rect
	result  string
	done    bool

	onEnter    map[transition]func(*Clipper)
	onComplete func(string)
	logger     *log.Logger
}

// Option configures a Clipper.
type Option func(*Clipper)

// WithOnComplete registers the function receiving the finalized polygon path.
// It is called exactly once per Clipping -> Complete transition.
func WithOnComplete(fn func(path string)) Option {
	return func(c *Clipper) {
		c.onComplete = fn
	}
}

// WithBounds sets the initially measured rectangle.
func WithBounds(r Rect) Option {
	return func(c *Clipper) {
		c.bounds = r
	}
}

// WithLogger makes the Clipper report its state transitions.
func WithLogger(l *log.Logger) Option {
	return func(c *Clipper) {
		c.logger = l
	}
}

// NewClipper returns an idle Clipper.
func NewClipper(opts ...Option) *Clipper {
	c := &Clipper{
		state:   Idle,
		handles: NewHandleSet(),
	}
	c.onEnter = map[transition]func(*Clipper){
		{Idle, Clipping}:     (*Clipper).beginSession,
		{Clipping, Complete}: (*Clipper).completeSession,
		{Complete, Idle}:     (*Clipper).resetSession,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current phase.
func (c *Clipper) State() State {
	return c.state
}

// Transition moves the session to the requested state.
// Only the edges of the session cycle are accepted; any other request
// leaves the Clipper untouched and returns ErrInvalidTransition.
func (c *Clipper) Transition(to State) error {
	from := c.state
	hook, ok := c.onEnter[transition{from, to}]
	if !ok {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	c.state = to
	if c.logger != nil {
		c.logger.Printf("clipping state: %s -> %s", from, to)
	}
	hook(c)
	return nil
}

// Advance performs the next transition of the cycle and returns the new state.
// This is what the toggle control does when activated.
func (c *Clipper) Advance() State {
	// The next state is always a valid edge, so the error can't occur.
	_ = c.Transition(c.state.Next())
	return c.state
}

// Click records a pointer press at the viewport position (px, py).
// Handles are only added while clipping; the result reports whether one was added.
func (c *Clipper) Click(px, py float64) bool {
	if c.state != Clipping {
		return false
	}
	c.handles = c.handles.Append(MapToVertex(px, py, c.bounds))
	return true
}

// SetBounds updates the measured rectangle of the wrapped element.
// Existing vertices are normalized, so they follow the element when it is resized.
func (c *Clipper) SetBounds(r Rect) {
	c.bounds = r
}

// Bounds returns the last measured rectangle.
func (c *Clipper) Bounds() Rect {
	return c.bounds
}

// Handles returns a snapshot of the current handle set.
func (c *Clipper) Handles() HandleSet {
	return c.handles
}

// Path returns the live polygon path built from the current handle set.
func (c *Clipper) Path() string {
	return BuildPath(c.handles)
}

// Result returns the finalized polygon path of the last completed session.
// The boolean is false until a session completes and after it is restarted.
func (c *Clipper) Result() (string, bool) {
	return c.result, c.done
}

func (c *Clipper) beginSession() {
	c.handles = NewHandleSet()
}

// completeSession freezes the handle set and notifies the caller once.
// The state has already been switched to Complete when this runs.
func (c *Clipper) completeSession() {
	c.result = BuildPath(c.handles)
	c.done = true
	if c.onComplete != nil {
		c.onComplete(c.result)
	}
}

func (c *Clipper) resetSession() {
	c.result = ""
	c.done = false
	c.handles = NewHandleSet()
}
