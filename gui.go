package clippy

import (
	"errors"
	"image"
	"image/color"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

const (
	maxScreenX = 1366
	maxScreenY = 768

	// controlsHeight is the room reserved below the image for the toggle and the readout.
	controlsHeight = 96
	padding        = 8

	// The largest image preview which keeps the window within maxScreenX×maxScreenY.
	maxPreviewX = maxScreenX - 2*padding
	maxPreviewY = maxScreenY - 3*padding - controlsHeight
)

var (
	defaultBkgColor    = color.NRGBA{R: 0x26, G: 0x26, B: 0x26, A: 0xff}
	defaultFillColor   = color.NRGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0x66}
	defaultStrokeColor = color.NRGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff}
	defaultHandleColor = color.NRGBA{R: 0xe9, G: 0x1e, B: 0x63, A: 0xff}
)

// ErrInvalidStructure is returned when the host is asked to wrap anything but a single child.
var ErrInvalidStructure = errors.New("clippy can only wrap a single element")

// imageElement is the laid out rectangle of the wrapped child, in window coordinates.
type imageElement struct {
	rect     image.Rectangle
	attached bool
}

func (e *imageElement) ClientRect() (image.Rectangle, bool) {
	return e.rect, e.attached
}

// Host wraps a single child widget and lets the user draw a clip polygon over it.
// It renders the child, the live polygon overlay, the handle markers, the toggle
// control and, once a session completes, the resulting clip-path declaration.
type Host struct {
	child   layout.Widget
	elem    imageElement
	clipper *Clipper
	theme   *material.Theme
	toggle  widget.Clickable

	colors struct {
		fill   color.NRGBA
		stroke color.NRGBA
		handle color.NRGBA
	}
}

// NewHost creates the host composition around exactly one child widget.
func NewHost(children ...layout.Widget) (*Host, error) {
	if len(children) != 1 || children[0] == nil {
		return nil, ErrInvalidStructure
	}
	h := &Host{
		child: children[0],
		theme: material.NewTheme(gofont.Collection()),
	}
	h.clipper = NewClipper()
	h.colors.fill = defaultFillColor
	h.colors.stroke = defaultStrokeColor
	h.colors.handle = defaultHandleColor

	return h, nil
}

// OnComplete registers the function receiving the finalized polygon path of every session.
func (h *Host) OnComplete(fn func(path string)) {
	WithOnComplete(fn)(h.clipper)
}

// Clipper gives access to the session state machine driven by the host.
func (h *Host) Clipper() *Clipper {
	return h.clipper
}

// SetColors overrides the overlay fill and the handle marker colors.
func (h *Host) SetColors(fill, handle color.NRGBA) {
	h.colors.fill = fill
	h.colors.stroke = color.NRGBA{R: fill.R, G: fill.G, B: fill.B, A: 0xff}
	h.colors.handle = handle
}

// Toggle activates the toggle control, advancing the session cycle.
func (h *Host) Toggle() State {
	return h.clipper.Advance()
}

// Layout lays out the host and processes the input collected since the previous frame.
func (h *Host) Layout(gtx C) D {
	for h.toggle.Clicked() {
		h.Toggle()
	}
	for _, ev := range gtx.Events(h) {
		if e, ok := ev.(pointer.Event); ok && isPrimaryPress(e) {
			h.clipper.Click(float64(e.Position.X), float64(e.Position.Y))
		}
	}

	return layout.UniformInset(unit.Dp(padding)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(h.layoutTarget),
			layout.Rigid(layout.Spacer{Height: unit.Dp(padding)}.Layout),
			layout.Rigid(h.layoutControls),
		)
	})
}

// layoutTarget renders the wrapped child with the overlay on top of it and
// measures the child's rectangle for the session.
func (h *Host) layoutTarget(gtx C) D {
	macro := op.Record(gtx.Ops)
	dims := h.child(gtx)
	call := macro.Stop()

	// The host is laid out at the window origin, so the child starts right after the inset.
	origin := image.Pt(gtx.Dp(unit.Dp(padding)), gtx.Dp(unit.Dp(padding)))
	h.elem.rect = image.Rectangle{Min: origin, Max: origin.Add(dims.Size)}
	h.elem.attached = dims.Size.X > 0 && dims.Size.Y > 0
	h.clipper.SetBounds(Measure(&h.elem))

	call.Add(gtx.Ops)
	h.drawOverlay(gtx, dims.Size)

	if h.clipper.State() == Clipping {
		h.drawHandles(gtx, dims.Size)

		// Capture clicks over the whole child. The hit area is registered
		// in window coordinates, so pointer positions arrive viewport relative.
		stack := op.Offset(origin.Mul(-1)).Push(gtx.Ops)
		area := clip.Rect(h.elem.rect).Push(gtx.Ops)
		pointer.InputOp{Tag: h, Types: pointer.Press}.Add(gtx.Ops)
		area.Pop()
		stack.Pop()
	}
	return dims
}

// isPrimaryPress reports whether e places a vertex: a touch, or a press of the primary mouse button.
func isPrimaryPress(e pointer.Event) bool {
	if e.Type != pointer.Press {
		return false
	}
	return e.Source != pointer.Mouse || e.Buttons.Contain(pointer.ButtonPrimary)
}

func (h *Host) layoutControls(gtx C) D {
	return layout.Flex{Axis: layout.Vertical, Alignment: layout.Start}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return material.Button(h.theme, &h.toggle, h.clipper.State().Label()).Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
		layout.Rigid(func(gtx C) D {
			var readout string
			if res, ok := h.clipper.Result(); ok {
				readout = Declaration(res)
			}
			lbl := material.Body2(h.theme, readout)
			lbl.Color = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
			return lbl.Layout(gtx)
		}),
	)
}

// Gui is the basic struct containing all of the information needed for the UI operation.
type Gui struct {
	cfg struct {
		window struct {
			w     float32
			h     float32
			title string
		}
		color struct {
			background color.NRGBA
		}
	}
	host *Host
}

// NewGUI initializes the Gio interface showing img as the clipped element.
func NewGUI(img image.Image, title string) (*Gui, error) {
	g := &Gui{}

	src := paint.NewImageOp(img)
	host, err := NewHost(func(gtx C) D {
		// One image pixel per dp, matching the window size set in dps.
		return widget.Image{
			Src:   src,
			Scale: 1,
			Fit:   widget.Unscaled,
		}.Layout(gtx)
	})
	if err != nil {
		return nil, err
	}
	g.host = host
	g.initWindow(img.Bounds().Dx(), img.Bounds().Dy(), title)

	return g, nil
}

// initWindow sets the window size, in dps, so that the image and the controls fit in.
func (g *Gui) initWindow(w, h int, title string) {
	g.cfg.window.w = float32(w + 2*padding)
	g.cfg.window.h = float32(h + 3*padding + controlsHeight)
	g.cfg.window.title = title
	g.cfg.color.background = defaultBkgColor
}

// Host returns the host composition shown by the window.
func (g *Gui) Host() *Host {
	return g.host
}

// Run is the core method of the Gio GUI application.
// It processes the window events until the window is closed.
func (g *Gui) Run() error {
	w := app.NewWindow(
		app.Title(g.cfg.window.title),
		app.Size(unit.Dp(g.cfg.window.w), unit.Dp(g.cfg.window.h)),
	)

	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			paint.Fill(gtx.Ops, g.cfg.color.background)
			g.host.Layout(gtx)
			e.Frame(gtx.Ops)
		case key.Event:
			if e.State != key.Press {
				continue
			}
			switch e.Name {
			case key.NameEscape:
				w.Close()
			case key.NameSpace, key.NameReturn, key.NameEnter:
				g.host.Toggle()
				w.Invalidate()
			}
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}
