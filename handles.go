package clippy

// seedKey is the key of the vertex every session starts with.
const seedKey = 1

// Handle is a vertex together with its insertion key.
type Handle struct {
	Key    int
	Vertex Vertex
}

// HandleSet is the ordered collection of polygon vertices built during a session.
// Keys are assigned on insertion, strictly increase and are never reused.
//
// A HandleSet is an immutable value: Append returns a new set and leaves the
// receiver untouched, so a snapshot handed out to a renderer never changes under it.
type HandleSet struct {
	handles []Handle
}

// NewHandleSet returns a set holding only the seed vertex (0%, 0%) at key 1.
func NewHandleSet() HandleSet {
	return HandleSet{handles: []Handle{{Key: seedKey}}}
}

// Append returns a copy of the set with v inserted at the next free key.
func (s HandleSet) Append(v Vertex) HandleSet {
	next := make([]Handle, len(s.handles), len(s.handles)+1)
	copy(next, s.handles)
	return HandleSet{handles: append(next, Handle{Key: s.maxKey() + 1, Vertex: v})}
}

func (s HandleSet) maxKey() int {
	if len(s.handles) == 0 {
		return 0
	}
	return s.handles[len(s.handles)-1].Key
}

// Len returns the number of handles, the seed included.
func (s HandleSet) Len() int {
	return len(s.handles)
}

// First returns the earliest inserted handle. It is the zero Handle for an empty set.
func (s HandleSet) First() Handle {
	if len(s.handles) == 0 {
		return Handle{}
	}
	return s.handles[0]
}

// Handles returns the handles in insertion order. The returned slice is a copy.
func (s HandleSet) Handles() []Handle {
	out := make([]Handle, len(s.handles))
	copy(out, s.handles)
	return out
}

// Vertices returns the vertices in insertion order.
func (s HandleSet) Vertices() []Vertex {
	out := make([]Vertex, len(s.handles))
	for i, h := range s.handles {
		out[i] = h.Vertex
	}
	return out
}

// Each calls fn for every handle in insertion order until fn returns false.
func (s HandleSet) Each(fn func(Handle) bool) {
	for _, h := range s.handles {
		if !fn(h) {
			return
		}
	}
}
