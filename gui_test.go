package clippy

import (
	"errors"
	"image"
	"testing"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"gioui.org/io/router"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/stretchr/testify/assert"
)

func fixedChild(size image.Point) layout.Widget {
	return func(gtx C) D {
		return D{Size: size}
	}
}

func newTestContext(size image.Point) C {
	return C{
		Ops:         new(op.Ops),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Exact(size),
	}
}

// pressAt lays the host out, delivers e through an input router and lays the host out
// again, so that the press reaches the host the way a window would hand it over.
func pressAt(h *Host, e pointer.Event) {
	var r router.Router

	gtx := newTestContext(image.Pt(400, 300))
	h.Layout(gtx)
	r.Frame(gtx.Ops)
	r.Queue(e)

	gtx = newTestContext(image.Pt(400, 300))
	gtx.Queue = &r
	h.Layout(gtx)
}

func primaryPress(x, y float32) pointer.Event {
	return pointer.Event{
		Type:     pointer.Press,
		Source:   pointer.Mouse,
		Buttons:  pointer.ButtonPrimary,
		Position: f32.Pt(x, y),
	}
}

func TestHost_RequiresSingleChild(t *testing.T) {
	_, err := NewHost()
	assert.True(t, errors.Is(err, ErrInvalidStructure))

	_, err = NewHost(fixedChild(image.Pt(1, 1)), fixedChild(image.Pt(1, 1)))
	assert.True(t, errors.Is(err, ErrInvalidStructure))

	_, err = NewHost(nil)
	assert.True(t, errors.Is(err, ErrInvalidStructure))

	h, err := NewHost(fixedChild(image.Pt(1, 1)))
	assert.NoError(t, err)
	assert.Equal(t, Idle, h.Clipper().State())
}

func TestHost_LayoutMeasuresChild(t *testing.T) {
	assert := assert.New(t)

	h, err := NewHost(fixedChild(image.Pt(200, 100)))
	assert.NoError(err)
	assert.True(h.Clipper().Bounds().IsZero())

	h.Layout(newTestContext(image.Pt(400, 300)))
	assert.Equal(Rect{Left: 8, Top: 8, Right: 208, Bottom: 108, Width: 200, Height: 100}, h.Clipper().Bounds())

	assert.Equal(Clipping, h.Toggle())
	h.Layout(newTestContext(image.Pt(400, 300)))

	assert.True(h.Clipper().Click(108, 58))
	assert.Equal(Vertex{X: 0.5, Y: 0.5}, h.Clipper().Handles().Handles()[1].Vertex)
}

func TestHost_CompletionReachesCaller(t *testing.T) {
	h, err := NewHost(fixedChild(image.Pt(200, 100)))
	assert.NoError(t, err)

	var got []string
	h.OnComplete(func(path string) { got = append(got, path) })
	h.Layout(newTestContext(image.Pt(400, 300)))

	h.Toggle()
	h.Clipper().Click(208, 8)
	h.Clipper().Click(208, 108)
	h.Toggle()
	h.Layout(newTestContext(image.Pt(400, 300)))

	assert.Equal(t, []string{"0.00% 0.00%,100.00% 0.00%,100.00% 100.00%,0.00% 0.00%"}, got)
}

func TestHost_UnattachedChildYieldsZeroBounds(t *testing.T) {
	h, err := NewHost(fixedChild(image.Point{}))
	assert.NoError(t, err)

	h.Layout(newTestContext(image.Pt(400, 300)))
	assert.Equal(t, Rect{}, h.Clipper().Bounds())

	h.Toggle()
	h.Clipper().Click(50, 50)
	assert.Equal(t, Vertex{}, h.Clipper().Handles().Handles()[1].Vertex)
}

func TestHost_PointerPressAddsHandle(t *testing.T) {
	assert := assert.New(t)

	h, err := NewHost(fixedChild(image.Pt(200, 100)))
	assert.NoError(err)
	h.Toggle()

	pressAt(h, primaryPress(108, 58))
	handles := h.Clipper().Handles().Handles()
	assert.Len(handles, 2)
	assert.Equal(Handle{Key: 2, Vertex: Vertex{X: 0.5, Y: 0.5}}, handles[1])

	// Presses outside of the child are not captured.
	pressAt(h, primaryPress(300, 200))
	assert.Equal(2, h.Clipper().Handles().Len())
}

func TestHost_PointerPressIgnoredOutsideClipping(t *testing.T) {
	for _, toggles := range []int{0, 2} {
		h, err := NewHost(fixedChild(image.Pt(200, 100)))
		assert.NoError(t, err)
		for i := 0; i < toggles; i++ {
			h.Toggle()
		}
		state := h.Clipper().State()

		pressAt(h, primaryPress(108, 58))
		assert.Equal(t, 1, h.Clipper().Handles().Len(), state.String())
		assert.Equal(t, state, h.Clipper().State())
	}
}

func TestHost_PointerPressAfterStop(t *testing.T) {
	var r router.Router

	h, err := NewHost(fixedChild(image.Pt(200, 100)))
	assert.NoError(t, err)
	h.Toggle()

	// The hit area of the clipping frame is still registered when the session completes.
	gtx := newTestContext(image.Pt(400, 300))
	h.Layout(gtx)
	r.Frame(gtx.Ops)
	h.Toggle()
	r.Queue(primaryPress(108, 58))

	gtx = newTestContext(image.Pt(400, 300))
	gtx.Queue = &r
	h.Layout(gtx)

	assert.Equal(t, Complete, h.Clipper().State())
	assert.Equal(t, 1, h.Clipper().Handles().Len())
}

func TestHost_SecondaryButtonIgnored(t *testing.T) {
	h, err := NewHost(fixedChild(image.Pt(200, 100)))
	assert.NoError(t, err)
	h.Toggle()

	e := primaryPress(108, 58)
	e.Buttons = pointer.ButtonSecondary
	pressAt(h, e)
	assert.Equal(t, 1, h.Clipper().Handles().Len())
}

func TestHost_IsPrimaryPress(t *testing.T) {
	tests := []struct {
		name string
		e    pointer.Event
		want bool
	}{
		{"primary", pointer.Event{Type: pointer.Press, Source: pointer.Mouse, Buttons: pointer.ButtonPrimary}, true},
		{"secondary", pointer.Event{Type: pointer.Press, Source: pointer.Mouse, Buttons: pointer.ButtonSecondary}, false},
		{"tertiary", pointer.Event{Type: pointer.Press, Source: pointer.Mouse, Buttons: pointer.ButtonTertiary}, false},
		{"touch", pointer.Event{Type: pointer.Press, Source: pointer.Touch}, true},
		{"release", pointer.Event{Type: pointer.Release, Source: pointer.Mouse, Buttons: pointer.ButtonPrimary}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isPrimaryPress(tt.e), tt.name)
	}
}

func TestGui_WindowFitsScreen(t *testing.T) {
	for _, size := range []image.Point{{4000, 3000}, {3000, 400}, {400, 3000}, {maxPreviewX, maxPreviewY}} {
		img := fitScreen(image.NewNRGBA(image.Rectangle{Max: size}), maxPreviewX, maxPreviewY)
		g, err := NewGUI(img, "test")
		assert.NoError(t, err)
		assert.LessOrEqual(t, g.cfg.window.w, float32(maxScreenX), size)
		assert.LessOrEqual(t, g.cfg.window.h, float32(maxScreenY), size)
	}
}

func TestGui_WindowSize(t *testing.T) {
	g, err := NewGUI(image.NewNRGBA(image.Rect(0, 0, 300, 200)), "test")
	assert.NoError(t, err)
	assert.Equal(t, float32(300+2*padding), g.cfg.window.w)
	assert.Equal(t, float32(200+3*padding+controlsHeight), g.cfg.window.h)
	assert.NotNil(t, g.Host())
}
