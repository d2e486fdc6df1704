package clippy

import (
	"image"
	"strconv"
)

// Rect holds the on-screen box of the wrapped element, in pixels.
// The zero value means the element has not been measured yet.
type Rect struct {
	Left, Top     float64
	Right, Bottom float64
	Width, Height float64
}

// Element is anything which can report its client rectangle.
// The boolean result is false while the element is not attached to a rendering surface.
type Element interface {
	ClientRect() (image.Rectangle, bool)
}

// Measure returns the client rectangle of el.
// A nil or detached element yields the zero Rect.
func Measure(el Element) Rect {
	if el == nil {
		return Rect{}
	}
	r, ok := el.ClientRect()
	if !ok {
		return Rect{}
	}
	return RectFrom(r)
}

// RectFrom converts an integer rectangle to Rect.
func RectFrom(r image.Rectangle) Rect {
	r = r.Canon()
	return Rect{
		Left:   float64(r.Min.X),
		Top:    float64(r.Min.Y),
		Right:  float64(r.Max.X),
		Bottom: float64(r.Max.Y),
		Width:  float64(r.Dx()),
		Height: float64(r.Dy()),
	}
}

// IsZero reports whether the rectangle has no area, i.e. it was not measured.
func (r Rect) IsZero() bool {
	return r.Width <= 0 || r.Height <= 0
}

// WidthPx returns the width as a numeric string usable for CSS sizing.
// It is empty when the rectangle was not measured.
func (r Rect) WidthPx() string {
	if r.IsZero() {
		return ""
	}
	return strconv.FormatFloat(r.Width, 'f', -1, 64)
}

// HeightPx returns the height as a numeric string usable for CSS sizing.
// It is empty when the rectangle was not measured.
func (r Rect) HeightPx() string {
	if r.IsZero() {
		return ""
	}
	return strconv.FormatFloat(r.Height, 'f', -1, 64)
}

// Image returns the rectangle rounded to integer pixel coordinates.
func (r Rect) Image() image.Rectangle {
	return image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom))
}
