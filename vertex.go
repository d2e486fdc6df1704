package clippy

import (
	"strconv"

	"github.com/esimov/clippy/utils"
)

// Vertex is a single polygon corner normalized to the measured rectangle.
// Both coordinates lie in the [0, 1] interval.
type Vertex struct {
	X, Y float64
}

// XPercent returns the horizontal coordinate as a percentage string, e.g. "12.50%".
func (v Vertex) XPercent() string {
	return percent(v.X)
}

// YPercent returns the vertical coordinate as a percentage string.
func (v Vertex) YPercent() string {
	return percent(v.Y)
}

// String returns the vertex in the "x% y%" form used by the CSS polygon() function.
func (v Vertex) String() string {
	return v.XPercent() + " " + v.YPercent()
}

// Point returns the vertex position inside a w×h box.
func (v Vertex) Point(w, h float64) (float64, float64) {
	return v.X * w, v.Y * h
}

func percent(n float64) string {
	return strconv.FormatFloat(n*100, 'f', 2, 64) + "%"
}

// MapToVertex converts a viewport relative pointer position to a vertex relative to r.
// The element origin is subtracted before dividing by its size, and the result is
// clamped to the rectangle. An unmeasured (zero sized) axis maps to 0.
func MapToVertex(px, py float64, r Rect) Vertex {
	return Vertex{
		X: normalize(px-r.Left, r.Width),
		Y: normalize(py-r.Top, r.Height),
	}
}

func normalize(d, size float64) float64 {
	if size <= 0 {
		return 0
	}
	return utils.Clamp(d/size, 0, 1)
}
