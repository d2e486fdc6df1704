package clippy

import (
	"image"

	"gioui.org/f32"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

const (
	handleRadius = 6
	strokeWidth  = 2
)

// drawOverlay paints the live polygon over the wrapped child.
// Until the outline can be closed only its open edges are stroked.
func (h *Host) drawOverlay(gtx C, size image.Point) {
	verts := PathVertices(h.clipper.Handles())
	if len(verts) < 2 {
		return
	}
	if len(verts) > minClosedVertices {
		paint.FillShape(gtx.Ops, h.colors.fill,
			clip.Outline{Path: h.polygonPath(gtx, verts, size)}.Op(),
		)
	}
	paint.FillShape(gtx.Ops, h.colors.stroke,
		clip.Stroke{
			Path:  h.polygonPath(gtx, verts, size),
			Width: float32(gtx.Dp(unit.Dp(strokeWidth))),
		}.Op(),
	)
}

// polygonPath builds the outline through the vertices scaled to size.
func (h *Host) polygonPath(gtx C, verts []Vertex, size image.Point) clip.PathSpec {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(h.point(verts[0], size))
	for _, v := range verts[1:] {
		path.LineTo(h.point(v, size))
	}
	return path.End()
}

// drawHandles draws a marker at every vertex of the current session.
func (h *Host) drawHandles(gtx C, size image.Point) {
	r := gtx.Dp(unit.Dp(handleRadius))
	h.clipper.Handles().Each(func(hd Handle) bool {
		c := h.point(hd.Vertex, size).Round()
		rect := image.Rect(c.X-r, c.Y-r, c.X+r, c.Y+r)
		paint.FillShape(gtx.Ops, h.colors.handle, clip.Ellipse(rect).Op(gtx.Ops))
		return true
	})
}

// point converts a normalized vertex to a Gio f32.Point inside a box of the given size.
func (h *Host) point(v Vertex, size image.Point) f32.Point {
	x, y := v.Point(float64(size.X), float64(size.Y))
	return f32.Point{
		X: float32(x),
		Y: float32(y),
	}
}
