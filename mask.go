package clippy

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/esimov/clippy/imop"
	"golang.org/x/image/vector"
)

// Mask rasterizes the polygon described by the handle set into an alpha mask
// of the given size. Sets with fewer than three vertices enclose no area and
// produce an empty mask.
func Mask(s HandleSet, size image.Point) *image.Alpha {
	mask := image.NewAlpha(image.Rectangle{Max: size})
	verts := PathVertices(s)
	if len(verts) < minClosedVertices || size.X <= 0 || size.Y <= 0 {
		return mask
	}

	w, h := float64(size.X), float64(size.Y)
	z := vector.NewRasterizer(size.X, size.Y)
	z.DrawOp = draw.Src

	x, y := verts[0].Point(w, h)
	z.MoveTo(float32(x), float32(y))
	for _, v := range verts[1:] {
		x, y = v.Point(w, h)
		z.LineTo(float32(x), float32(y))
	}
	z.ClosePath()
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return mask
}

// Silhouette cuts the polygon out of img, leaving the area outside of it transparent.
// When backdrop is not nil the silhouette is laid over a plain backdrop of that color.
func Silhouette(img image.Image, s HandleSet, backdrop color.Color) *image.NRGBA {
	b := img.Bounds()
	mask := Mask(s, b.Size())

	// Rebase the source to the origin so all operands share the mask's coordinates.
	src := image.NewNRGBA(image.Rectangle{Max: b.Size()})
	draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)

	op := imop.InitOp()
	cut := imop.NewBitmap(src.Bounds())
	// DstIn and SrcOver are supported operations, so Set can't fail.
	_ = op.Set(imop.DstIn)
	op.Draw(cut, mask, src)

	if backdrop == nil {
		return cut.Img
	}

	out := imop.NewBitmap(src.Bounds())
	_ = op.Set(imop.SrcOver)
	op.Draw(out, cut.Img, image.NewUniform(backdrop))

	return out.Img
}
