// Package imop implements the Porter-Duff composition operations
// used for mixing a graphic element with its backdrop.
// Porter and Duff presented in their paper 12 different composition operation,
// but the image/draw core package implements only the source-over-destination and source.
// This package is aimed to overcome the missing composite operations.
//
// It is used to cut the clipped silhouette out of the source image
// and to lay it over a solid backdrop when exporting the result.
package imop

import (
	"fmt"
	"image"
	"image/color"

	"github.com/esimov/clippy/utils"
)

const (
	Clear   = "clear"
	Copy    = "copy"
	Dst     = "dst"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	Xor     = "xor"
)

var compositeOps = []string{Clear, Copy, Dst, SrcOver, DstOver, SrcIn, DstIn, SrcOut, DstOut, Xor}

// Bitmap holds the result of a composition.
type Bitmap struct {
	Img *image.NRGBA
}

// Composite holds the currently active composition operation.
type Composite struct {
	current string
}

// NewBitmap allocates a transparent bitmap of the given size.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// InitOp initializes a new composition with source-over as the default operation.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
	}
}

// Set activates one of the supported composite operations.
func (op *Composite) Set(cop string) error {
	if !utils.Contains(compositeOps, cop) {
		return fmt.Errorf("unsupported composite operation: %q", cop)
	}
	op.current = cop
	return nil
}

// Get returns the currently active composite operation.
func (op *Composite) Get() string {
	return op.current
}

// Draw composes src over the dst backdrop using the active operation and writes
// the outcome into bitmap. All three images are addressed from their own origin;
// the composed area is the intersection of their sizes.
func (op *Composite) Draw(bitmap *Bitmap, src, dst image.Image) {
	sb, db, bb := src.Bounds(), dst.Bounds(), bitmap.Img.Bounds()
	dx := utils.Min(sb.Dx(), utils.Min(db.Dx(), bb.Dx()))
	dy := utils.Min(sb.Dy(), utils.Min(db.Dy(), bb.Dy()))

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			s := color.NRGBAModel.Convert(src.At(sb.Min.X+x, sb.Min.Y+y)).(color.NRGBA)
			d := color.NRGBAModel.Convert(dst.At(db.Min.X+x, db.Min.Y+y)).(color.NRGBA)
			bitmap.Img.SetNRGBA(bb.Min.X+x, bb.Min.Y+y, op.compose(s, d))
		}
	}
}

// compose applies the alpha composition formula on a single pixel pair.
// Colors are treated as non-premultiplied.
func (op *Composite) compose(s, d color.NRGBA) color.NRGBA {
	var (
		as = float64(s.A) / 255
		ab = float64(d.A) / 255
		fa float64 // weight of the source
		fb float64 // weight of the backdrop
	)

	switch op.current {
	case Clear:
	case Copy:
		fa = 1
	case Dst:
		fb = 1
	case SrcOver:
		fa, fb = 1, 1-as
	case DstOver:
		fa, fb = 1-ab, 1
	case SrcIn:
		fa = ab
	case DstIn:
		fb = as
	case SrcOut:
		fa = 1 - ab
	case DstOut:
		fb = 1 - as
	case Xor:
		fa, fb = 1-ab, 1-as
	}

	ao := as*fa + ab*fb
	if ao == 0 {
		return color.NRGBA{}
	}
	channel := func(cs, cb uint8) uint8 {
		v := (as*fa*float64(cs) + ab*fb*float64(cb)) / ao
		return uint8(utils.Clamp(v+0.5, 0, 255))
	}
	return color.NRGBA{
		R: channel(s.R, d.R),
		G: channel(s.G, d.G),
		B: channel(s.B, d.B),
		A: uint8(utils.Clamp(ao*255+0.5, 0, 255)),
	}
}
