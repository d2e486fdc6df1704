package clippy

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func triangle() HandleSet {
	return NewHandleSet().
		Append(Vertex{X: 1, Y: 0}).
		Append(Vertex{X: 1, Y: 1})
}

func TestMask_Triangle(t *testing.T) {
	assert := assert.New(t)

	m := Mask(triangle(), image.Pt(10, 10))
	assert.Equal(image.Rect(0, 0, 10, 10), m.Bounds())
	assert.Equal(uint8(0xff), m.AlphaAt(8, 2).A)
	assert.Equal(uint8(0), m.AlphaAt(2, 8).A)
}

func TestMask_OpenPolygonIsEmpty(t *testing.T) {
	s := NewHandleSet().Append(Vertex{X: 1, Y: 1})
	m := Mask(s, image.Pt(4, 4))
	for _, a := range m.Pix {
		assert.Zero(t, a)
	}
	assert.Equal(t, image.Rectangle{}, Mask(triangle(), image.Point{}).Bounds())
}

func TestSilhouette_CutsPolygon(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}
	img := image.NewNRGBA(image.Rect(5, 5, 15, 15))
	draw.Draw(img, img.Bounds(), image.NewUniform(red), image.Point{}, draw.Src)

	out := Silhouette(img, triangle(), nil)
	assert.Equal(t, image.Rect(0, 0, 10, 10), out.Bounds())
	assert.Equal(t, red, out.NRGBAAt(8, 2))
	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(2, 8))
}

func TestSilhouette_Backdrop(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	draw.Draw(img, img.Bounds(), image.NewUniform(red), image.Point{}, draw.Src)

	out := Silhouette(img, triangle(), white)
	assert.Equal(t, red, out.NRGBAAt(8, 2))
	assert.Equal(t, white, out.NRGBAAt(2, 8))
}

func TestImage_EncodeDecode(t *testing.T) {
	assert := assert.New(t)

	img := image.NewGray(image.Rect(0, 0, 3, 2))
	for _, ext := range SupportedExtensions {
		var buf bytes.Buffer
		assert.NoError(EncodeImage(&buf, img, ext), ext)

		dec, err := DecodeImage(&buf)
		assert.NoError(err, ext)
		assert.Equal(image.Rect(0, 0, 3, 2), dec.Bounds(), ext)
	}

	err := EncodeImage(&bytes.Buffer{}, img, ".tiff")
	assert.True(errors.Is(err, ErrUnsupportedFormat))

	var buf bytes.Buffer
	assert.NoError(encodeImg(&buf, img))
	_, err = png.Decode(&buf)
	assert.NoError(err)

	_, err = DecodeImage(bytes.NewReader([]byte("not an image")))
	assert.Error(err)
}

func TestImage_FitScreen(t *testing.T) {
	small := image.NewNRGBA(image.Rect(0, 0, 100, 50))
	assert.Same(t, small, fitScreen(small, maxScreenX, maxScreenY))

	large := image.NewNRGBA(image.Rect(0, 0, 2732, 1000))
	fit := fitScreen(large, maxScreenX, maxScreenY)
	assert.Equal(t, maxScreenX, fit.Bounds().Dx())
	assert.Equal(t, 500, fit.Bounds().Dy())
}
