package clippy

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned when the output file extension has no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// SupportedExtensions lists the image file extensions accepted as source and silhouette output.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".bmp"}

// DecodeImage decodes an image and converts it to *image.NRGBA with min-point at (0, 0).
// The EXIF orientation of JPEG sources is honored.
func DecodeImage(r io.Reader) (*image.NRGBA, error) {
	src, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("could not decode the source image: %w", err)
	}
	return imaging.Clone(src), nil
}

// encodeImg encodes an image to a destination of type io.Writer.
// Files are encoded according to their extension, any other writer receives PNG,
// the only format keeping the transparent area around the silhouette.
func encodeImg(w io.Writer, img image.Image) error {
	switch w := w.(type) {
	case *os.File:
		return EncodeImage(w, img, filepath.Ext(w.Name()))
	default:
		return png.Encode(w, img)
	}
}

// EncodeImage encodes img in the format denoted by the file extension ext.
func EncodeImage(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case "", ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case ".bmp":
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// fitScreen returns the copy of img shown in the GUI window. Images larger than
// the maxW×maxH box are scaled down retaining their aspect ratio. Vertices are
// normalized, so a polygon drawn over the preview applies unchanged to the source.
func fitScreen(img *image.NRGBA, maxW, maxH int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return img
	}
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}
