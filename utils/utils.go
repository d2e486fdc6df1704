package utils

import (
	"image/color"
	"strconv"
	"strings"
)

// Contains returns true if a value is available in the collection.
func Contains[T comparable](slice []T, value T) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}
	return false
}

// HexToRGBA converts a color expressed as hexadecimal string to RGBA color.
// The accepted forms are #rgb, #rrggbb and #rrggbbaa, with or without the leading hash.
// An invalid input returns opaque black.
func HexToRGBA(x string) color.NRGBA {
	x = strings.TrimPrefix(x, "#")
	if len(x) == 3 {
		x = string([]byte{x[0], x[0], x[1], x[1], x[2], x[2]})
	}
	if len(x) == 6 {
		x += "ff"
	}
	if len(x) != 8 {
		return color.NRGBA{A: 0xff}
	}
	v, err := strconv.ParseUint(x, 16, 32)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}
