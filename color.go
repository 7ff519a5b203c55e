package canvas

import (
	"image/color"

	pcolor "github.com/gogpu/canvas/internal/color"
	intImage "github.com/gogpu/canvas/internal/image"
)

// layoutFor returns the protocol color layout of surfaces in format f.
// 16-bit surfaces take 555 colors.
func layoutFor(f Format) pcolor.Layout {
	switch f {
	case FormatXRGB1555, FormatRGB565:
		return pcolor.Layout555
	default:
		return pcolor.Layout888
	}
}

// nativeColor converts a protocol color into a raw pixel of format f.
func nativeColor(c uint32, f Format) uint32 {
	switch f {
	case FormatXRGB1555:
		return c & 0x7fff
	case FormatRGB565:
		return intImage.ConvertPixel(c&0x7fff, FormatXRGB1555, FormatRGB565)
	default:
		return c
	}
}

// brushColor normalizes a protocol color into an opaque 16-bit color.
func brushColor(c uint32, l pcolor.Layout) color.RGBA64 {
	n := pcolor.Normalize(c, l)
	return color.RGBA64{R: n.R, G: n.G, B: n.B, A: n.A}
}
