// Package glyph describes pre-rasterized text runs and turns them into
// coverage masks.
//
// A String is a run of glyph bitmaps, each placed at a pixel position. All
// glyphs of a String share one bit depth, selected by its Flags. The canvas
// asks a Source for the combined run mask and composites a brush through it.
package glyph

import (
	"image"

	intImage "github.com/gogpu/canvas/internal/image"
)

// Flags select the encoding of the glyphs in a String.
type Flags uint8

const (
	// FlagRasterA1 marks 1-bit glyph bitmaps, most significant bit first.
	FlagRasterA1 Flags = 1 << iota
	// FlagRasterA4 marks 4-bit glyph bitmaps, high nibble first.
	FlagRasterA4
	// FlagRasterA8 marks 8-bit glyph bitmaps.
	FlagRasterA8
	// FlagVector marks vector glyph outlines, which are not rasterized.
	FlagVector
)

// Depth returns the raster bit depth selected by f. A1 takes precedence
// over A4, and A4 over A8. The second result is false for vector or
// unknown encodings.
func (f Flags) Depth() (int, bool) {
	switch {
	case f&FlagRasterA1 != 0:
		return 1, true
	case f&FlagRasterA4 != 0:
		return 4, true
	case f&FlagRasterA8 != 0:
		return 8, true
	default:
		return 0, false
	}
}

// FlagsForDepth returns the raster flag for depth 1, 4 or 8, or 0.
func FlagsForDepth(depth int) Flags {
	switch depth {
	case 1:
		return FlagRasterA1
	case 4:
		return FlagRasterA4
	case 8:
		return FlagRasterA8
	default:
		return 0
	}
}

// Glyph is one glyph bitmap.
type Glyph struct {
	// RenderPos is the pen position of the glyph in destination space.
	RenderPos image.Point

	// Origin is the offset of the bitmap's top-left corner from RenderPos.
	Origin image.Point

	Width, Height int

	// Data holds Height rows of RowBytes(Width, depth) bytes each.
	Data []byte
}

// Bounds returns the destination rectangle covered by the bitmap.
func (g *Glyph) Bounds() image.Rectangle {
	p := g.RenderPos.Add(g.Origin)
	return image.Rectangle{Min: p, Max: p.Add(image.Pt(g.Width, g.Height))}
}

// Coverage returns the raw coverage value of bitmap pixel (x, y) at depth.
// Out-of-range pixels and short data read as zero.
func (g *Glyph) Coverage(x, y, depth int) uint8 {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return 0
	}
	bit := x * depth
	i := y*RowBytes(g.Width, depth) + bit/8
	if i >= len(g.Data) {
		return 0
	}
	b := g.Data[i]
	switch depth {
	case 1:
		return (b >> (7 - uint(bit%8))) & 1
	case 4:
		return (b >> (4 - uint(bit%8))) & 0x0f
	default:
		return b
	}
}

// RowBytes returns the byte length of one bitmap row. Rows are padded to a
// whole byte.
func RowBytes(width, depth int) int {
	return (width*depth + 7) / 8
}

// String is a run of glyphs sharing one encoding.
type String struct {
	Flags  Flags
	Glyphs []Glyph
}

// Bounds returns the union of the glyph bitmaps.
func (s *String) Bounds() image.Rectangle {
	var r image.Rectangle
	for i := range s.Glyphs {
		r = r.Union(s.Glyphs[i].Bounds())
	}
	return r
}

// Source produces the combined coverage mask of a String.
//
// RunMask returns a mask in the coverage format for depth and the
// destination position of its top-left pixel. The mask is nil when the
// string covers no pixels. The canvas reads the mask only for the duration
// of one call.
type Source interface {
	RunMask(s *String, depth int) (mask *intImage.Buf, pos image.Point)
}
