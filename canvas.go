package canvas

import (
	"image"

	"github.com/gogpu/canvas/glyph"
	"github.com/gogpu/canvas/region"
)

// Source is anything whose pixels can be drawn: an *Image or a Canvas.
type Source interface {
	Pixels() *Image
}

// Span is a horizontal run of Width pixels starting at (X, Y).
type Span struct {
	X, Y, Width int
}

// Rect returns the one pixel high rectangle covered by the span.
func (s Span) Rect() image.Rectangle {
	return image.Rect(s.X, s.Y, s.X+s.Width, s.Y+1)
}

// ScaleMode selects how a scaled blit samples its source.
type ScaleMode uint8

const (
	// ScaleNearest samples the nearest source pixel.
	ScaleNearest ScaleMode = iota

	// ScaleInterpolate samples with bilinear filtering.
	ScaleInterpolate
)

// String returns the mode name.
func (m ScaleMode) String() string {
	switch m {
	case ScaleNearest:
		return "Nearest"
	case ScaleInterpolate:
		return "Interpolate"
	default:
		return "Unknown"
	}
}

// ScaleParams describes a scaled blit of SrcRect onto DstRect.
type ScaleParams struct {
	SrcRect image.Rectangle
	DstRect image.Rectangle
	Mode    ScaleMode
}

// ClipType selects between an unclipped draw and a rectangle list.
type ClipType uint8

const (
	ClipNone ClipType = iota
	ClipRects
)

// Clip restricts text drawing. A ClipRects clip with no rectangles
// clips everything.
type Clip struct {
	Type  ClipType
	Rects []image.Rectangle
}

// apply intersects rgn with the clip.
func (c Clip) apply(rgn region.Region) region.Region {
	if c.Type != ClipRects {
		return rgn
	}
	return rgn.Intersect(region.New(c.Rects...))
}

// ROPD is a descriptor-style raster operation mask used by text drawing.
type ROPD uint16

// ROPD bits.
const (
	ROPDInversSrc ROPD = 1 << iota
	ROPDInversBrush
	ROPDInversDest
	ROPDOpPut
	ROPDOpOr
	ROPDOpAnd
	ROPDOpXor
	ROPDOpBlackness
	ROPDOpWhiteness
	ROPDOpInvers
	ROPDInversRes
)

// Text is a glyph-string draw request.
//
// BackArea, when not empty, is filled with BackBrush before the glyphs
// are composited with ForeBrush. A non-empty BackArea requires ForeMode
// to be ROPDOpPut.
type Text struct {
	Str       *glyph.String
	BackArea  image.Rectangle
	ForeBrush Brush
	BackBrush Brush
	ForeMode  ROPD
	BackMode  ROPD
}

// Canvas is a raster drawing surface.
//
// Rectangles are half-open. Unless stated otherwise, source offsets give
// the destination position of the source origin: destination pixel p is
// read from source pixel p - offset.
//
// Every method panics when called after Destroy, except Destroy itself.
type Canvas interface {
	Source

	// FillSolidSpans fills each span with color.
	FillSolidSpans(spans []Span, color uint32)

	// FillSolidRects fills each rectangle with color. Colors are in the
	// surface's protocol layout: 16-bit surfaces take 555 colors.
	FillSolidRects(rects []image.Rectangle, color uint32)

	// FillSolidRectsROP combines color into each rectangle with rop.
	FillSolidRectsROP(rects []image.Rectangle, color uint32, rop ROP)

	// FillTiledRects repeats tile over each rectangle. Tile pixel (0, 0)
	// lands on offset.
	FillTiledRects(rects []image.Rectangle, tile Source, offset image.Point)

	// FillTiledRectsROP combines a repeated tile into each rectangle with rop.
	FillTiledRectsROP(rects []image.Rectangle, tile Source, offset image.Point, rop ROP)

	// BlitImage copies src into each rectangle of rgn.
	BlitImage(rgn region.Region, src Source, offset image.Point)

	// BlitImageROP combines src into each rectangle of rgn with rop.
	BlitImageROP(rgn region.Region, src Source, offset image.Point, rop ROP)

	// ScaleImage scales p.SrcRect of src onto p.DstRect, clipped to rgn.
	ScaleImage(rgn region.Region, src Source, p ScaleParams)

	// ScaleImageROP scales like ScaleImage and combines the result with rop.
	ScaleImageROP(rgn region.Region, src Source, p ScaleParams, rop ROP)

	// BlendImage composites src over dst with a global alpha, clipped to
	// rgn. Source pixel sp lands on dst.Min.
	BlendImage(rgn region.Region, src Source, sp image.Point, dst image.Rectangle, alpha uint8)

	// BlendScaleImage scales like ScaleImage and composites the result over
	// the surface with a global alpha.
	BlendScaleImage(rgn region.Region, src Source, p ScaleParams, alpha uint8)

	// ColorKeyImage copies src into rgn, skipping source pixels equal to key.
	ColorKeyImage(rgn region.Region, src Source, offset image.Point, key uint32)

	// ColorKeyScaleImage scales with nearest sampling and copies the result,
	// skipping pixels equal to key.
	ColorKeyScaleImage(rgn region.Region, src Source, p ScaleParams, key uint32)

	// CopyRegion moves the pixels of dest - (dx, dy) onto dest. The copy is
	// correct when source and destination overlap.
	CopyRegion(dest region.Region, dx, dy int)

	// PutImage copies src onto dest, scaling with nearest sampling when the
	// sizes differ. A nil clip means dest itself.
	PutImage(dest image.Rectangle, src Source, clip *region.Region)

	// DrawText draws a glyph string clipped to bbox and clip.
	DrawText(bbox image.Rectangle, clip Clip, t *Text)

	// ReadBits copies the raw rows of area into dst, stride bytes apart.
	ReadBits(dst []byte, stride int, area image.Rectangle)

	// Clear sets every pixel to zero.
	Clear()

	// SetAccessParams records the byte window [base, limit) of the surface
	// storage that callers may touch.
	SetAccessParams(base, limit int)

	Width() int
	Height() int
	Format() Format

	// Destroy releases the surface. It is safe to call more than once.
	Destroy()
}
