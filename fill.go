package canvas

import (
	"image"

	intImage "github.com/gogpu/canvas/internal/image"
	"github.com/gogpu/canvas/region"
)

// FillSolidSpans fills each span with color.
func (c *RasterCanvas) FillSolidSpans(spans []Span, color uint32) {
	c.live()
	v := nativeColor(color, c.format)
	for _, s := range spans {
		intImage.FillRect(c.buf, s.Rect(), v)
	}
}

// FillSolidRects fills each rectangle with color.
func (c *RasterCanvas) FillSolidRects(rects []image.Rectangle, color uint32) {
	c.live()
	v := nativeColor(color, c.format)
	for _, r := range rects {
		c.checkRect(r)
	}
	c.forEach(c.disjoint(rects), true, func(r image.Rectangle) {
		intImage.FillRect(c.buf, r, v)
	})
}

// FillSolidRectsROP combines color into each rectangle with rop.
// Overlapping rectangles are combined more than once.
func (c *RasterCanvas) FillSolidRectsROP(rects []image.Rectangle, color uint32, rop ROP) {
	c.live()
	v := nativeColor(color, c.format)
	for _, r := range rects {
		intImage.FillRectROP(c.buf, r, v, rop)
	}
}

// FillTiledRects repeats tile over each rectangle.
func (c *RasterCanvas) FillTiledRects(rects []image.Rectangle, tile Source, offset image.Point) {
	c.live()
	t := pixelsOf(tile)
	c.forEach(c.disjoint(rects), t != c.buf, func(r image.Rectangle) {
		intImage.TileRect(c.buf, r, t, offset)
	})
}

// FillTiledRectsROP combines a repeated tile into each rectangle with rop.
func (c *RasterCanvas) FillTiledRectsROP(rects []image.Rectangle, tile Source, offset image.Point, rop ROP) {
	c.live()
	t := pixelsOf(tile)
	for _, r := range rects {
		intImage.TileRectROP(c.buf, r, t, offset, rop)
	}
}

// disjoint returns rects covering the same pixels without overlap when
// the work will be fanned out.
func (c *RasterCanvas) disjoint(rects []image.Rectangle) []image.Rectangle {
	if c.workers == nil || len(rects) < 2 {
		return rects
	}
	return region.New(rects...).Rects()
}

// checkRect validates the rows of r against the access window.
func (c *RasterCanvas) checkRect(r image.Rectangle) {
	if !c.accessCheck {
		return
	}
	r = r.Intersect(c.Bounds())
	if r.Empty() {
		return
	}
	bpp := c.format.BytesPerPixel()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		c.checkAccess(y*c.buf.Stride()+r.Min.X*bpp, r.Dx()*bpp)
	}
}

// fillBrush paints rgn with a brush, combining with rop.
func (c *RasterCanvas) fillBrush(rgn []image.Rectangle, br Brush, rop ROP) {
	switch b := br.(type) {
	case nil, NoBrush:
	case SolidBrush:
		if rop == ROPCopy {
			c.FillSolidRects(rgn, b.Color)
			return
		}
		c.FillSolidRectsROP(rgn, b.Color, rop)
	case PatternBrush:
		tile := resolve(c.resolver, b.Pattern)
		if rop == ROPCopy {
			c.FillTiledRects(rgn, tile, b.Pos)
			return
		}
		c.FillTiledRectsROP(rgn, tile, b.Pos, rop)
	default:
		panic("canvas: invalid brush type")
	}
}
