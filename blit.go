package canvas

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	intImage "github.com/gogpu/canvas/internal/image"
	"github.com/gogpu/canvas/region"
)

// BlitImage copies src into each rectangle of rgn. Destination pixel p
// takes source pixel p - offset. Source pixels outside src are skipped.
func (c *RasterCanvas) BlitImage(rgn region.Region, src Source, offset image.Point) {
	c.live()
	s := pixelsOf(src)
	c.forEach(rgn.Rects(), s != c.buf, func(r image.Rectangle) {
		intImage.Blit(c.buf, r, s, r.Min.Sub(offset))
	})
}

// BlitImageROP combines src into each rectangle of rgn with rop.
func (c *RasterCanvas) BlitImageROP(rgn region.Region, src Source, offset image.Point, rop ROP) {
	c.live()
	s := pixelsOf(src)
	c.forEach(rgn.Rects(), s != c.buf, func(r image.Rectangle) {
		intImage.BlitROP(c.buf, r, s, r.Min.Sub(offset), rop)
	})
}

// ColorKeyImage copies src into rgn, leaving the destination unchanged
// where the raw source pixel equals key.
func (c *RasterCanvas) ColorKeyImage(rgn region.Region, src Source, offset image.Point, key uint32) {
	c.live()
	s := pixelsOf(src)
	c.forEach(rgn.Rects(), s != c.buf, func(r image.Rectangle) {
		intImage.BlitColorKey(c.buf, r, s, r.Min.Sub(offset), key)
	})
}

// BlendImage composites src over the surface inside dst ∩ rgn. Source
// pixel sp lands on dst.Min. An alpha below 0xff scales the source.
func (c *RasterCanvas) BlendImage(rgn region.Region, src Source, sp image.Point, dst image.Rectangle, alpha uint8) {
	c.live()
	s := pixelsOf(src)
	mask := alphaMask(alpha)
	for _, r := range rgn.IntersectRect(dst).Rects() {
		xdraw.DrawMask(c.buf, r, s, sp.Add(r.Min.Sub(dst.Min)), mask, image.Point{}, xdraw.Over)
	}
}

// alphaMask returns a uniform mask for a global alpha, or nil when the
// source is used as is.
func alphaMask(alpha uint8) image.Image {
	if alpha == 0xff {
		return nil
	}
	return image.NewUniform(color.Alpha16{A: uint16(alpha) * 0x101})
}
