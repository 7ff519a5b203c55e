package canvas

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	intImage "github.com/gogpu/canvas/internal/image"
	"github.com/gogpu/canvas/region"
)

// check panics on an unknown mode.
func (m ScaleMode) check() {
	if m != ScaleNearest && m != ScaleInterpolate {
		panic(fmt.Sprintf("canvas: invalid scale mode %d", m))
	}
}

func (p ScaleParams) ratios() (sx, sy float64) {
	sx = float64(p.SrcRect.Dx()) / float64(p.DstRect.Dx())
	sy = float64(p.SrcRect.Dy()) / float64(p.DstRect.Dy())
	return sx, sy
}

// transform returns the source-to-destination transform of p with the
// destination rectangle moved to origin.
func (p ScaleParams) transform(origin image.Point) intImage.Affine {
	sx, sy := p.ratios()
	return intImage.ScaleToDest(sx, sy, p.SrcRect.Min.X, p.SrcRect.Min.Y, origin.X, origin.Y)
}

func (p ScaleParams) empty() bool {
	return p.SrcRect.Empty() || p.DstRect.Empty()
}

// render writes the scaled source into clip of dst, with the destination
// rectangle moved to origin. Pixels whose sample falls outside s become 0.
// s must not be dst.
func (p ScaleParams) render(dst *Image, clip region.Region, s *Image, origin image.Point) {
	switch p.Mode {
	case ScaleNearest:
		sx, sy := p.ratios()
		off := intImage.ScaleOrigin(sx, sy, p.SrcRect.Min.X, p.SrcRect.Min.Y).Sub(origin)
		for _, r := range clip.Rects() {
			intImage.ScaleNearest(dst, r, s, sx, sy, off)
		}
	case ScaleInterpolate:
		// The interpolator skips pixels it cannot sample.
		for _, r := range clip.Rects() {
			intImage.FillRect(dst, r, 0)
		}
		s2d := p.transform(origin)
		intImage.InterpBilinear.Interpolator().Transform(dst, s2d.Aff3(), s, s.Bounds(), xdraw.Src, &xdraw.Options{
			DstMask: clip.Mask(),
		})
	default:
		p.Mode.check()
	}
}

// ScaleImage scales p.SrcRect of src onto p.DstRect, clipped to rgn.
// Destination pixels whose sample falls outside src are set to 0.
func (c *RasterCanvas) ScaleImage(rgn region.Region, src Source, p ScaleParams) {
	c.live()
	p.Mode.check()
	s := pixelsOf(src)
	clip := rgn.IntersectRect(p.DstRect)
	if clip.IsEmpty() || p.empty() {
		return
	}
	if s == c.buf {
		s = s.Clone()
	}
	p.render(c.buf, clip, s, p.DstRect.Min)
}

// ScaleImageROP scales into a 32-bit temporary and combines the result
// into the surface with rop.
func (c *RasterCanvas) ScaleImageROP(rgn region.Region, src Source, p ScaleParams, rop ROP) {
	c.live()
	p.Mode.check()
	c.scaleThrough(rgn, src, p, func(r image.Rectangle, tmp *Image, sp image.Point) {
		intImage.BlitROP(c.buf, r, tmp, sp, rop)
	})
}

// ColorKeyScaleImage scales with nearest sampling into a 32-bit temporary
// and copies the pixels that differ from key.
func (c *RasterCanvas) ColorKeyScaleImage(rgn region.Region, src Source, p ScaleParams, key uint32) {
	c.live()
	p.Mode = ScaleNearest
	c.scaleThrough(rgn, src, p, func(r image.Rectangle, tmp *Image, sp image.Point) {
		intImage.BlitColorKey(c.buf, r, tmp, sp, key)
	})
}

// scaleThrough renders the clipped scaled source into a pooled XRGB32
// temporary covering p.DstRect, then calls put for each clip rectangle
// with the matching temporary position.
func (c *RasterCanvas) scaleThrough(rgn region.Region, src Source, p ScaleParams,
	put func(r image.Rectangle, tmp *Image, sp image.Point)) {
	s := pixelsOf(src)
	clip := rgn.IntersectRect(p.DstRect)
	if clip.IsEmpty() || p.empty() {
		return
	}

	tmp := c.scratch.Get(p.DstRect.Dx(), p.DstRect.Dy(), FormatXRGB32)
	defer c.scratch.Put(tmp)

	dx, dy := p.DstRect.Min.X, p.DstRect.Min.Y
	p.render(tmp, clip.Translate(-dx, -dy), s, image.Point{})

	for _, r := range clip.Rects() {
		put(r, tmp, r.Min.Sub(p.DstRect.Min))
	}
}

// BlendScaleImage scales p.SrcRect of src onto p.DstRect and composites
// the result over the surface with a global alpha, clipped to rgn.
// Destination pixels whose sample falls outside src are left unchanged.
func (c *RasterCanvas) BlendScaleImage(rgn region.Region, src Source, p ScaleParams, alpha uint8) {
	c.live()
	p.Mode.check()
	s := pixelsOf(src)
	clip := rgn.IntersectRect(p.DstRect)
	if clip.IsEmpty() || p.empty() {
		return
	}

	// Unsampled pixels stay transparent in the temporary.
	tmp := c.scratch.Get(p.DstRect.Dx(), p.DstRect.Dy(), FormatARGB32)
	defer c.scratch.Put(tmp)

	dx, dy := p.DstRect.Min.X, p.DstRect.Min.Y
	p.render(tmp, clip.Translate(-dx, -dy), s, image.Point{})

	mask := alphaMask(alpha)
	for _, r := range clip.Rects() {
		xdraw.DrawMask(c.buf, r, tmp, r.Min.Sub(p.DstRect.Min), mask, image.Point{}, xdraw.Over)
	}
}

// PutImage copies src onto dest, clipped to clip when it is not nil.
// When the sizes differ the source is scaled with nearest sampling.
func (c *RasterCanvas) PutImage(dest image.Rectangle, src Source, clip *region.Region) {
	c.live()
	s := pixelsOf(src)
	rgn := region.Rect(dest)
	if clip != nil {
		rgn = clip.IntersectRect(dest)
	}
	if rgn.IsEmpty() {
		return
	}

	if s.Bounds().Size() == dest.Size() {
		for _, r := range rgn.Rects() {
			intImage.Blit(c.buf, r, s, r.Min.Sub(dest.Min))
		}
		return
	}

	p := ScaleParams{SrcRect: s.Bounds(), DstRect: dest, Mode: ScaleNearest}
	if s == c.buf {
		s = s.Clone()
	}
	p.render(c.buf, rgn, s, dest.Min)
}
