package canvas

import (
	"fmt"

	"github.com/gogpu/canvas/glyph"
)

// base is the backend-independent state of a canvas: size, format, the
// collaborators it resolves brushes and glyphs through, and the access
// window.
type base struct {
	width, height int
	format        Format

	resolver Resolver
	glyphs   glyph.Source
	toucher  BrushToucher

	accessCheck bool
	accessBase  int
	accessLimit int
}

func newBase(width, height int, format Format, o *options) *base {
	b := &base{
		width:       width,
		height:      height,
		format:      format,
		resolver:    o.resolver,
		glyphs:      o.glyphs,
		toucher:     o.toucher,
		accessCheck: o.accessCheck,
		accessLimit: -1,
	}
	if b.glyphs == nil {
		b.glyphs = glyph.NewCache(0)
	}
	if b.toucher == nil {
		if t, ok := o.resolver.(BrushToucher); ok {
			b.toucher = t
		}
	}
	return b
}

// touch reports the image a brush references, if any.
func (b *base) touch(br Brush) {
	p, ok := br.(PatternBrush)
	if !ok || b.toucher == nil {
		return
	}
	b.toucher.TouchImage(p.Pattern)
}

// checkAccess panics when the byte span [off, off+n) leaves the access
// window. It is a no-op unless access checks are enabled and a window
// has been set.
func (b *base) checkAccess(off, n int) {
	if !b.accessCheck || b.accessLimit < 0 {
		return
	}
	if off < b.accessBase || off+n > b.accessLimit {
		panic(fmt.Sprintf("canvas: access [%d, %d) outside window [%d, %d)",
			off, off+n, b.accessBase, b.accessLimit))
	}
}
