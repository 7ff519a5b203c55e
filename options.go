package canvas

import "github.com/gogpu/canvas/glyph"

// Option configures a RasterCanvas during creation.
//
// Example:
//
//	store := canvas.NewStore(0)
//	c, err := canvas.Create(1024, 768, canvas.FormatXRGB32,
//	    canvas.WithResolver(store),
//	    canvas.WithWorkers(4))
type Option func(*options)

type options struct {
	resolver    Resolver
	glyphs      glyph.Source
	toucher     BrushToucher
	workers     int
	accessCheck bool
}

// WithResolver sets the lookup used for pattern brushes and image
// references. If r also implements BrushToucher it receives brush touches
// unless WithToucher overrides it.
func WithResolver(r Resolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// WithGlyphSource sets the producer of text run masks.
// The default is a glyph.Cache.
func WithGlyphSource(s glyph.Source) Option {
	return func(o *options) {
		o.glyphs = s
	}
}

// WithToucher sets the receiver of brush touches for skipped text draws.
func WithToucher(t BrushToucher) Option {
	return func(o *options) {
		o.toucher = t
	}
}

// WithWorkers fans calls that touch several rectangles out over n
// goroutines. Values below 2 keep all work on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithAccessCheck makes SetAccessParams effective: ReadBits and
// FillSolidRects then panic when they touch bytes outside the window.
func WithAccessCheck() Option {
	return func(o *options) {
		o.accessCheck = true
	}
}
