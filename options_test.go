package canvas

import (
	"image"
	"testing"

	"github.com/gogpu/canvas/glyph"
	intImage "github.com/gogpu/canvas/internal/image"
)

type countingGlyphs struct {
	calls int
}

func (g *countingGlyphs) RunMask(s *glyph.String, depth int) (*intImage.Buf, image.Point) {
	g.calls++
	return glyph.Compose(s, depth)
}

type recordingToucher struct {
	refs []ImageRef
}

func (r *recordingToucher) TouchImage(ref ImageRef) {
	r.refs = append(r.refs, ref)
}

func TestDefaultOptions(t *testing.T) {
	c := newTestCanvas(t, 2, 2, FormatXRGB32)
	if c.resolver != nil {
		t.Error("default resolver should be nil")
	}
	if _, ok := c.glyphs.(*glyph.Cache); !ok {
		t.Errorf("default glyph source = %T, want *glyph.Cache", c.glyphs)
	}
	if c.workers != nil {
		t.Error("default canvas should not start workers")
	}
	if c.accessCheck {
		t.Error("access checks should be off by default")
	}
}

func TestWithOptions(t *testing.T) {
	store := NewStore(0)
	glyphs := &countingGlyphs{}
	c := newTestCanvas(t, 2, 2, FormatXRGB32,
		WithResolver(store),
		WithGlyphSource(glyphs),
		WithWorkers(3),
		WithAccessCheck())

	if c.resolver != store {
		t.Error("WithResolver not applied")
	}
	if c.toucher != store {
		t.Error("a resolver that touches should become the toucher")
	}
	if c.glyphs != glyphs {
		t.Error("WithGlyphSource not applied")
	}
	if c.workers == nil || c.workers.Workers() != 3 {
		t.Error("WithWorkers(3) not applied")
	}
	if !c.accessCheck {
		t.Error("WithAccessCheck not applied")
	}
}

func TestWithToucherOverridesResolver(t *testing.T) {
	touched := &recordingToucher{}
	c := newTestCanvas(t, 2, 2, FormatXRGB32, WithResolver(NewStore(0)), WithToucher(touched))
	if c.toucher != touched {
		t.Errorf("toucher = %T, want the WithToucher value", c.toucher)
	}
}

func TestWithWorkersBelowTwo(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		c := newTestCanvas(t, 2, 2, FormatXRGB32, WithWorkers(n))
		if c.workers != nil {
			t.Errorf("WithWorkers(%d) started a pool", n)
		}
	}
}
