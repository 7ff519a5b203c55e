package glyph

import (
	"errors"
	"image"
	"testing"
)

func TestNewFontRendererDepth(t *testing.T) {
	if _, err := NewFontRenderer(nil, 12, 2); !errors.Is(err, ErrInvalidDepth) {
		t.Errorf("NewFontRenderer(depth 2) error = %v, want %v", err, ErrInvalidDepth)
	}
	if _, err := NewFontRenderer([]byte("not a font"), 12, 8); err == nil {
		t.Error("NewFontRenderer(garbage) error = nil")
	}
}

func TestFontRendererRender(t *testing.T) {
	for _, depth := range []int{1, 4, 8} {
		r, err := NewFontRenderer(nil, 16, depth)
		if err != nil {
			t.Fatalf("NewFontRenderer() error = %v", err)
		}
		s := r.Render("Hi", image.Pt(5, 20))
		if got, _ := s.Flags.Depth(); got != depth {
			t.Errorf("depth %d: Flags.Depth() = %d", depth, got)
		}
		if len(s.Glyphs) != 2 {
			t.Fatalf("depth %d: len(Glyphs) = %d, want 2", depth, len(s.Glyphs))
		}
		g0, g1 := s.Glyphs[0], s.Glyphs[1]
		if g0.RenderPos != image.Pt(5, 20) {
			t.Errorf("first RenderPos = %v, want (5,20)", g0.RenderPos)
		}
		if g1.RenderPos.X <= g0.RenderPos.X {
			t.Errorf("pen did not advance: %v then %v", g0.RenderPos, g1.RenderPos)
		}
		if b := s.Bounds(); b.Max.Y > 21 || b.Min.Y >= 20 {
			t.Errorf("Bounds() = %v, want glyphs above the baseline", b)
		}
		if len(g0.Data) != RowBytes(g0.Width, depth)*g0.Height {
			t.Errorf("len(Data) = %d, want %d", len(g0.Data), RowBytes(g0.Width, depth)*g0.Height)
		}
		mask, _ := Compose(s, depth)
		if mask == nil {
			t.Fatal("Compose() = nil")
		}
		var covered int
		for y := range mask.Height() {
			for x := range mask.Width() {
				if mask.Coverage(x, y) != 0 {
					covered++
				}
			}
		}
		if covered == 0 {
			t.Errorf("depth %d: rendered mask is blank", depth)
		}
		if err := r.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	}
}

func TestFontRendererNormalizes(t *testing.T) {
	r, err := NewFontRenderer(nil, 12, 8)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	// "e" followed by a combining acute accent composes to one rune.
	s := r.Render("e\u0301", image.Point{})
	if len(s.Glyphs) != 1 {
		t.Errorf("len(Glyphs) = %d, want 1", len(s.Glyphs))
	}
	if r.Advance("ab") <= r.Advance("a") {
		t.Error("Advance() does not grow with text")
	}
	if r.Metrics().Height <= 0 {
		t.Error("Metrics().Height <= 0")
	}
}
