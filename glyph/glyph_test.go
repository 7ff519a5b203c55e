package glyph

import (
	"image"
	"testing"

	intImage "github.com/gogpu/canvas/internal/image"
)

func TestFlagsDepth(t *testing.T) {
	tests := []struct {
		name   string
		flags  Flags
		want   int
		wantOK bool
	}{
		{"A1", FlagRasterA1, 1, true},
		{"A4", FlagRasterA4, 4, true},
		{"A8", FlagRasterA8, 8, true},
		{"A1 wins", FlagRasterA1 | FlagRasterA8, 1, true},
		{"A4 over A8", FlagRasterA4 | FlagRasterA8, 4, true},
		{"vector", FlagVector, 0, false},
		{"none", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.flags.Depth()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Depth() = %d, %v, want %d, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
	if FlagsForDepth(2) != 0 || FlagsForDepth(4) != FlagRasterA4 {
		t.Error("FlagsForDepth() mismatch")
	}
}

func TestGlyphCoverage(t *testing.T) {
	a1 := Glyph{Width: 10, Height: 2, Data: []byte{0x80, 0x40, 0x01, 0x00}}
	if a1.Coverage(0, 0, 1) != 1 || a1.Coverage(9, 0, 1) != 1 || a1.Coverage(1, 0, 1) != 0 {
		t.Error("A1 coverage mismatch in row 0")
	}
	if a1.Coverage(7, 1, 1) != 1 {
		t.Errorf("A1 Coverage(7, 1) = %d, want 1", a1.Coverage(7, 1, 1))
	}

	a4 := Glyph{Width: 3, Height: 1, Data: []byte{0xf3, 0x90}}
	for x, want := range []uint8{0xf, 0x3, 0x9} {
		if got := a4.Coverage(x, 0, 4); got != want {
			t.Errorf("A4 Coverage(%d, 0) = %#x, want %#x", x, got, want)
		}
	}

	short := Glyph{Width: 4, Height: 4, Data: []byte{0xff}}
	if short.Coverage(0, 3, 8) != 0 || short.Coverage(-1, 0, 8) != 0 {
		t.Error("out-of-range Coverage is not zero")
	}
}

func TestStringBounds(t *testing.T) {
	s := &String{Glyphs: []Glyph{
		{RenderPos: image.Pt(10, 20), Origin: image.Pt(0, -5), Width: 3, Height: 5},
		{RenderPos: image.Pt(14, 20), Origin: image.Pt(1, -7), Width: 2, Height: 8},
	}}
	if got := s.Bounds(); got != image.Rect(10, 13, 17, 21) {
		t.Errorf("Bounds() = %v, want (10,13)-(17,21)", got)
	}
}

func TestComposeA1(t *testing.T) {
	s := &String{Flags: FlagRasterA1, Glyphs: []Glyph{
		{RenderPos: image.Pt(2, 3), Width: 2, Height: 2, Data: []byte{0x80, 0x40}},
		{RenderPos: image.Pt(3, 3), Width: 1, Height: 1, Data: []byte{0x80}},
	}}
	mask, pos := Compose(s, 1)
	if mask == nil {
		t.Fatal("Compose() mask = nil")
	}
	if pos != image.Pt(2, 3) {
		t.Errorf("pos = %v, want (2,3)", pos)
	}
	if mask.Format() != intImage.FormatA1 {
		t.Errorf("Format() = %v, want A1", mask.Format())
	}
	want := [2][2]uint32{{1, 1}, {0, 1}}
	for y := range 2 {
		for x := range 2 {
			if got := mask.Pixel(x, y); got != want[y][x] {
				t.Errorf("Pixel(%d, %d) = %d, want %d", x, y, got, want[y][x])
			}
		}
	}
}

func TestComposeA8KeepsMax(t *testing.T) {
	s := &String{Flags: FlagRasterA8, Glyphs: []Glyph{
		{Width: 1, Height: 1, Data: []byte{0x90}},
		{Width: 1, Height: 1, Data: []byte{0x40}},
	}}
	mask, _ := Compose(s, 8)
	if got := mask.Pixel(0, 0); got != 0x90 {
		t.Errorf("Pixel(0, 0) = %#x, want 0x90", got)
	}
}

func TestComposeEmpty(t *testing.T) {
	if m, _ := Compose(&String{Flags: FlagRasterA1}, 1); m != nil {
		t.Error("Compose(empty) != nil")
	}
	if m, _ := Compose(&String{Glyphs: []Glyph{{Width: 1, Height: 1, Data: []byte{1}}}}, 3); m != nil {
		t.Error("Compose(depth 3) != nil")
	}
}

func TestCacheMemoizes(t *testing.T) {
	c := NewCache(0)
	s := &String{Flags: FlagRasterA4, Glyphs: []Glyph{
		{RenderPos: image.Pt(1, 1), Width: 2, Height: 1, Data: []byte{0xf8}},
	}}
	m1, p1 := c.RunMask(s, 4)
	m2, p2 := c.RunMask(s, 4)
	if m1 == nil || m1 != m2 || p1 != p2 {
		t.Fatalf("RunMask() not memoized: %p %p", m1, m2)
	}
	if got := m1.Coverage(1, 0); got != 0x88 {
		t.Errorf("Coverage(1, 0) = %#x, want 0x88", got)
	}

	other := &String{Flags: FlagRasterA4, Glyphs: []Glyph{
		{RenderPos: image.Pt(1, 1), Width: 2, Height: 1, Data: []byte{0xf9}},
	}}
	if m3, _ := c.RunMask(other, 4); m3 == m1 {
		t.Error("RunMask() returned a mask for different contents")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if st := c.Stats(); st.Hits != 1 {
		t.Errorf("Stats().Hits = %d, want 1", st.Hits)
	}
	if m, _ := c.RunMask(nil, 1); m != nil {
		t.Error("RunMask(nil) != nil")
	}
}
