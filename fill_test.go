package canvas

import (
	"image"
	"testing"
)

func TestFillSolidRectsReadback(t *testing.T) {
	c := newTestCanvas(t, 4, 4, FormatXRGB32)
	c.FillSolidRects([]image.Rectangle{image.Rect(1, 1, 3, 3)}, 0x00ff0000)

	for y := range 4 {
		for x := range 4 {
			want := uint32(0)
			if x >= 1 && x < 3 && y >= 1 && y < 3 {
				want = 0xff0000
			}
			if got := c.Pixels().Pixel(x, y); got != want {
				t.Errorf("Pixel(%d, %d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestFillSolidRectsClipsToSurface(t *testing.T) {
	c := newTestCanvas(t, 2, 2, FormatXRGB32)
	c.FillSolidRects([]image.Rectangle{image.Rect(-5, -5, 1, 10)}, 7)
	if got := c.Pixels().Pixel(0, 1); got != 7 {
		t.Errorf("Pixel(0, 1) = %d, want 7", got)
	}
	if got := c.Pixels().Pixel(1, 1); got != 0 {
		t.Errorf("Pixel(1, 1) = %d, want 0", got)
	}
}

func TestFillSolid16Bit(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		color  uint32
		want   uint32
	}{
		{"1555 red", FormatXRGB1555, 0x7c00, 0x7c00},
		{"1555 drops top bit", FormatXRGB1555, 0xffff, 0x7fff},
		{"565 red", FormatRGB565, 0x7c00, 0xf800},
		{"565 green", FormatRGB565, 0x03e0, 0x07e0},
		{"565 blue", FormatRGB565, 0x001f, 0x001f},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t, 2, 2, tt.format)
			c.FillSolidRects([]image.Rectangle{image.Rect(0, 0, 2, 2)}, tt.color)
			if got := c.Pixels().Pixel(1, 1); got != tt.want {
				t.Errorf("Pixel(1, 1) = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestFillSolidSpans(t *testing.T) {
	c := newTestCanvas(t, 5, 3, FormatXRGB32)
	c.FillSolidSpans([]Span{{X: 1, Y: 0, Width: 3}, {X: 0, Y: 2, Width: 1}, {X: 4, Y: 1, Width: 0}}, 9)

	want := [3][5]uint32{
		{0, 9, 9, 9, 0},
		{0, 0, 0, 0, 0},
		{9, 0, 0, 0, 0},
	}
	for y := range 3 {
		for x := range 5 {
			if got := c.Pixels().Pixel(x, y); got != want[y][x] {
				t.Errorf("Pixel(%d, %d) = %d, want %d", x, y, got, want[y][x])
			}
		}
	}
}

func TestFillSolidRectsROP(t *testing.T) {
	c := newTestCanvas(t, 3, 1, FormatXRGB32)
	c.BlitImage(regionOf(c.Bounds()), newNumbered(t, 3, 1, FormatXRGB32), image.Point{})
	rects := []image.Rectangle{image.Rect(0, 0, 2, 1)}

	c.FillSolidRectsROP(rects, 0x0f0f0f, ROPXor)
	if got := c.Pixels().Pixel(0, 0); got != 0x0f0f0e {
		t.Errorf("after xor Pixel(0, 0) = %#x, want 0x0f0f0e", got)
	}
	c.FillSolidRectsROP(rects, 0x0f0f0f, ROPXor)
	for x := range 3 {
		if got := c.Pixels().Pixel(x, 0); got != uint32(x+1) {
			t.Errorf("after double xor Pixel(%d, 0) = %d, want %d", x, got, x+1)
		}
	}

	c.FillSolidRectsROP(rects, 0, ROPSet)
	if got := c.Pixels().Pixel(1, 0); got != 0xffffff {
		t.Errorf("after set Pixel(1, 0) = %#x, want 0xffffff", got)
	}
	c.FillSolidRectsROP(rects, 0, ROPInvert)
	if got := c.Pixels().Pixel(1, 0); got != 0 {
		t.Errorf("after invert Pixel(1, 0) = %#x, want 0", got)
	}
}

func TestFillTiledRectsAnchoring(t *testing.T) {
	tile := newNumbered(t, 2, 2, FormatXRGB32) // 1 2 / 3 4
	c := newTestCanvas(t, 4, 4, FormatXRGB32)
	c.FillTiledRects([]image.Rectangle{c.Bounds()}, tile, image.Pt(1, 1))

	want := [4][4]uint32{
		{4, 3, 4, 3},
		{2, 1, 2, 1},
		{4, 3, 4, 3},
		{2, 1, 2, 1},
	}
	for y := range 4 {
		for x := range 4 {
			if got := c.Pixels().Pixel(x, y); got != want[y][x] {
				t.Errorf("Pixel(%d, %d) = %d, want %d", x, y, got, want[y][x])
			}
		}
	}
}

func TestFillTiledRectsROP(t *testing.T) {
	tile, _ := NewImage(1, 1, FormatXRGB32)
	tile.SetPixel(0, 0, 0x0000ff)
	c := newTestCanvas(t, 2, 1, FormatXRGB32)
	c.FillSolidRects([]image.Rectangle{c.Bounds()}, 0xff0000)
	c.FillTiledRectsROP([]image.Rectangle{image.Rect(1, 0, 2, 1)}, tile, image.Point{}, ROPOr)

	if got := c.Pixels().Pixel(0, 0); got != 0xff0000 {
		t.Errorf("Pixel(0, 0) = %#x, want 0xff0000", got)
	}
	if got := c.Pixels().Pixel(1, 0); got != 0xff00ff {
		t.Errorf("Pixel(1, 0) = %#x, want 0xff00ff", got)
	}
}

func TestFillTiledRects16BitTile(t *testing.T) {
	tile, _ := NewImage(1, 1, FormatXRGB1555)
	tile.SetPixel(0, 0, 0x7c00)
	c := newTestCanvas(t, 2, 2, FormatXRGB32)
	c.FillTiledRects([]image.Rectangle{c.Bounds()}, tile, image.Point{})
	if got := c.Pixels().Pixel(1, 1); got != 0xff0000 {
		t.Errorf("Pixel(1, 1) = %#x, want 0xff0000", got)
	}
}

func TestWorkersMatchSerial(t *testing.T) {
	rects := []image.Rectangle{
		image.Rect(0, 0, 10, 3),
		image.Rect(5, 2, 20, 9),
		image.Rect(12, 12, 31, 31),
		image.Rect(0, 20, 6, 32),
	}
	tile := newNumbered(t, 3, 5, FormatXRGB32)
	src := newNumbered(t, 32, 32, FormatXRGB32)

	draw := func(c *RasterCanvas) {
		c.FillSolidRects(rects, 0x123456)
		c.FillTiledRects(rects[1:], tile, image.Pt(2, 1))
		c.BlitImage(regionOf(rects[2:]...), src, image.Pt(1, 1))
	}

	serial := newTestCanvas(t, 32, 32, FormatXRGB32)
	parallel := newTestCanvas(t, 32, 32, FormatXRGB32, WithWorkers(4))
	draw(serial)
	draw(parallel)
	pixelsEqual(t, parallel.Pixels(), serial.Pixels())
}

func BenchmarkFillSolidRects(b *testing.B) {
	c := newTestCanvas(b, 512, 512, FormatXRGB32)
	rects := []image.Rectangle{image.Rect(0, 0, 512, 512)}
	b.ReportAllocs()
	for b.Loop() {
		c.FillSolidRects(rects, 0x336699)
	}
}
