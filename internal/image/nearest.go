package image

import (
	"image"
	"math"
)

// FDot16 is a 16.16 fixed-point number (16 fractional bits). Sample
// coordinates of nearest scaling are computed in it so that edge cases land
// on the same pixels on every platform.
//
// Products are formed in int64 before shifting back.
type FDot16 = int64

// Fixed-point constants for FDot16.
const (
	// FDot16Shift is the number of fractional bits in FDot16.
	FDot16Shift = 16

	// FDot16One is 1.0 in FDot16 representation (2^16 = 65536).
	FDot16One FDot16 = 1 << FDot16Shift

	// FDot16Half is 0.5 in FDot16 representation.
	FDot16Half FDot16 = FDot16One / 2

	// FDot16Epsilon is the smallest positive FDot16 value (1/65536).
	FDot16Epsilon FDot16 = 1
)

// FloatToFDot16 converts v to FDot16, truncating toward zero.
func FloatToFDot16(v float64) FDot16 {
	return FDot16(v * float64(FDot16One))
}

// FDot16Mul multiplies two FDot16 values, rounding to nearest.
func FDot16Mul(a, b FDot16) FDot16 {
	return (a*b + FDot16Half) >> FDot16Shift
}

// ScaleOrigin returns the scaled source origin of a scaled blit: the source
// offset divided by the scale factor, rounded with floor(v+0.5).
func ScaleOrigin(sx, sy float64, srcX, srcY int) image.Point {
	return image.Point{
		X: int(math.Floor(float64(srcX)/sx + 0.5)),
		Y: int(math.Floor(float64(srcY)/sy + 0.5)),
	}
}

// ScaleNearest fills r of dst by nearest sampling from src.
//
// Destination pixel (x, y) samples the source at
// ((x+off.X+0.5)*sx, (y+off.Y+0.5)*sy), evaluated in 16.16 fixed point.
// The sample index is floor(v - 1/65536), so a sample that lands exactly
// on a pixel edge takes the left or top pixel. Samples outside the bounds
// of src write 0. Pixels are converted when the formats differ.
//
// src must not be dst.
func ScaleNearest(dst *Buf, r image.Rectangle, src *Buf, sx, sy float64, off image.Point) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	fx, fy := FloatToFDot16(sx), FloatToFDot16(sy)
	w, h := src.width, src.height

	// Column indices are shared by every row.
	cols := make([]int, r.Dx())
	for i := range cols {
		p := FDot16(r.Min.X+i+off.X)<<FDot16Shift + FDot16Half
		cols[i] = sampleIndex(FDot16Mul(fx, p))
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		p := FDot16(y+off.Y)<<FDot16Shift + FDot16Half
		row := sampleIndex(FDot16Mul(fy, p))
		for i, col := range cols {
			var v uint32
			if col >= 0 && col < w && row >= 0 && row < h {
				v = ConvertPixel(src.Pixel(col, row), src.format, dst.format)
			}
			dst.SetPixel(r.Min.X+i, y, v)
		}
	}
}

// sampleIndex returns the pixel holding fixed-point coordinate v.
// The arithmetic shift floors negative values.
func sampleIndex(v FDot16) int {
	return int((v - FDot16Epsilon) >> FDot16Shift)
}
