package image

import (
	"image"

	"github.com/gogpu/canvas/internal/blend"
)

// FillRect sets every pixel of r to the raw value v.
// r is clipped to the buffer.
func FillRect(dst *Buf, r image.Rectangle, v uint32) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	bpp := dst.format.BytesPerPixel()
	if bpp == 0 {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				dst.SetPixel(x, y, v)
			}
		}
		return
	}

	// Fill the first row, then replicate its bytes.
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.SetPixel(x, r.Min.Y, v)
	}
	start, end := r.Min.X*bpp, r.Max.X*bpp
	first := dst.data[r.Min.Y*dst.stride:]
	for y := r.Min.Y + 1; y < r.Max.Y; y++ {
		row := dst.data[y*dst.stride:]
		copy(row[start:end], first[start:end])
	}
}

// FillRectROP combines v into every pixel of r with rop.
func FillRectROP(dst *Buf, r image.Rectangle, v uint32, rop blend.ROP) {
	if rop == blend.ROPCopy {
		FillRect(dst, r, v)
		return
	}
	r = r.Intersect(dst.Bounds())
	fn := blend.GetROPFunc(rop)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetPixel(x, y, fn(v, dst.Pixel(x, y)))
		}
	}
}

// TileRect fills r by repeating tile. The tile's origin lands on origin, so
// destination pixel (x, y) takes tile pixel
// ((x-origin.X) mod w, (y-origin.Y) mod h).
func TileRect(dst *Buf, r image.Rectangle, tile *Buf, origin image.Point) {
	TileRectROP(dst, r, tile, origin, blend.ROPCopy)
}

// TileRectROP is TileRect combining each tile pixel into the destination
// with rop.
func TileRectROP(dst *Buf, r image.Rectangle, tile *Buf, origin image.Point, rop blend.ROP) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() || tile.width == 0 || tile.height == 0 {
		return
	}
	fn := blend.GetROPFunc(rop)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		ty := mod(y-origin.Y, tile.height)
		for x := r.Min.X; x < r.Max.X; x++ {
			tx := mod(x-origin.X, tile.width)
			v := ConvertPixel(tile.Pixel(tx, ty), tile.format, dst.format)
			if rop != blend.ROPCopy {
				v = fn(v, dst.Pixel(x, y))
			}
			dst.SetPixel(x, y, v)
		}
	}
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

// clipBlit clips r to dst and the matching source rectangle at sp to src.
func clipBlit(dst *Buf, r image.Rectangle, src *Buf, sp image.Point) (image.Rectangle, image.Point) {
	orig := r.Min
	r = r.Intersect(dst.Bounds())
	sp = sp.Add(r.Min.Sub(orig))
	sr := image.Rectangle{Min: sp, Max: sp.Add(r.Size())}.Intersect(src.Bounds())
	r = image.Rectangle{Min: r.Min.Add(sr.Min.Sub(sp)), Max: r.Min.Add(sr.Max.Sub(sp))}
	return r, sr.Min
}

// walk visits every pixel of r together with its source pixel. When src is
// dst the visiting order never reads a source pixel after it was written.
func walk(dst *Buf, r image.Rectangle, src *Buf, sp image.Point, fn func(x, y, sx, sy int)) {
	dy0, dy1, ystep := 0, r.Dy(), 1
	dx0, dx1, xstep := 0, r.Dx(), 1
	if src == dst {
		if sp.Y < r.Min.Y {
			dy0, dy1, ystep = r.Dy()-1, -1, -1
		}
		if sp.Y == r.Min.Y && sp.X < r.Min.X {
			dx0, dx1, xstep = r.Dx()-1, -1, -1
		}
	}
	for dy := dy0; dy != dy1; dy += ystep {
		for dx := dx0; dx != dx1; dx += xstep {
			fn(r.Min.X+dx, r.Min.Y+dy, sp.X+dx, sp.Y+dy)
		}
	}
}

// Blit copies the source rectangle starting at sp onto r. Pixels are
// converted when the formats differ. src may be dst; overlapping copies
// behave like memmove.
func Blit(dst *Buf, r image.Rectangle, src *Buf, sp image.Point) {
	r, sp = clipBlit(dst, r, src, sp)
	if r.Empty() {
		return
	}
	bpp := dst.format.BytesPerPixel()
	if src.format == dst.format && bpp != 0 {
		copyRows(dst, r, src, sp, bpp)
		return
	}
	walk(dst, r, src, sp, func(x, y, sx, sy int) {
		dst.SetPixel(x, y, ConvertPixel(src.Pixel(sx, sy), src.format, dst.format))
	})
}

func copyRows(dst *Buf, r image.Rectangle, src *Buf, sp image.Point, bpp int) {
	n := r.Dx() * bpp
	y0, y1, step := 0, r.Dy(), 1
	if src == dst && sp.Y < r.Min.Y {
		y0, y1, step = r.Dy()-1, -1, -1
	}
	for i := y0; i != y1; i += step {
		d := dst.data[(r.Min.Y+i)*dst.stride+r.Min.X*bpp:]
		s := src.data[(sp.Y+i)*src.stride+sp.X*bpp:]
		copy(d[:n], s[:n])
	}
}

// CopyRect moves the pixels at sp to r within one buffer.
func CopyRect(b *Buf, r image.Rectangle, sp image.Point) {
	Blit(b, r, b, sp)
}

// BlitROP combines the source rectangle at sp into r with rop.
func BlitROP(dst *Buf, r image.Rectangle, src *Buf, sp image.Point, rop blend.ROP) {
	if rop == blend.ROPCopy {
		Blit(dst, r, src, sp)
		return
	}
	r, sp = clipBlit(dst, r, src, sp)
	if r.Empty() {
		return
	}
	fn := blend.GetROPFunc(rop)
	walk(dst, r, src, sp, func(x, y, sx, sy int) {
		v := ConvertPixel(src.Pixel(sx, sy), src.format, dst.format)
		dst.SetPixel(x, y, fn(v, dst.Pixel(x, y)))
	})
}

// BlitColorKey copies the source rectangle at sp onto r, skipping source
// pixels whose raw value equals key.
func BlitColorKey(dst *Buf, r image.Rectangle, src *Buf, sp image.Point, key uint32) {
	r, sp = clipBlit(dst, r, src, sp)
	if r.Empty() {
		return
	}
	walk(dst, r, src, sp, func(x, y, sx, sy int) {
		v := src.Pixel(sx, sy)
		if v == key {
			return
		}
		dst.SetPixel(x, y, ConvertPixel(v, src.format, dst.format))
	})
}
