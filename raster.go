package canvas

import (
	"fmt"
	"image"

	pcolor "github.com/gogpu/canvas/internal/color"
	intImage "github.com/gogpu/canvas/internal/image"
	"github.com/gogpu/canvas/internal/parallel"
)

// scratchPerBucket bounds the temporaries kept per size and format.
const scratchPerBucket = 4

// RasterCanvas is the software Canvas. It draws straight into a packed
// pixel buffer with per-pixel primitives and golang.org/x/image/draw.
type RasterCanvas struct {
	*base

	buf     *Image
	layout  pcolor.Layout
	scratch *intImage.Pool
	workers *parallel.WorkerPool

	destroyed bool
}

var _ Canvas = (*RasterCanvas)(nil)

// Create returns a zeroed canvas of the given size and color format.
func Create(width, height int, format Format, opts ...Option) (*RasterCanvas, error) {
	if err := checkSurfaceFormat(format); err != nil {
		return nil, fmt.Errorf("canvas: create %dx%d %v: %w", width, height, format, err)
	}
	buf, err := intImage.NewBuf(width, height, format)
	if err != nil {
		return nil, fmt.Errorf("canvas: create %dx%d %v: %w", width, height, format, err)
	}
	return newRaster(buf, opts), nil
}

// CreateForData returns a canvas drawing into caller-owned memory.
// Rows start stride bytes apart. The canvas never frees data.
func CreateForData(data []byte, width, height int, format Format, stride int, opts ...Option) (*RasterCanvas, error) {
	if err := checkSurfaceFormat(format); err != nil {
		return nil, fmt.Errorf("canvas: wrap %dx%d %v: %w", width, height, format, err)
	}
	buf, err := intImage.FromRaw(data, width, height, format, stride)
	if err != nil {
		return nil, fmt.Errorf("canvas: wrap %dx%d %v: %w", width, height, format, err)
	}
	return newRaster(buf, opts), nil
}

func checkSurfaceFormat(f Format) error {
	if !f.IsValid() || f.IsMask() {
		return ErrInvalidFormat
	}
	return nil
}

func newRaster(buf *Image, opts []Option) *RasterCanvas {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	c := &RasterCanvas{
		base:    newBase(buf.Width(), buf.Height(), buf.Format(), &o),
		buf:     buf,
		layout:  layoutFor(buf.Format()),
		scratch: intImage.NewPool(scratchPerBucket),
	}
	if o.workers > 1 {
		c.workers = parallel.NewWorkerPool(o.workers)
	}
	Logger().Debug("canvas: created",
		"width", buf.Width(), "height", buf.Height(),
		"format", buf.Format(), "external", buf.External())
	return c
}

// Destroy releases the surface storage and the worker goroutines.
// Memory passed to CreateForData is left untouched. Destroy on a nil or
// already destroyed canvas does nothing.
func (c *RasterCanvas) Destroy() {
	if c == nil || c.destroyed {
		return
	}
	c.destroyed = true
	if c.workers != nil {
		c.workers.Close()
	}
	c.scratch.Reset()
	c.buf.Release()
	Logger().Debug("canvas: destroyed", "width", c.width, "height", c.height)
}

// live panics when the canvas has been destroyed.
func (c *RasterCanvas) live() {
	if c.destroyed {
		panic("canvas: use after Destroy")
	}
}

// Pixels returns the surface storage.
func (c *RasterCanvas) Pixels() *Image {
	c.live()
	return c.buf
}

// Width returns the surface width in pixels.
func (c *RasterCanvas) Width() int { return c.width }

// Height returns the surface height in pixels.
func (c *RasterCanvas) Height() int { return c.height }

// Format returns the surface pixel format.
func (c *RasterCanvas) Format() Format { return c.format }

// Bounds returns the surface rectangle.
func (c *RasterCanvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// Clear sets every pixel to zero. Row padding of wrapped memory is kept.
func (c *RasterCanvas) Clear() {
	c.live()
	intImage.FillRect(c.buf, c.Bounds(), 0)
}

// SetAccessParams records the byte window callers may touch. It only has
// an effect on canvases created WithAccessCheck.
func (c *RasterCanvas) SetAccessParams(base, limit int) {
	c.live()
	if !c.accessCheck {
		Logger().Debug("canvas: access window ignored", "base", base, "limit", limit)
		return
	}
	c.accessBase = base
	c.accessLimit = limit
}

// ReadBits copies the raw rows of area into dst. Each row copies
// min(stride, area width in bytes) bytes. It panics when area is not
// inside the surface or dst is too short.
func (c *RasterCanvas) ReadBits(dst []byte, stride int, area image.Rectangle) {
	c.live()
	if area.Empty() {
		return
	}
	if !area.In(c.Bounds()) {
		panic(fmt.Sprintf("canvas: ReadBits area %v outside surface %v", area, c.Bounds()))
	}
	bpp := c.format.BytesPerPixel()
	n := min(stride, area.Dx()*bpp)
	if need := (area.Dy()-1)*stride + n; len(dst) < need {
		panic(fmt.Sprintf("canvas: ReadBits buffer has %d bytes, need %d", len(dst), need))
	}
	x0 := area.Min.X * bpp
	for y := area.Min.Y; y < area.Max.Y; y++ {
		c.checkAccess(y*c.buf.Stride()+x0, n)
		row := c.buf.RowBytes(y)
		copy(dst[(y-area.Min.Y)*stride:], row[x0:x0+n])
	}
}

// forEach calls fn for every rectangle, on the worker pool when one is
// configured and the rectangles may be processed independently.
func (c *RasterCanvas) forEach(rects []image.Rectangle, independent bool, fn func(r image.Rectangle)) {
	if c.workers == nil || !independent || len(rects) < 2 {
		for _, r := range rects {
			fn(r)
		}
		return
	}
	c.workers.ForEach(len(rects), func(i int) {
		fn(rects[i])
	})
}

// pixelsOf returns the storage of src, panicking on a nil source.
func pixelsOf(src Source) *Image {
	if src == nil {
		panic("canvas: nil source")
	}
	img := src.Pixels()
	if img == nil || img.Released() {
		panic("canvas: source has no pixels")
	}
	return img
}
