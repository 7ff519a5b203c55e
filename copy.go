package canvas

import (
	"image"

	intImage "github.com/gogpu/canvas/internal/image"
	"github.com/gogpu/canvas/region"
)

// CopyRegion moves the pixels of dest - (dx, dy) onto dest within the
// surface. Rectangles are visited in an order that never reads a pixel
// an earlier rectangle has already overwritten.
func (c *RasterCanvas) CopyRegion(dest region.Region, dx, dy int) {
	c.live()
	if dx == 0 && dy == 0 {
		return
	}
	rects := dest.Rects()
	d := image.Pt(dx, dy)
	for _, i := range copyOrder(rects, dx, dy) {
		r := rects[i]
		intImage.CopyRect(c.buf, r, r.Min.Sub(d))
	}
}

// copyOrder returns the visiting order of banded rectangles for a copy by
// (dx, dy).
//
// Moving down, later bands go first. Moving right, later rectangles within
// a band go first. The two combine per quadrant.
func copyOrder(rects []image.Rectangle, dx, dy int) []int {
	n := len(rects)
	order := make([]int, 0, n)

	switch {
	case dy > 0 && dx >= 0:
		for i := n - 1; i >= 0; i-- {
			order = append(order, i)
		}
	case dy > 0:
		// Bands bottom to top, each band left to right.
		for end := n; end > 0; {
			start := end - 1
			for start > 0 && rects[start-1].Min.Y == rects[end-1].Min.Y {
				start--
			}
			for i := start; i < end; i++ {
				order = append(order, i)
			}
			end = start
		}
	case dx > 0:
		// Bands top to bottom, each band right to left.
		for start := 0; start < n; {
			end := start + 1
			for end < n && rects[end].Min.Y == rects[start].Min.Y {
				end++
			}
			for i := end - 1; i >= start; i-- {
				order = append(order, i)
			}
			start = end
		}
	default:
		for i := range n {
			order = append(order, i)
		}
	}
	return order
}
