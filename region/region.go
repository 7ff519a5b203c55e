// Package region implements sets of pixels described as disjoint
// rectangles.
//
// A Region is stored y-x banded: rectangles are sorted by top edge and then
// left edge, rectangles of one band share their top and bottom edges, and
// rectangles within a band never touch. Vertically adjacent bands with the
// same horizontal spans are merged. Every Region value obeys this form, so
// two equal pixel sets always have identical rectangle lists.
//
// Regions are immutable values. Every operation returns a new Region.
package region

import (
	"fmt"
	"image"
	"slices"
	"sort"
	"strings"
)

// Region is a set of pixels. The zero value is the empty region.
type Region struct {
	rects []image.Rectangle
}

// New returns the union of rs. Empty rectangles are ignored.
func New(rs ...image.Rectangle) Region {
	return build(rs, nil, opUnion)
}

// Rect returns the region covering r.
func Rect(r image.Rectangle) Region {
	if r.Empty() {
		return Region{}
	}
	return Region{rects: []image.Rectangle{r.Canon()}}
}

// Rects returns the banded rectangles of the region. The caller may modify
// the returned slice.
func (g Region) Rects() []image.Rectangle {
	return slices.Clone(g.rects)
}

// Len returns the number of rectangles.
func (g Region) Len() int {
	return len(g.rects)
}

// IsEmpty reports whether the region covers no pixels.
func (g Region) IsEmpty() bool {
	return len(g.rects) == 0
}

// Extents returns the bounding box of the region.
func (g Region) Extents() image.Rectangle {
	if len(g.rects) == 0 {
		return image.Rectangle{}
	}
	ext := g.rects[0]
	for _, r := range g.rects[1:] {
		ext.Min.X = min(ext.Min.X, r.Min.X)
		ext.Max.X = max(ext.Max.X, r.Max.X)
	}
	ext.Max.Y = g.rects[len(g.rects)-1].Max.Y
	return ext
}

// Area returns the number of pixels in the region.
func (g Region) Area() int {
	n := 0
	for _, r := range g.rects {
		n += r.Dx() * r.Dy()
	}
	return n
}

// Equal reports whether both regions cover the same pixels.
func (g Region) Equal(o Region) bool {
	return slices.Equal(g.rects, o.rects)
}

// Intersect returns the pixels in both g and o.
func (g Region) Intersect(o Region) Region {
	if g.IsEmpty() || o.IsEmpty() {
		return Region{}
	}
	return build(g.rects, o.rects, opIntersect)
}

// IntersectRect returns the pixels of g inside r.
func (g Region) IntersectRect(r image.Rectangle) Region {
	if r.Empty() || g.IsEmpty() {
		return Region{}
	}
	out := make([]image.Rectangle, 0, len(g.rects))
	for _, s := range g.rects {
		if c := s.Intersect(r); !c.Empty() {
			out = append(out, c)
		}
	}
	return build(out, nil, opUnion)
}

// Union returns the pixels in g or o.
func (g Region) Union(o Region) Region {
	if g.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return g
	}
	return build(g.rects, o.rects, opUnion)
}

// UnionRect returns the pixels in g or r.
func (g Region) UnionRect(r image.Rectangle) Region {
	return g.Union(Rect(r))
}

// Subtract returns the pixels in g but not in o.
func (g Region) Subtract(o Region) Region {
	if g.IsEmpty() || o.IsEmpty() {
		return g
	}
	return build(g.rects, o.rects, opSubtract)
}

// Translate returns the region moved by (dx, dy).
func (g Region) Translate(dx, dy int) Region {
	if len(g.rects) == 0 || (dx == 0 && dy == 0) {
		return g
	}
	d := image.Pt(dx, dy)
	out := make([]image.Rectangle, len(g.rects))
	for i, r := range g.rects {
		out[i] = r.Add(d)
	}
	return Region{rects: out}
}

// Contains reports whether p is in the region.
func (g Region) Contains(p image.Point) bool {
	i := sort.Search(len(g.rects), func(i int) bool { return g.rects[i].Max.Y > p.Y })
	if i == len(g.rects) || g.rects[i].Min.Y > p.Y {
		return false
	}
	top := g.rects[i].Min.Y
	for ; i < len(g.rects) && g.rects[i].Min.Y == top; i++ {
		r := g.rects[i]
		if p.X < r.Min.X {
			return false
		}
		if p.X < r.Max.X {
			return true
		}
	}
	return false
}

// ContainsRect reports whether every pixel of r is in the region.
func (g Region) ContainsRect(r image.Rectangle) bool {
	if r.Empty() {
		return true
	}
	return Rect(r).Subtract(g).IsEmpty()
}

// String returns a compact description for debugging.
func (g Region) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, r := range g.rects {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", r)
	}
	sb.WriteByte('}')
	return sb.String()
}
