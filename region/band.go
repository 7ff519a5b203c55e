package region

import (
	"image"
	"slices"
)

type op uint8

const (
	opUnion op = iota
	opIntersect
	opSubtract
)

func (o op) keep(inA, inB bool) bool {
	switch o {
	case opIntersect:
		return inA && inB
	case opSubtract:
		return inA && !inB
	default:
		return inA || inB
	}
}

type span struct{ x0, x1 int }

// build combines two arbitrary rectangle lists into banded form. Band edges
// are every distinct top and bottom edge of the inputs.
func build(a, b []image.Rectangle, o op) Region {
	ys := make([]int, 0, 2*(len(a)+len(b)))
	for _, list := range [2][]image.Rectangle{a, b} {
		for _, r := range list {
			if !r.Empty() {
				ys = append(ys, r.Min.Y, r.Max.Y)
			}
		}
	}
	slices.Sort(ys)
	ys = slices.Compact(ys)

	var out []image.Rectangle
	var prev []span
	prevStart, prevEnd := 0, 0 // band of prev within out

	for i := 0; i+1 < len(ys); i++ {
		y0, y1 := ys[i], ys[i+1]
		spans := combine(spansIn(a, y0, y1), spansIn(b, y0, y1), o)
		if len(spans) == 0 {
			prev = nil
			continue
		}
		// Extend the previous band when it touches and has the same spans.
		if prev != nil && out[prevStart].Max.Y == y0 && slices.Equal(prev, spans) {
			for j := prevStart; j < prevEnd; j++ {
				out[j].Max.Y = y1
			}
			continue
		}
		prevStart = len(out)
		for _, s := range spans {
			out = append(out, image.Rect(s.x0, y0, s.x1, y1))
		}
		prevEnd = len(out)
		prev = spans
	}
	return Region{rects: out}
}

// spansIn returns the sorted, merged x spans of the rectangles that cover
// the band [y0, y1).
func spansIn(rs []image.Rectangle, y0, y1 int) []span {
	var out []span
	for _, r := range rs {
		if r.Empty() || r.Min.Y > y0 || r.Max.Y < y1 {
			continue
		}
		out = append(out, span{r.Min.X, r.Max.X})
	}
	if len(out) < 2 {
		return out
	}
	slices.SortFunc(out, func(p, q span) int { return p.x0 - q.x0 })
	merged := out[:1]
	for _, s := range out[1:] {
		last := &merged[len(merged)-1]
		if s.x0 <= last.x1 {
			last.x1 = max(last.x1, s.x1)
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// combine applies o to two merged span lists.
func combine(a, b []span, o op) []span {
	xs := make([]int, 0, 2*(len(a)+len(b)))
	for _, s := range a {
		xs = append(xs, s.x0, s.x1)
	}
	for _, s := range b {
		xs = append(xs, s.x0, s.x1)
	}
	slices.Sort(xs)
	xs = slices.Compact(xs)

	var out []span
	ia, ib := 0, 0
	for i := 0; i+1 < len(xs); i++ {
		x0, x1 := xs[i], xs[i+1]
		for ia < len(a) && a[ia].x1 <= x0 {
			ia++
		}
		for ib < len(b) && b[ib].x1 <= x0 {
			ib++
		}
		inA := ia < len(a) && a[ia].x0 <= x0
		inB := ib < len(b) && b[ib].x0 <= x0
		if !o.keep(inA, inB) {
			continue
		}
		if n := len(out); n > 0 && out[n-1].x1 == x0 {
			out[n-1].x1 = x1
			continue
		}
		out = append(out, span{x0, x1})
	}
	return out
}
