package canvas

import (
	"image"

	xdraw "golang.org/x/image/draw"

	intImage "github.com/gogpu/canvas/internal/image"
	"github.com/gogpu/canvas/region"
)

// DrawText draws a glyph string clipped to bbox and clip.
//
// When the clipped area is empty the brushes are only touched. Otherwise
// BackArea is filled with BackBrush and the glyph coverage is composited
// over the surface with ForeBrush. Vector glyphs are not drawn.
func (c *RasterCanvas) DrawText(bbox image.Rectangle, clip Clip, t *Text) {
	c.live()
	rgn := clip.apply(region.Rect(bbox))
	if rgn.IsEmpty() {
		c.touch(t.ForeBrush)
		c.touch(t.BackBrush)
		return
	}

	if !t.BackArea.Empty() {
		if t.ForeMode != ROPDOpPut {
			panic("canvas: text background needs ROPDOpPut fore mode")
		}
		if back := rgn.IntersectRect(t.BackArea); !back.IsEmpty() {
			c.fillBrush(back.Rects(), t.BackBrush, ROPCopy)
		}
	}

	if t.Str == nil {
		return
	}
	depth, ok := t.Str.Flags.Depth()
	if !ok {
		Logger().Warn("canvas: unsupported glyph encoding", "flags", t.Str.Flags)
		return
	}
	if depth == 8 {
		Logger().Warn("canvas: untested path A8 glyphs")
	}

	paint := c.brushImage(t.ForeBrush)
	mask, pos := c.glyphs.RunMask(t.Str, depth)
	if paint == nil || mask == nil {
		return
	}
	for _, r := range rgn.IntersectRect(mask.Bounds().Add(pos)).Rects() {
		xdraw.DrawMask(c.buf, r, paint, r.Min, mask, r.Min.Sub(pos), xdraw.Over)
	}
}

// brushImage returns the paint of a brush in destination coordinates, or
// nil for NoBrush.
func (c *RasterCanvas) brushImage(br Brush) image.Image {
	switch b := br.(type) {
	case nil, NoBrush:
		return nil
	case SolidBrush:
		return image.NewUniform(brushColor(b.Color, c.layout))
	case PatternBrush:
		return intImage.NewPattern(resolve(c.resolver, b.Pattern), b.Pos)
	default:
		panic("canvas: invalid brush type")
	}
}
