package region

import (
	"image"
	"image/color"
)

// Mask returns an alpha image that is opaque inside the region and
// transparent elsewhere. It can serve as the destination mask of a
// golang.org/x/image/draw operation to clip it to the region.
func (g Region) Mask() image.Image {
	return regionMask{g: g, bounds: g.Extents()}
}

type regionMask struct {
	g      Region
	bounds image.Rectangle
}

func (m regionMask) ColorModel() color.Model {
	return color.Alpha16Model
}

func (m regionMask) Bounds() image.Rectangle {
	return m.bounds
}

func (m regionMask) At(x, y int) color.Color {
	if m.g.Contains(image.Pt(x, y)) {
		return color.Opaque
	}
	return color.Transparent
}
