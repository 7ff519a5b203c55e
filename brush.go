package canvas

import (
	"fmt"
	"image"
)

// Brush is the paint of a text draw.
// This is a sealed interface: only SolidBrush, PatternBrush and NoBrush
// implement it.
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()
}

// NoBrush paints nothing.
type NoBrush struct{}

func (NoBrush) brushMarker() {}

// SolidBrush paints one protocol color, in the surface's color layout.
type SolidBrush struct {
	Color uint32
}

func (SolidBrush) brushMarker() {}

// PatternBrush repeats an image. Pattern pixel (0, 0) lands on the
// destination point Pos.
type PatternBrush struct {
	Pattern ImageRef
	Pos     image.Point
}

func (PatternBrush) brushMarker() {}

// ImageRef names an image or a surface known to a Resolver.
type ImageRef struct {
	ID      uint64
	Surface bool
}

// String returns a readable reference.
func (r ImageRef) String() string {
	if r.Surface {
		return fmt.Sprintf("surface %d", r.ID)
	}
	return fmt.Sprintf("image %d", r.ID)
}

// Resolver looks up the images and surfaces referenced by brushes.
type Resolver interface {
	// Surface returns the surface with the given id, or nil.
	Surface(id uint32) Canvas

	// Image returns the image with the given id.
	Image(id uint64) (*Image, bool)
}

// BrushToucher is told about images referenced by brushes of draws that
// were clipped away, so image caches can keep them alive.
type BrushToucher interface {
	TouchImage(ref ImageRef)
}

// resolve returns the pixels of ref. It panics when ref is unknown.
func resolve(r Resolver, ref ImageRef) *Image {
	if r == nil {
		panic(fmt.Sprintf("canvas: no resolver for %v", ref))
	}
	if ref.Surface {
		s := r.Surface(uint32(ref.ID))
		if s == nil {
			panic(fmt.Sprintf("canvas: unresolved %v", ref))
		}
		return s.Pixels()
	}
	img, ok := r.Image(ref.ID)
	if !ok || img == nil {
		panic(fmt.Sprintf("canvas: unresolved %v", ref))
	}
	return img
}
