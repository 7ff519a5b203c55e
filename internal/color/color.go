// Package color converts protocol-level packed colors between the 16-bit
// and 32-bit channel layouts used by the raster canvas.
package color

// Layout describes how a packed protocol color splits into channels.
// Channels are stored blue, green, red from the least significant bits,
// each Shift bits wide and extracted with Mask.
type Layout struct {
	Shift uint32
	Mask  uint32
}

// Standard layouts.
var (
	// Layout555 is the 16-bit layout with 5 bits per channel.
	Layout555 = Layout{Shift: 5, Mask: 0x1f}

	// Layout888 is the 32-bit layout with 8 bits per channel.
	Layout888 = Layout{Shift: 8, Mask: 0xff}
)

// Is16 reports whether the layout is one of the 16-bit layouts.
func (l Layout) Is16() bool {
	return l.Shift != 8
}

// ColorU16 represents a color with uint16 components in [0,0xffff].
// Components are not premultiplied.
type ColorU16 struct {
	R, G, B, A uint16
}
