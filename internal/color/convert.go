package color

// Expand555 expands a packed x1r5g5b5 color to 0x00RRGGBB.
// The top bits of each channel are replicated into the low bits so that
// 0x1f maps to 0xff and 0 maps to 0.
func Expand555(c uint32) uint32 {
	ret := ((c & 0x001f) << 3) | ((c & 0x001c) >> 2)
	ret |= ((c & 0x03e0) << 6) | ((c & 0x0380) << 1)
	ret |= ((c & 0x7c00) << 9) | ((c & 0x7000) << 4)
	return ret
}

// Expand565 expands a packed r5g6b5 color to 0x00RRGGBB.
// Green carries six bits and replicates its top two.
func Expand565(c uint32) uint32 {
	ret := ((c & 0x001f) << 3) | ((c & 0x001c) >> 2)
	ret |= ((c & 0x07e0) << 5) | ((c & 0x0600) >> 1)
	ret |= ((c & 0xf800) << 8) | ((c & 0xe000) << 3)
	return ret
}

// Pack555 truncates 0x00RRGGBB to a packed x1r5g5b5 color.
func Pack555(rgb uint32) uint32 {
	return (rgb>>9)&0x7c00 | (rgb>>6)&0x03e0 | (rgb>>3)&0x001f
}

// Pack565 truncates 0x00RRGGBB to a packed r5g6b5 color.
func Pack565(rgb uint32) uint32 {
	return (rgb>>8)&0xf800 | (rgb>>5)&0x07e0 | (rgb>>3)&0x001f
}

// Normalize maps each channel of a packed color to the full 16-bit range
// with (component * 0xffff) / mask and sets alpha to fully opaque.
func Normalize(c uint32, l Layout) ColorU16 {
	var out ColorU16
	out.B = normChannel(c, l.Mask)
	c >>= l.Shift
	out.G = normChannel(c, l.Mask)
	c >>= l.Shift
	out.R = normChannel(c, l.Mask)
	out.A = 0xffff
	return out
}

func normChannel(c, mask uint32) uint16 {
	if mask == 0 {
		return 0
	}
	return uint16(((c & mask) * 0xffff) / mask)
}

// Scale8 widens an 8-bit component to 16 bits by replication.
func Scale8(v uint8) uint16 {
	return uint16(v)<<8 | uint16(v)
}
