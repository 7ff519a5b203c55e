// Package image provides the pixel buffers and pixel-buffer primitives
// used by the raster canvas.
//
// A Buf stores pixels in one of a small set of packed formats that mirror
// the formats a remote display protocol sends: 32-bit xRGB/ARGB, 16-bit
// 1555/565 and 1/4/8-bit alpha masks. The primitives in this package
// (fills, tiles, blits, ROP blits, color-key blits and overlap-safe copies)
// work on raw pixel values and never write outside the buffer.
package image

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatXRGB32 is 32-bit RGB stored as a little-endian 0xXXRRGGBB word.
	// The top byte is ignored on read.
	FormatXRGB32 Format = iota

	// FormatARGB32 is 32-bit premultiplied ARGB stored as 0xAARRGGBB.
	FormatARGB32

	// FormatXRGB1555 is 16-bit RGB with 5 bits per channel (0x7c00 red).
	FormatXRGB1555

	// FormatRGB565 is 16-bit RGB with a 6-bit green channel.
	FormatRGB565

	// FormatA8 is an 8-bit coverage mask.
	FormatA8

	// FormatA4 is a 4-bit coverage mask, high nibble first.
	FormatA4

	// FormatA1 is a 1-bit coverage mask, most significant bit first.
	FormatA1

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BitsPerPixel is the storage size of one pixel in bits.
	BitsPerPixel int

	// Depth is the number of significant color bits per pixel.
	Depth int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// IsMask indicates an alpha-only coverage format.
	IsMask bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatXRGB32:   {BitsPerPixel: 32, Depth: 24},
	FormatARGB32:   {BitsPerPixel: 32, Depth: 32, HasAlpha: true},
	FormatXRGB1555: {BitsPerPixel: 16, Depth: 15},
	FormatRGB565:   {BitsPerPixel: 16, Depth: 16},
	FormatA8:       {BitsPerPixel: 8, Depth: 8, HasAlpha: true, IsMask: true},
	FormatA4:       {BitsPerPixel: 4, Depth: 4, HasAlpha: true, IsMask: true},
	FormatA1:       {BitsPerPixel: 1, Depth: 1, HasAlpha: true, IsMask: true},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BitsPerPixel returns the storage size of one pixel in bits.
func (f Format) BitsPerPixel() int {
	return f.Info().BitsPerPixel
}

// BytesPerPixel returns the number of whole bytes per pixel.
// Sub-byte mask formats return 0.
func (f Format) BytesPerPixel() int {
	return f.Info().BitsPerPixel / 8
}

// Depth returns the number of significant bits per pixel.
func (f Format) Depth() int {
	return f.Info().Depth
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsMask returns true for the alpha-only coverage formats.
func (f Format) IsMask() bool {
	return f.Info().IsMask
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatXRGB32:
		return "XRGB32"
	case FormatARGB32:
		return "ARGB32"
	case FormatXRGB1555:
		return "XRGB1555"
	case FormatRGB565:
		return "RGB565"
	case FormatA8:
		return "A8"
	case FormatA4:
		return "A4"
	case FormatA1:
		return "A1"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes returns the minimum stride for a row of the given width.
// Rows are padded to a multiple of four bytes.
func (f Format) RowBytes(width int) int {
	return (width*f.BitsPerPixel() + 31) / 32 * 4
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// MaskForDepth returns the coverage format for a glyph depth of 1, 4 or 8
// bits. The second result is false for any other depth.
func MaskForDepth(depth int) (Format, bool) {
	switch depth {
	case 1:
		return FormatA1, true
	case 4:
		return FormatA4, true
	case 8:
		return FormatA8, true
	default:
		return 0, false
	}
}
