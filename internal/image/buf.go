package image

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"

	pcolor "github.com/gogpu/canvas/internal/color"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// Buf is a packed pixel buffer.
//
// Buf stores pixel data in a contiguous byte slice with a row stride that
// may be larger than the minimum for alignment. Multi-byte pixels are
// little-endian. A Buf made by FromRaw wraps caller storage and never
// reallocates it.
//
// Buf implements draw.Image so it can be the destination or the source of
// golang.org/x/image/draw operations.
//
// Thread safety: Buf has no internal locking. Concurrent writers must touch
// disjoint pixels.
type Buf struct {
	data     []byte
	width    int
	height   int
	stride   int
	format   Format
	external bool
}

func validate(width, height int, format Format) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if !format.IsValid() {
		return ErrInvalidFormat
	}
	return nil
}

// NewBuf creates a zeroed buffer with the minimum stride for width.
func NewBuf(width, height int, format Format) (*Buf, error) {
	if err := validate(width, height, format); err != nil {
		return nil, err
	}
	stride := format.RowBytes(width)
	return &Buf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// NewBufWithStride creates a zeroed buffer with a custom stride.
// Stride must be at least format.RowBytes(width).
func NewBufWithStride(width, height int, format Format, stride int) (*Buf, error) {
	if err := validate(width, height, format); err != nil {
		return nil, err
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}
	return &Buf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw wraps existing data without copying.
// The caller keeps ownership of data; Release only drops the reference.
func FromRaw(data []byte, width, height int, format Format, stride int) (*Buf, error) {
	if err := validate(width, height, format); err != nil {
		return nil, err
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}
	if len(data) < stride*height {
		return nil, ErrDataTooSmall
	}
	return &Buf{
		data:     data[:stride*height],
		width:    width,
		height:   height,
		stride:   stride,
		format:   format,
		external: true,
	}, nil
}

// FromImage converts any image.Image into a buffer of the given format.
// The result is positioned at the origin.
func FromImage(img image.Image, format Format) (*Buf, error) {
	rgba := clone.AsRGBA(img)
	r := rgba.Bounds()
	b, err := NewBuf(r.Dx(), r.Dy(), format)
	if err != nil {
		return nil, err
	}
	for y := range b.height {
		for x := range b.width {
			b.Set(x, y, rgba.RGBAAt(r.Min.X+x, r.Min.Y+y))
		}
	}
	return b, nil
}

// Clone creates a deep copy of the buffer. The copy owns its storage.
func (b *Buf) Clone() *Buf {
	data := make([]byte, len(b.data))
	copy(data, b.data)
	return &Buf{
		data:   data,
		width:  b.width,
		height: b.height,
		stride: b.stride,
		format: b.format,
	}
}

// Release drops the pixel storage. External storage is left intact.
func (b *Buf) Release() {
	b.data = nil
}

// Released reports whether Release has been called.
func (b *Buf) Released() bool {
	return b.data == nil
}

// External reports whether the storage belongs to the caller.
func (b *Buf) External() bool {
	return b.external
}

// Width returns the image width in pixels.
func (b *Buf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *Buf) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *Buf) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *Buf) Format() Format {
	return b.format
}

// Size returns the image dimensions as (width, height).
func (b *Buf) Size() (int, int) {
	return b.width, b.height
}

// Bounds implements image.Image.
func (b *Buf) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Data returns the raw pixel data slice.
func (b *Buf) Data() []byte {
	return b.data
}

// Pixels returns the buffer itself, so a *Buf can stand in wherever a
// pixel source is expected.
func (b *Buf) Pixels() *Buf {
	return b
}

// RowBytes returns the used bytes of row y, or nil if y is out of bounds.
func (b *Buf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// Pixel returns the raw pixel value at (x, y) in the buffer's format.
// The ignored top byte of FormatXRGB32 reads as zero. Mask formats return
// the stored coverage bits. Out-of-bounds reads return 0.
func (b *Buf) Pixel(x, y int) uint32 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	row := b.data[y*b.stride:]
	switch b.format {
	case FormatXRGB32:
		return binary.LittleEndian.Uint32(row[x*4:]) & 0x00ffffff
	case FormatARGB32:
		return binary.LittleEndian.Uint32(row[x*4:])
	case FormatXRGB1555:
		return uint32(binary.LittleEndian.Uint16(row[x*2:])) & 0x7fff
	case FormatRGB565:
		return uint32(binary.LittleEndian.Uint16(row[x*2:]))
	case FormatA8:
		return uint32(row[x])
	case FormatA4:
		v := row[x/2]
		if x&1 == 0 {
			return uint32(v >> 4)
		}
		return uint32(v & 0x0f)
	case FormatA1:
		return uint32(row[x/8]>>(7-uint(x&7))) & 1
	}
	return 0
}

// SetPixel stores a raw pixel value at (x, y). Out-of-bounds writes are
// ignored.
func (b *Buf) SetPixel(x, y int, v uint32) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	row := b.data[y*b.stride:]
	switch b.format {
	case FormatXRGB32:
		binary.LittleEndian.PutUint32(row[x*4:], v&0x00ffffff)
	case FormatARGB32:
		binary.LittleEndian.PutUint32(row[x*4:], v)
	case FormatXRGB1555:
		binary.LittleEndian.PutUint16(row[x*2:], uint16(v&0x7fff))
	case FormatRGB565:
		binary.LittleEndian.PutUint16(row[x*2:], uint16(v))
	case FormatA8:
		row[x] = uint8(v)
	case FormatA4:
		i := x / 2
		if x&1 == 0 {
			row[i] = row[i]&0x0f | uint8(v&0x0f)<<4
		} else {
			row[i] = row[i]&0xf0 | uint8(v&0x0f)
		}
	case FormatA1:
		bit := uint8(0x80) >> uint(x&7)
		if v&1 != 0 {
			row[x/8] |= bit
		} else {
			row[x/8] &^= bit
		}
	}
}

// Coverage returns the 8-bit coverage of a mask pixel. Color formats
// report their alpha channel, or 0xff when they have none.
func (b *Buf) Coverage(x, y int) uint8 {
	return uint8(b.format.ToARGB(b.Pixel(x, y)) >> 24)
}

// ToARGB widens a raw pixel of format f to a premultiplied 0xAARRGGBB
// word. Masks become alpha-only values.
func (f Format) ToARGB(v uint32) uint32 {
	switch f {
	case FormatXRGB32:
		return 0xff000000 | v&0x00ffffff
	case FormatARGB32:
		return v
	case FormatXRGB1555:
		return 0xff000000 | pcolor.Expand555(v)
	case FormatRGB565:
		return 0xff000000 | pcolor.Expand565(v)
	case FormatA8:
		return (v & 0xff) << 24
	case FormatA4:
		return ((v & 0x0f) * 17) << 24
	case FormatA1:
		if v&1 != 0 {
			return 0xff000000
		}
	}
	return 0
}

// FromARGB narrows a premultiplied 0xAARRGGBB word to a raw pixel of
// format f.
func (f Format) FromARGB(c uint32) uint32 {
	switch f {
	case FormatXRGB32:
		return c & 0x00ffffff
	case FormatARGB32:
		return c
	case FormatXRGB1555:
		return pcolor.Pack555(c)
	case FormatRGB565:
		return pcolor.Pack565(c)
	case FormatA8:
		return c >> 24
	case FormatA4:
		return c >> 28
	case FormatA1:
		return c >> 31
	}
	return 0
}

// ConvertPixel converts a raw pixel between formats.
func ConvertPixel(v uint32, from, to Format) uint32 {
	if from == to {
		return v
	}
	return to.FromARGB(from.ToARGB(v))
}

// ColorModel implements image.Image.
func (b *Buf) ColorModel() color.Model {
	if b.format.IsMask() {
		return color.AlphaModel
	}
	return color.RGBAModel
}

// At implements image.Image.
func (b *Buf) At(x, y int) color.Color {
	c := b.format.ToARGB(b.Pixel(x, y))
	if b.format.IsMask() {
		return color.Alpha{A: uint8(c >> 24)}
	}
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}

// Set implements draw.Image.
func (b *Buf) Set(x, y int, c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	v := uint32(rgba.A)<<24 | uint32(rgba.R)<<16 | uint32(rgba.G)<<8 | uint32(rgba.B)
	b.SetPixel(x, y, b.format.FromARGB(v))
}

// Clear sets all bytes to zero.
func (b *Buf) Clear() {
	clear(b.data)
}

// ToRGBA copies the buffer into a new *image.RGBA.
func (b *Buf) ToRGBA() *image.RGBA {
	out := image.NewRGBA(b.Bounds())
	for y := range b.height {
		for x := range b.width {
			out.Set(x, y, b.At(x, y))
		}
	}
	return out
}

// ByteSize returns the total size of the image data in bytes.
func (b *Buf) ByteSize() int {
	return len(b.data)
}
