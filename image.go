package canvas

import (
	stdimage "image"

	"github.com/gogpu/canvas/internal/blend"
	intImage "github.com/gogpu/canvas/internal/image"
)

// Image is a packed pixel buffer. Both raw images and canvas surfaces are
// backed by one.
type Image = intImage.Buf

// Format is the pixel storage format of an Image.
type Format = intImage.Format

// Pixel formats.
const (
	FormatXRGB32   = intImage.FormatXRGB32
	FormatARGB32   = intImage.FormatARGB32
	FormatXRGB1555 = intImage.FormatXRGB1555
	FormatRGB565   = intImage.FormatRGB565
	FormatA8       = intImage.FormatA8
	FormatA4       = intImage.FormatA4
	FormatA1       = intImage.FormatA1
)

// Construction errors.
var (
	ErrInvalidDimensions = intImage.ErrInvalidDimensions
	ErrInvalidFormat     = intImage.ErrInvalidFormat
	ErrInvalidStride     = intImage.ErrInvalidStride
	ErrDataTooSmall      = intImage.ErrDataTooSmall
)

// ROP is a bitwise raster operation applied to raw pixel values.
type ROP = blend.ROP

// Raster operations, numbered as on the wire.
const (
	ROPClear        = blend.ROPClear
	ROPAnd          = blend.ROPAnd
	ROPAndReverse   = blend.ROPAndReverse
	ROPCopy         = blend.ROPCopy
	ROPAndInverted  = blend.ROPAndInverted
	ROPNoop         = blend.ROPNoop
	ROPXor          = blend.ROPXor
	ROPOr           = blend.ROPOr
	ROPNor          = blend.ROPNor
	ROPEquiv        = blend.ROPEquiv
	ROPInvert       = blend.ROPInvert
	ROPOrReverse    = blend.ROPOrReverse
	ROPCopyInverted = blend.ROPCopyInverted
	ROPOrInverted   = blend.ROPOrInverted
	ROPNand         = blend.ROPNand
	ROPSet          = blend.ROPSet
)

// NewImage creates a zeroed image.
func NewImage(width, height int, format Format) (*Image, error) {
	return intImage.NewBuf(width, height, format)
}

// ImageFromRaw wraps caller-owned pixel data without copying.
func ImageFromRaw(data []byte, width, height int, format Format, stride int) (*Image, error) {
	return intImage.FromRaw(data, width, height, format, stride)
}

// ImageFromStd converts any standard library image into an Image of the
// given format.
func ImageFromStd(img stdimage.Image, format Format) (*Image, error) {
	return intImage.FromImage(img, format)
}
