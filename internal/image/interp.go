package image

import xdraw "golang.org/x/image/draw"

// InterpolationMode defines how scaled sources are sampled.
type InterpolationMode uint8

const (
	// InterpNearest selects the closest pixel (no interpolation).
	InterpNearest InterpolationMode = iota

	// InterpBilinear performs linear interpolation between 4 neighboring pixels.
	InterpBilinear

	// InterpBicubic performs Catmull-Rom interpolation over a 4x4 neighborhood.
	InterpBicubic
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	case InterpBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// Interpolator returns the golang.org/x/image/draw interpolator for m.
// Unknown modes fall back to nearest.
func (m InterpolationMode) Interpolator() xdraw.Interpolator {
	switch m {
	case InterpBilinear:
		return xdraw.BiLinear
	case InterpBicubic:
		return xdraw.CatmullRom
	default:
		return xdraw.NearestNeighbor
	}
}
