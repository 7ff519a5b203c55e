package image

import (
	"image"
	"image/color"
)

// Pattern is an unbounded image.Image that repeats a tile in both
// directions. The tile's (0, 0) pixel lands on Origin.
//
// Pattern is a read-only view of the tile and is meant to live for a single
// drawing call.
type Pattern struct {
	tile   *Buf
	origin image.Point
}

// patternExtent bounds the nominal size of a Pattern.
const patternExtent = 1 << 28

// NewPattern creates a repeating pattern of tile anchored at origin.
// Returns nil if tile is nil.
func NewPattern(tile *Buf, origin image.Point) *Pattern {
	if tile == nil {
		return nil
	}
	return &Pattern{tile: tile, origin: origin}
}

// Tile returns the repeated buffer.
func (p *Pattern) Tile() *Buf {
	if p == nil {
		return nil
	}
	return p.tile
}

// Origin returns the anchor point.
func (p *Pattern) Origin() image.Point {
	if p == nil {
		return image.Point{}
	}
	return p.origin
}

// ColorModel implements image.Image.
func (p *Pattern) ColorModel() color.Model {
	return p.tile.ColorModel()
}

// Bounds implements image.Image.
func (p *Pattern) Bounds() image.Rectangle {
	return image.Rect(-patternExtent, -patternExtent, patternExtent, patternExtent)
}

// At implements image.Image.
func (p *Pattern) At(x, y int) color.Color {
	return p.tile.At(mod(x-p.origin.X, p.tile.width), mod(y-p.origin.Y, p.tile.height))
}

// Fill tiles the pattern over r of dst with raw pixel copies.
func (p *Pattern) Fill(dst *Buf, r image.Rectangle) {
	TileRect(dst, r, p.tile, p.origin)
}
