package glyph

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/canvas/cache"
)

// ErrInvalidDepth is returned for a raster depth other than 1, 4 or 8.
var ErrInvalidDepth = errors.New("glyph: depth must be 1, 4 or 8")

// FontRenderer turns text into raster glyph strings using an OpenType face.
//
// Text is normalized to NFC before glyph lookup. Rendered glyph bitmaps are
// cached per rune.
//
// FontRenderer is safe for concurrent use.
type FontRenderer struct {
	mu     sync.Mutex
	face   font.Face
	depth  int
	glyphs *cache.ShardedCache[rune, *bitmap]
}

type bitmap struct {
	origin  image.Point
	width   int
	height  int
	data    []byte
	advance fixed.Int26_6
}

// NewFontRenderer parses ttf and creates a renderer at size pixels per em
// producing glyphs at depth. A nil ttf selects the Go Regular font.
func NewFontRenderer(ttf []byte, size float64, depth int) (*FontRenderer, error) {
	if FlagsForDepth(depth) == 0 {
		return nil, ErrInvalidDepth
	}
	if ttf == nil {
		ttf = goregular.TTF
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to create face: %w", err)
	}
	return &FontRenderer{
		face:   face,
		depth:  depth,
		glyphs: cache.NewSharded[rune, *bitmap](0, cache.RuneHasher),
	}, nil
}

// Depth returns the bit depth of produced glyphs.
func (r *FontRenderer) Depth() int {
	return r.depth
}

// Metrics returns the face metrics.
func (r *FontRenderer) Metrics() font.Metrics {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.face.Metrics()
}

// Render lays text out on one line with its baseline starting at origin.
// Runes missing from the face are skipped.
func (r *FontRenderer) Render(text string, origin image.Point) *String {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &String{Flags: FlagsForDepth(r.depth)}
	pen := fixed.P(origin.X, origin.Y)
	prev := rune(-1)
	for _, c := range norm.NFC.String(text) {
		if prev >= 0 {
			pen.X += r.face.Kern(prev, c)
		}
		prev = c
		bm := r.glyphs.GetOrCreate(c, func() *bitmap { return r.rasterize(c) })
		if bm == nil {
			continue
		}
		if bm.width > 0 && bm.height > 0 {
			s.Glyphs = append(s.Glyphs, Glyph{
				RenderPos: image.Pt(pen.X.Round(), pen.Y.Round()),
				Origin:    bm.origin,
				Width:     bm.width,
				Height:    bm.height,
				Data:      bm.data,
			})
		}
		pen.X += bm.advance
	}
	return s
}

// Advance returns the horizontal advance of text in pixels.
func (r *FontRenderer) Advance(text string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return font.MeasureString(r.face, norm.NFC.String(text)).Round()
}

// Close releases the face.
func (r *FontRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.glyphs.Clear()
	return r.face.Close()
}

// rasterize renders c at the origin and quantizes its coverage. The face
// reuses its mask between calls, so the coverage is copied out here.
func (r *FontRenderer) rasterize(c rune) *bitmap {
	dr, mask, maskp, advance, ok := r.face.Glyph(fixed.Point26_6{}, c)
	if !ok {
		return nil
	}
	bm := &bitmap{
		origin:  dr.Min,
		width:   dr.Dx(),
		height:  dr.Dy(),
		advance: advance,
	}
	stride := RowBytes(bm.width, r.depth)
	bm.data = make([]byte, stride*bm.height)
	for y := range bm.height {
		for x := range bm.width {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			putCoverage(bm.data[y*stride:], x, r.depth, uint8(a>>8))
		}
	}
	return bm
}

// putCoverage stores 8-bit coverage a as pixel x of a row at depth.
func putCoverage(row []byte, x, depth int, a uint8) {
	switch depth {
	case 1:
		if a >= 0x80 {
			row[x/8] |= 0x80 >> uint(x%8)
		}
	case 4:
		v := a >> 4
		if x%2 == 0 {
			row[x/2] |= v << 4
		} else {
			row[x/2] |= v
		}
	default:
		row[x] = a
	}
}
