package glyph

import (
	"encoding/binary"
	"hash/fnv"
	"image"
	"slices"

	"github.com/gogpu/canvas/cache"
	intImage "github.com/gogpu/canvas/internal/image"
)

// Compose renders s into a fresh mask at depth. Overlapping 1-bit glyphs
// are ORed; deeper glyphs keep the larger coverage.
func Compose(s *String, depth int) (*intImage.Buf, image.Point) {
	format, ok := intImage.MaskForDepth(depth)
	if !ok || s == nil {
		return nil, image.Point{}
	}
	bounds := s.Bounds()
	if bounds.Empty() {
		return nil, image.Point{}
	}
	mask, err := intImage.NewBuf(bounds.Dx(), bounds.Dy(), format)
	if err != nil {
		return nil, image.Point{}
	}
	for i := range s.Glyphs {
		g := &s.Glyphs[i]
		off := g.Bounds().Min.Sub(bounds.Min)
		for y := range g.Height {
			for x := range g.Width {
				v := uint32(g.Coverage(x, y, depth))
				if v == 0 {
					continue
				}
				mx, my := off.X+x, off.Y+y
				if cur := mask.Pixel(mx, my); cur > v {
					v = cur
				}
				mask.SetPixel(mx, my, v)
			}
		}
	}
	return mask, bounds.Min
}

// Cache is a Source that memoizes composed run masks.
//
// Masks are keyed by the full string contents and depth, so equal runs
// drawn at the same position share one mask. Returned masks must be
// treated as read-only.
type Cache struct {
	masks *cache.ShardedCache[uint64, *runEntry]
}

type runEntry struct {
	key  []byte
	mask *intImage.Buf
	pos  image.Point
}

// DefaultCacheCapacity is the default per-shard capacity of a Cache.
const DefaultCacheCapacity = 64

// NewCache creates a run-mask cache. capacity is per shard; values <= 0
// use DefaultCacheCapacity.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cache{masks: cache.NewSharded[uint64, *runEntry](capacity, cache.Uint64Hasher)}
}

// RunMask implements Source.
func (c *Cache) RunMask(s *String, depth int) (*intImage.Buf, image.Point) {
	if s == nil {
		return nil, image.Point{}
	}
	key := encodeKey(s, depth)
	h := fnv.New64a()
	_, _ = h.Write(key)
	sum := h.Sum64()

	if e, ok := c.masks.Get(sum); ok && slices.Equal(e.key, key) {
		return e.mask, e.pos
	}
	mask, pos := Compose(s, depth)
	c.masks.Set(sum, &runEntry{key: key, mask: mask, pos: pos})
	return mask, pos
}

// Len returns the number of cached masks.
func (c *Cache) Len() int {
	return c.masks.Len()
}

// Stats returns the underlying cache statistics.
func (c *Cache) Stats() cache.Stats {
	return c.masks.Stats()
}

func encodeKey(s *String, depth int) []byte {
	n := 2
	for i := range s.Glyphs {
		n += 28 + len(s.Glyphs[i].Data)
	}
	key := make([]byte, 0, n)
	key = append(key, byte(depth), byte(s.Flags))
	for i := range s.Glyphs {
		g := &s.Glyphs[i]
		for _, v := range [6]int{g.RenderPos.X, g.RenderPos.Y, g.Origin.X, g.Origin.Y, g.Width, g.Height} {
			key = binary.LittleEndian.AppendUint32(key, uint32(int32(v)))
		}
		key = binary.LittleEndian.AppendUint32(key, uint32(len(g.Data)))
		key = append(key, g.Data...)
	}
	return key
}
