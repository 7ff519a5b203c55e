package canvas

import (
	"sync"

	"github.com/gogpu/canvas/cache"
)

// DefaultStoreCapacity is the number of images a Store keeps per cache
// shard by default.
const DefaultStoreCapacity = 64

// Store is a Resolver holding surfaces by id and images in an LRU cache.
// It also counts brush touches per image.
//
// Thread safety: All methods are safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	surfaces map[uint32]Canvas
	touches  map[ImageRef]int

	images *cache.ShardedCache[uint64, *Image]
}

var (
	_ Resolver     = (*Store)(nil)
	_ BrushToucher = (*Store)(nil)
)

// NewStore creates a store keeping up to capacity images per cache shard.
// A capacity of 0 or less uses DefaultStoreCapacity.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultStoreCapacity
	}
	images := cache.NewSharded[uint64, *Image](capacity, cache.Uint64Hasher)
	images.OnEvict = func(id uint64, _ *Image) {
		Logger().Debug("canvas: image evicted", "id", id)
	}
	return &Store{
		surfaces: make(map[uint32]Canvas),
		touches:  make(map[ImageRef]int),
		images:   images,
	}
}

// AddSurface registers a surface under id, replacing any previous one.
func (s *Store) AddSurface(id uint32, c Canvas) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surfaces[id] = c
}

// RemoveSurface forgets the surface with the given id and returns it.
func (s *Store) RemoveSurface(id uint32) Canvas {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.surfaces[id]
	delete(s.surfaces, id)
	return c
}

// Surface returns the surface with the given id, or nil.
func (s *Store) Surface(id uint32) Canvas {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.surfaces[id]
}

// AddImage caches img under id.
func (s *Store) AddImage(id uint64, img *Image) {
	s.images.Set(id, img)
}

// RemoveImage drops the image with the given id.
func (s *Store) RemoveImage(id uint64) bool {
	return s.images.Delete(id)
}

// Image returns the image with the given id.
func (s *Store) Image(id uint64) (*Image, bool) {
	return s.images.Get(id)
}

// Images returns the number of cached images.
func (s *Store) Images() int {
	return s.images.Len()
}

// TouchImage records a reference to ref. Touching a cached image also
// marks it recently used.
func (s *Store) TouchImage(ref ImageRef) {
	if !ref.Surface {
		s.images.Get(ref.ID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touches[ref]++
}

// Touches returns how often ref has been touched.
func (s *Store) Touches(ref ImageRef) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.touches[ref]
}
