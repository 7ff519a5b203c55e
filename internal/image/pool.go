package image

import "sync"

// Pool is a thread-safe pool for reusing Buf instances.
//
// Pool groups buffers by their dimensions and format. The canvas uses it
// for the short-lived temporaries of scaled blits.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buf
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of identical image specifications.
type poolKey struct {
	width  int
	height int
	format Format
}

// NewPool creates a new buffer pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Buf),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a zeroed buffer from the pool or creates a new one.
// Returns nil for invalid dimensions or format.
func (p *Pool) Get(width, height int, format Format) *Buf {
	key := poolKey{width: width, height: height, format: format}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return buf
	}
	p.mu.Unlock()

	buf, err := NewBuf(width, height, format)
	if err != nil {
		return nil
	}
	return buf
}

// Put returns a buffer to the pool. The buffer is cleared before it is
// stored. Nil, external and released buffers are discarded.
func (p *Pool) Put(buf *Buf) {
	if buf == nil || buf.external || buf.Released() {
		return
	}

	buf.Clear()

	key := poolKey{width: buf.width, height: buf.height, format: buf.format}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the total number of pooled buffers.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

// Reset drops every pooled buffer.
func (p *Pool) Reset() {
	p.mu.Lock()
	clear(p.buckets)
	p.mu.Unlock()
}
