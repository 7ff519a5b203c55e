package image

import (
	"sync"
	"testing"
)

func TestPoolGetPut(t *testing.T) {
	p := NewPool(2)
	a := p.Get(4, 4, FormatXRGB32)
	if a == nil {
		t.Fatal("Get() = nil")
	}
	a.SetPixel(1, 1, 0xffffff)
	p.Put(a)
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}

	b := p.Get(4, 4, FormatXRGB32)
	if b != a {
		t.Error("Get() did not reuse the pooled buffer")
	}
	if got := b.Pixel(1, 1); got != 0 {
		t.Errorf("reused Pixel(1, 1) = %#x, want 0", got)
	}
	if other := p.Get(4, 4, FormatA8); other == a {
		t.Error("Get() returned a buffer of another format")
	}
}

func TestPoolLimits(t *testing.T) {
	p := NewPool(1)
	p.Put(p.Get(2, 2, FormatA8))
	p.Put(p.Get(2, 2, FormatA8))
	extra, _ := NewBuf(2, 2, FormatA8)
	p.Put(extra)
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}

	ext, _ := FromRaw(make([]byte, 16), 2, 2, FormatXRGB32, 8)
	p.Put(ext)
	p.Put(nil)
	if p.Len() != 1 {
		t.Errorf("Len() after external Put = %d, want 1", p.Len())
	}

	p.Reset()
	if p.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", p.Len())
	}
	if p.Get(0, 1, FormatA8) != nil {
		t.Error("Get(0, 1) != nil")
	}
}

func TestPoolConcurrent(t *testing.T) {
	p := NewPool(0)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				b := p.Get(8, 8, FormatXRGB32)
				b.SetPixel(0, 0, 1)
				p.Put(b)
			}
		}()
	}
	wg.Wait()
}
