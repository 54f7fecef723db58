package main

import (
	"sync"
)

// RasterPool provides reusable pixel buffers for the scoring path so a round
// does not allocate one raster per population member.
type RasterPool struct {
	mu      sync.Mutex
	pools   map[int][][]byte // Key: buffer length, Value: free buffers
	maxEach int
}

// NewRasterPool creates a pool keeping at most maxEach free buffers per size.
func NewRasterPool(maxEach int) *RasterPool {
	return &RasterPool{
		pools:   make(map[int][][]byte),
		maxEach: maxEach,
	}
}

// Get returns an all-zero w x h raster, reusing a free buffer when one exists.
func (p *RasterPool) Get(w, h int) Raster {
	size := w * h * 3

	p.mu.Lock()
	pool := p.pools[size]
	if len(pool) > 0 {
		lastIdx := len(pool) - 1
		buf := pool[lastIdx]
		p.pools[size] = pool[:lastIdx]
		p.mu.Unlock()

		r := Raster{Width: w, Height: h, Pix: buf}
		r.clear()
		return r
	}
	p.mu.Unlock()

	return NewRaster(w, h)
}

// Put hands a raster back. The caller must not touch it afterwards.
func (p *RasterPool) Put(r Raster) {
	if len(r.Pix) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	size := len(r.Pix)
	pool := p.pools[size]
	if len(pool) >= p.maxEach {
		return
	}
	p.pools[size] = append(pool, r.Pix)
}

// Free reports how many buffers of the given size are parked in the pool.
func (p *RasterPool) Free(w, h int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pools[w*h*3])
}
