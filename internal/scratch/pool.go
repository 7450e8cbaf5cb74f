// Package scratch provides call-scoped scratch rows for gogpu/bitmap.
//
// Operations that need temporary memory (the mirror swap row, the three
// rolling convolution rows, resampler sample rows) borrow it here and give
// it back before returning. Rows are sized to an image width, never to an
// image height.
package scratch

import (
	"math/bits"
	"sync"
)

// minClass is the smallest bucket size. Keeping every bucket at least this
// large also keeps row starts aligned for any pixel type.
const minClass = 64

// Pool is a thread-safe pool of byte rows bucketed by power-of-two capacity.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max rows per bucket
}

// NewPool creates a pool that retains at most maxPerBucket rows of each
// capacity class. A maxPerBucket of 0 or less means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// classFor returns the bucket capacity used for a request of size bytes.
func classFor(size int) int {
	if size <= minClass {
		return minClass
	}
	return 1 << bits.Len(uint(size-1))
}

// Get returns a zeroed row of exactly size bytes.
// Returns nil for size <= 0.
func (p *Pool) Get(size int) []byte {
	if size <= 0 {
		return nil
	}
	class := classFor(size)

	p.mu.Lock()
	bucket := p.buckets[class]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		bucket[n-1] = nil
		p.buckets[class] = bucket[:n-1]
		p.mu.Unlock()

		buf = buf[:size]
		clear(buf)
		return buf
	}
	p.mu.Unlock()

	return make([]byte, size, class)
}

// Put returns a row obtained from Get. Rows whose capacity is not a pool
// class, and rows beyond the bucket limit, are dropped for the GC.
func (p *Pool) Put(buf []byte) {
	class := cap(buf)
	if class < minClass || class&(class-1) != 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[class]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[class] = append(bucket, buf[:0])
}

// defaultPool is the package-level pool used by the bitmap operations.
var defaultPool = NewPool(16)

// Get borrows a zeroed row of size bytes from the default pool.
func Get(size int) []byte {
	return defaultPool.Get(size)
}

// Put returns a row to the default pool.
func Put(buf []byte) {
	defaultPool.Put(buf)
}
