package buffer

import (
	"math/bits"
	"sync"
)

// Pool is a thread-safe pool of scratch byte slices.
//
// Pool groups slices by power-of-two capacity class so that a request is
// served by any retained slice at least as large. This keeps intermediate
// buffers of chained conversions off the garbage collector.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max slices per bucket
}

// NewPool creates a new scratch pool with the given maximum slices per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// class returns the capacity class for n bytes: the exponent of the
// smallest power of two >= n.
func class(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// Get retrieves a slice of length n from the pool or allocates a new one.
// The contents of a reused slice are unspecified; callers overwrite it.
func (p *Pool) Get(n int) []byte {
	if n <= 0 {
		return nil
	}
	key := class(n)

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return buf[:n]
	}
	p.mu.Unlock()

	return make([]byte, n, 1<<key)
}

// Put returns a slice obtained from Get to the pool.
// Slices whose capacity is not a power of two, and slices arriving at a full
// bucket, are discarded.
func (p *Pool) Put(buf []byte) {
	c := cap(buf)
	if c == 0 || c&(c-1) != 0 {
		return
	}
	key := class(c)

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf[:0])
}

// Len returns the number of slices currently retained.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

// defaultPool is the package-level pool for convenient usage.
var defaultPool = NewPool(8)

// GetFromDefault retrieves a scratch slice from the default pool.
func GetFromDefault(n int) []byte {
	return defaultPool.Get(n)
}

// PutToDefault returns a scratch slice to the default pool.
func PutToDefault(buf []byte) {
	defaultPool.Put(buf)
}
