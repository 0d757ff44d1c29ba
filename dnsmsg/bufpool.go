package dnsmsg

import "sync"

// genericPool is a small generic wrapper around sync.Pool, the same shape
// the rest of this corpus reaches for when it needs to reuse short-lived
// allocations across goroutines.
type genericPool[T any] struct {
	internal sync.Pool
}

func newGenericPool[T any](newFn func() T) *genericPool[T] {
	return &genericPool[T]{
		internal: sync.Pool{
			New: func() any {
				return newFn()
			},
		},
	}
}

func (p *genericPool[T]) Get() T {
	return p.internal.Get().(T)
}

func (p *genericPool[T]) Put(item T) {
	p.internal.Put(item)
}

// encodeBufferCap is the initial capacity handed to a fresh pooled encode
// buffer: large enough for a typical UDP-sized response without growing.
const encodeBufferCap = 512

var encodeBufferPool = newGenericPool(func() []byte {
	return make([]byte, 0, encodeBufferCap)
})

// getEncodeBuffer returns a zero-length []byte with spare capacity from
// the pool, or a fresh allocation if the pool is empty.
func getEncodeBuffer() []byte {
	return encodeBufferPool.Get()[:0]
}

// putEncodeBuffer returns b to the pool for reuse by a later encode call.
// Callers must not use b (or any slice derived from it) after calling
// this — the returned bytes from EncodeUDP/EncodeTCP are always copied
// out first.
func putEncodeBuffer(b []byte) {
	const maxPooledCap = 64 * 1024
	if cap(b) > maxPooledCap {
		return // don't let one oversized message bloat the pool forever
	}
	encodeBufferPool.Put(b)
}
