package pool

import (
	"bytes"
	"sync"
)

// Pool is a generic wrapper around sync.Pool.
type Pool[T any] struct {
	internal sync.Pool
}

// New creates a new Pool with the given constructor.
func New[T any](newFn func() T) *Pool[T] {
	return &Pool[T]{
		internal: sync.Pool{
			New: func() any {
				return newFn()
			},
		},
	}
}

// Get retrieves an item from the pool.
func (p *Pool[T]) Get() T {
	return p.internal.Get().(T)
}

// Put returns an item to the pool.
func (p *Pool[T]) Put(item T) {
	p.internal.Put(item)
}

// maxPooledBuffer keeps one oversized reply body from pinning memory forever.
const maxPooledBuffer = 64 << 10

// BufferPool hands out reset bytes.Buffers for JSON encoding.
type BufferPool struct {
	p *Pool[*bytes.Buffer]
}

// NewBufferPool creates an empty BufferPool.
func NewBufferPool() *BufferPool {
	return &BufferPool{p: New(func() *bytes.Buffer { return new(bytes.Buffer) })}
}

// Get returns an empty buffer.
func (b *BufferPool) Get() *bytes.Buffer {
	buf := b.p.Get()
	buf.Reset()
	return buf
}

// Put returns buf to the pool unless it grew too large.
func (b *BufferPool) Put(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledBuffer {
		return
	}
	b.p.Put(buf)
}
