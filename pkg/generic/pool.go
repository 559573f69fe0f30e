package generic

import "sync"

// Pool is a typed sync.Pool. Values handed back with Put are passed through
// the reset function first, so Get never returns stale state.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(T) T
}

// NewResetPool creates a pool whose values pass through reset on Put. reset
// may be nil.
func NewResetPool[T any](generate func() T, reset func(T) T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return generate()
			},
		},
		reset: reset,
	}
}

func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

func (p *Pool[T]) Put(value T) {
	if p.reset != nil {
		value = p.reset(value)
	}
	p.pool.Put(value)
}
