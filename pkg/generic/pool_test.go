package generic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool_ResetOnPut(t *testing.T) {
	p := NewResetPool(
		func() []int { return make([]int, 0, 8) },
		func(s []int) []int { return s[:0] },
	)

	s := p.Get()
	require.Empty(t, s)
	s = append(s, 1, 2, 3)
	p.Put(s)

	// sync.Pool may or may not hand the same slice back; either way it is empty.
	got := p.Get()
	require.Empty(t, got)
	require.GreaterOrEqual(t, cap(got), 8)
}

func TestPool_NilReset(t *testing.T) {
	p := NewResetPool(func() *int {
		v := 7
		return &v
	}, nil)

	v := p.Get()
	require.Equal(t, 7, *v)
	*v = 9
	p.Put(v)
	require.NotNil(t, p.Get())
}
