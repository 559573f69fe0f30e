package concurrent

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelMap_PreservesOrder(t *testing.T) {
	in := make([]int, 100)
	for i := range in {
		in[i] = i
	}

	out, err := ParallelMap(context.Background(), in, 4, func(_ context.Context, _ int, v int) (int, error) {
		return v * v, nil
	})
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i, v := range out {
		assert.Equal(t, i*i, v)
	}
}

func TestParallelMap_WorkerIndexIsExclusive(t *testing.T) {
	const workers = 3
	var mu sync.Mutex
	busy := make([]bool, workers)

	_, err := ParallelMap(context.Background(), make([]struct{}, 64), workers, func(_ context.Context, w int, _ struct{}) (struct{}, error) {
		mu.Lock()
		if busy[w] {
			mu.Unlock()
			return struct{}{}, errors.New("worker index shared")
		}
		busy[w] = true
		mu.Unlock()

		mu.Lock()
		busy[w] = false
		mu.Unlock()
		return struct{}{}, nil
	})
	require.NoError(t, err)
}

func TestParallelMap_FirstErrorWins(t *testing.T) {
	boom := errors.New("boom")
	out, err := ParallelMap(context.Background(), []int{1, 2, 3, 4}, 2, func(_ context.Context, _ int, v int) (int, error) {
		if v == 3 {
			return 0, boom
		}
		return v, nil
	})
	require.ErrorIs(t, err, boom)
	require.Nil(t, out)
}

func TestParallelMap_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParallelMap(ctx, []int{1, 2, 3}, 1, func(_ context.Context, _ int, v int) (int, error) {
		return v, nil
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestParallelMap_Empty(t *testing.T) {
	out, err := ParallelMap(context.Background(), []int(nil), 0, func(_ context.Context, _ int, v int) (int, error) {
		return v, nil
	})
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestWorkers(t *testing.T) {
	assert.Equal(t, 2, Workers(2, 10))
	assert.Equal(t, 3, Workers(8, 3))
	assert.Equal(t, 1, Workers(4, 0))
	assert.GreaterOrEqual(t, Workers(0, 1000), 1)
}
