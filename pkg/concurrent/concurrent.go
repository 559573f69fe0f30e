package concurrent

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelMap applies mapFn to each element of in, preserving order.
// At most workers calls run at once; a non-positive value means GOMAXPROCS.
// The worker index passed to mapFn is in [0, workers) and is never shared by
// two concurrent calls, so callers may keep per-worker state in a slice.
// The first error cancels ctx for the remaining calls and is returned.
func ParallelMap[T any, R any](ctx context.Context, in []T, workers int, mapFn func(ctx context.Context, worker int, value T) (R, error)) ([]R, error) {
	workers = Workers(workers, len(in))
	out := make([]R, len(in))
	if len(in) == 0 {
		return out, nil
	}

	group, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	for w := 0; w < workers; w++ {
		group.Go(func() error {
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				r, err := mapFn(ctx, w, in[idx])
				if err != nil {
					return err
				}
				out[idx] = r
			}
			return nil
		})
	}

	group.Go(func() error {
		defer close(jobs)
		for idx := range in {
			select {
			case jobs <- idx:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Workers clamps a requested worker count to [1, n]. Non-positive requests
// resolve to GOMAXPROCS. With no work, one worker is enough.
func Workers(requested, n int) int {
	if n <= 0 {
		return 1
	}
	if requested <= 0 {
		requested = runtime.GOMAXPROCS(0)
	}
	if requested > n {
		requested = n
	}
	if requested < 1 {
		requested = 1
	}
	return requested
}
