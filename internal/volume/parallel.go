package volume

import (
	"context"
	"sync"
	"sync/atomic"
)

// parallelFor runs fn over [0, n) split into fixed-size chunks handed
// out to workers. Cancellation is observed between chunks only, so a
// discarded computation never leaves a chunk half-written by a worker
// that was stopped mid-range.
func parallelFor(ctx context.Context, n, chunkSize, workers int, fn func(start, end int)) error {
	if n <= 0 {
		return ctx.Err()
	}
	if chunkSize < 1 {
		chunkSize = 1
	}
	chunks := (n + chunkSize - 1) / chunkSize
	if workers > chunks {
		workers = chunks
	}
	if workers <= 1 {
		for c := 0; c < chunks; c++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			start := c * chunkSize
			end := min(start+chunkSize, n)
			fn(start, end)
		}
		return nil
	}

	var next int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}
				c := int(atomic.AddInt64(&next, 1)) - 1
				if c >= chunks {
					return
				}
				start := c * chunkSize
				end := min(start+chunkSize, n)
				fn(start, end)
			}
		}()
	}
	wg.Wait()
	return ctx.Err()
}
