package concurrency

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task is one unit of work run by Parallel.
type Task func(ctx context.Context) error

// Parallel fans the tasks out, waits for all of them and returns the first
// error reported. The context handed to the tasks is cancelled as soon as
// one of them fails, so later errors are usually just cancellations.
func Parallel(ctx context.Context, tasks ...Task) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		g.Go(func() error { return task(ctx) })
	}
	return g.Wait()
}
