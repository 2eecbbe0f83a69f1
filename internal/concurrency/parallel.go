package concurrency

import (
	"context"
	"sync"
)

// ParallelOptions configures a parallel run.
type ParallelOptions struct {
	// MaxWorkers caps the number of goroutines. Values <= 0 fall back to DefaultOptions.
	MaxWorkers int
}

func DefaultOptions() ParallelOptions {
	return ParallelOptions{
		MaxWorkers: 10,
	}
}

type outcome[R any] struct {
	index  int
	result R
	err    error
}

// ProcessParallel runs itemFunc for every item on a bounded worker pool.
// Results come back in input order. Errors are returned in input order too,
// so the first element is the error of the lowest failing index.
// Items not started because ctx was cancelled keep their zero value and
// contribute no error; callers should check ctx.Err() afterwards.
func ProcessParallel[T any, R any](
	ctx context.Context,
	items []T,
	opts ParallelOptions,
	itemFunc func(ctx context.Context, index int, item T) (R, error),
) ([]R, []error) {
	if len(items) == 0 {
		return []R{}, nil
	}

	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = DefaultOptions().MaxWorkers
	}
	if maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	jobs := make(chan int, len(items))
	results := make(chan outcome[R], len(items))

	var wg sync.WaitGroup
	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for jobIndex := range jobs {
				if ctx.Err() != nil {
					return
				}
				result, err := itemFunc(ctx, jobIndex, items[jobIndex])
				results <- outcome[R]{index: jobIndex, result: result, err: err}
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	resultList := make([]R, len(items))
	errByIndex := make([]error, len(items))
	for res := range results {
		resultList[res.index] = res.result
		errByIndex[res.index] = res.err
	}

	var errs []error
	for _, err := range errByIndex {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return resultList, errs
}

// ForEach is ProcessParallel for side-effect-only work.
func ForEach[T any](
	ctx context.Context,
	items []T,
	opts ParallelOptions,
	itemFunc func(ctx context.Context, index int, item T) error,
) []error {
	if len(items) == 0 {
		return nil
	}
	_, errs := ProcessParallel(ctx, items, opts, func(ctx context.Context, index int, item T) (struct{}, error) {
		return struct{}{}, itemFunc(ctx, index, item)
	})
	return errs
}
