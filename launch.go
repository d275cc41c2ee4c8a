package cbf

import (
	"fmt"
	"runtime"
	"sync"
)

// defaultStripe is the smallest index range worth a goroutine of its own.
const defaultStripe = 4096

// kernel processes the indices [lo, hi) of one stripe. Each index is an
// independent unit of work; kernels must not depend on the order in which
// stripes or indices run.
type kernel func(lo, hi int)

// launcher splits kernel launches across goroutines.
type launcher struct {
	workers int // 0 means GOMAXPROCS
	stripe  int // 0 means defaultStripe
}

// launch runs k over [0, n) split into contiguous stripes, one goroutine per
// stripe, and returns once every stripe has finished. The return is the
// barrier between pipeline stages: all writes made by k are visible to the
// caller afterwards.
//
// A panic inside a stripe fails the whole launch with ErrLaunchFailed.
func (l launcher) launch(name string, n int, k kernel) error {
	if n <= 0 {
		return nil
	}
	workers := l.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	stripe := l.stripe
	if stripe <= 0 {
		stripe = defaultStripe
	}
	workers = min(workers, (n+stripe-1)/stripe)
	if workers <= 1 {
		return runStripe(name, k, 0, n)
	}

	perWorker := (n + workers - 1) / workers
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		lo := i * perWorker
		if lo >= n {
			break
		}
		hi := min(lo+perWorker, n)

		wg.Add(1)
		go func(i, lo, hi int) {
			defer wg.Done()
			errs[i] = runStripe(name, k, lo, hi)
		}(i, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func runStripe(name string, k kernel, lo, hi int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s [%d,%d): %v", ErrLaunchFailed, name, lo, hi, r)
		}
	}()
	k(lo, hi)
	return nil
}
