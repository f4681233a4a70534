package autop

import "runtime"

// Worker sizing constants.
const (
	// MinWorkers ensures at least one worker is available.
	MinWorkers = 1

	// MaxWorkers caps batch parallelism. Formatting is CPU bound, so more
	// goroutines than cores only adds scheduling overhead.
	MaxWorkers = 32
)

// ResolveWorkers determines the batch worker count.
// Priority: explicit workers > GOMAXPROCS (adjusted by automaxprocs for
// containers), clamped to [MinWorkers, MaxWorkers].
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0)
	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
