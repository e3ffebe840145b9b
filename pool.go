package mdsite

import (
	"runtime"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps workers; page conversion is short and CPU-bound.
	MaxPoolSize = 16
)

// ResolvePoolSize determines the number of conversion workers.
// Priority: explicit workers > GOMAXPROCS (adjusted by automaxprocs in
// containers). Exported for use by CLIs.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return min(workers, MaxPoolSize)
	}
	return max(MinPoolSize, min(runtime.GOMAXPROCS(0), MaxPoolSize))
}
