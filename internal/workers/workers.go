package workers

import (
	"os"
	"runtime"
	"strconv"
)

// Count sizes a worker pool from the available CPUs. The multiplier
// adjusts for the workload (above 1.0 for work that blocks on I/O);
// limit caps the result, 0 meaning uncapped. Always returns at least 1.
//
// SCAN_WORKERS overrides the calculation, still subject to the limit.
func Count(multiplier float64, limit int) int {
	if override := os.Getenv("SCAN_WORKERS"); override != "" {
		if count, err := strconv.Atoi(override); err == nil && count > 0 {
			if limit > 0 && count > limit {
				return limit
			}
			return count
		}
	}

	// GOMAXPROCS tracks container CPU limits, runtime.NumCPU does not.
	available := runtime.GOMAXPROCS(0)

	workers := int(float64(available) * multiplier)
	if workers < 1 {
		workers = 1
	}
	if limit > 0 && workers > limit {
		workers = limit
	}
	return workers
}

// ForMixed sizes a pool for work that interleaves CPU and I/O, such as
// metadata extraction during a scan (1.5 workers per CPU).
func ForMixed(limit int) int {
	return Count(1.5, limit)
}
