package workers

import (
	"runtime"
	"testing"
)

func TestCount(t *testing.T) {
	t.Setenv("SCAN_WORKERS", "")

	availableCPU := runtime.GOMAXPROCS(0)

	tests := []struct {
		name       string
		multiplier float64
		limit      int
		minExpect  int
		maxExpect  int
	}{
		{"one per CPU", 1.0, 0, 1, availableCPU},
		{"above one per CPU", 2.0, 0, 1, availableCPU * 2},
		{"mixed ratio", 1.5, 0, 1, int(float64(availableCPU) * 1.5)},
		{"limit below calculated", 2.0, 2, 1, 2},
		{"very low multiplier", 0.1, 0, 1, availableCPU},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Count(tt.multiplier, tt.limit)
			if got < tt.minExpect || got > tt.maxExpect {
				t.Errorf("Count(%v, %d) = %d, want %d..%d", tt.multiplier, tt.limit, got, tt.minExpect, tt.maxExpect)
			}
		})
	}
}

func TestCountWithEnvOverride(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		limit    int
		expected int // -1 means fall back to calculated value
	}{
		{"valid override", "8", 0, 8},
		{"override capped by limit", "20", 10, 10},
		{"override below limit", "5", 10, 5},
		{"non-numeric falls back", "invalid", 0, -1},
		{"zero falls back", "0", 0, -1},
		{"negative falls back", "-5", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SCAN_WORKERS", tt.envValue)

			got := Count(1.0, tt.limit)
			if tt.expected == -1 {
				if got < 1 {
					t.Errorf("Count with invalid override = %d, want >= 1", got)
				}
				return
			}
			if got != tt.expected {
				t.Errorf("Count(1.0, %d) with SCAN_WORKERS=%s = %d, want %d", tt.limit, tt.envValue, got, tt.expected)
			}
		})
	}
}

func TestCountBoundaries(t *testing.T) {
	t.Setenv("SCAN_WORKERS", "")

	tests := []struct {
		name       string
		multiplier float64
		limit      int
	}{
		{"zero multiplier", 0.0, 0},
		{"negative multiplier", -1.0, 0},
		{"very high multiplier", 100.0, 0},
		{"very high limit", 1.0, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Count(tt.multiplier, tt.limit)
			if got < 1 {
				t.Errorf("Count(%v, %d) = %d, want >= 1", tt.multiplier, tt.limit, got)
			}
			if tt.limit > 0 && got > tt.limit {
				t.Errorf("Count(%v, %d) = %d, exceeds limit", tt.multiplier, tt.limit, got)
			}
		})
	}
}

func TestForMixed(t *testing.T) {
	t.Setenv("SCAN_WORKERS", "")

	if got := ForMixed(0); got < 1 {
		t.Errorf("ForMixed(0) = %d, want >= 1", got)
	}
	if got := ForMixed(4); got > 4 {
		t.Errorf("ForMixed(4) = %d, exceeds limit", got)
	}
}
