package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRatioAndSpeed(t *testing.T) {
	tests := []struct {
		name       string
		original   int64
		compressed int64
		elapsed    time.Duration
		ratio      float64
		speed      float64
	}{
		{name: "half", original: 1000, compressed: 500, elapsed: 2 * time.Second, ratio: 0.5, speed: 500},
		{name: "expanded", original: 100, compressed: 150, elapsed: 500 * time.Millisecond, ratio: 1.5, speed: 200},
		{name: "empty", original: 0, compressed: 0, elapsed: time.Second, ratio: 0, speed: 0},
		{name: "no-time", original: 10, compressed: 10, elapsed: 0, ratio: 1, speed: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.ratio, Ratio(tt.original, tt.compressed))
			require.Equal(t, tt.speed, Speed(tt.original, tt.elapsed))
		})
	}
}

func TestStopwatch(t *testing.T) {
	var sw Stopwatch
	require.Zero(t, sw.Stop(), "idle stopwatch")

	sw.Start()
	time.Sleep(5 * time.Millisecond)
	elapsed := sw.Stop()
	require.GreaterOrEqual(t, elapsed, 5*time.Millisecond)
	require.Equal(t, elapsed, sw.Elapsed())
	require.Zero(t, sw.Stop(), "second Stop")
}

func TestReport(t *testing.T) {
	r := Report{OriginalSize: 4000, CompressedSize: 1000, CompressTime: time.Second, DecompressTime: 2 * time.Second}
	require.Equal(t, 0.25, r.Ratio())
	require.Equal(t, 4000.0, r.CompressSpeed())
	require.Equal(t, 2000.0, r.DecompressSpeed())
}
