package main

import "time"

// Measures elapsed wall-clock time between Start and Stop
type Stopwatch struct {
	started time.Time
	elapsed time.Duration
	running bool
}

// Starts (or restarts) the stopwatch
func (s *Stopwatch) Start() {
	s.started = time.Now()
	s.running = true
}

// Stops the stopwatch and returns the elapsed time.
// Returns 0 if the stopwatch was not running.
func (s *Stopwatch) Stop() time.Duration {
	if !s.running {
		return 0
	}

	s.elapsed = time.Since(s.started)
	s.running = false
	return s.elapsed
}

// Elapsed time of the last Start/Stop pair
func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsed
}

// Ratio returns compressed / original, or 0 for an empty original.
func Ratio(original, compressed int64) float64 {
	if original == 0 {
		return 0
	}
	return float64(compressed) / float64(original)
}

// Speed returns bytes per second, or 0 when no time elapsed.
func Speed(size int64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(size) / elapsed.Seconds()
}

// Outcome of compressing and decompressing one input
type Report struct {
	Name           string
	OriginalSize   int64
	CompressedSize int64
	CompressTime   time.Duration
	DecompressTime time.Duration
}

func (r Report) Ratio() float64 {
	return Ratio(r.OriginalSize, r.CompressedSize)
}

func (r Report) CompressSpeed() float64 {
	return Speed(r.OriginalSize, r.CompressTime)
}

func (r Report) DecompressSpeed() float64 {
	return Speed(r.OriginalSize, r.DecompressTime)
}
