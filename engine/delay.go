package engine

import (
	"runtime"
	"time"
)

// Delayer blocks the loop for the inter-frame gap
type Delayer interface {
	Delay(d time.Duration)
}

// SleepDelay parks the goroutine with time.Sleep
type SleepDelay struct{}

func (SleepDelay) Delay(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// SpinDelay busy-waits on a clock until d has elapsed, like the firmware's
// cycle-counted loop; it keeps a core busy but has no timer slack
type SpinDelay struct {
	Clock TimeProvider
}

// NewSpinDelay returns a busy-wait delayer on the monotonic clock
func NewSpinDelay() *SpinDelay {
	return &SpinDelay{Clock: NewMonotonicTimeProvider()}
}

func (s *SpinDelay) Delay(d time.Duration) {
	if d <= 0 {
		return
	}
	deadline := s.Clock.Now().Add(d)
	for s.Clock.Now().Before(deadline) {
		runtime.Gosched()
	}
}
