package engine

import (
	"testing"
	"time"
)

// TestSpinDelayWaitsForDeadline verifies the busy-wait polls until the clock passes the deadline
func TestSpinDelayWaitsForDeadline(t *testing.T) {
	clock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	clock.SetAutoStep(time.Millisecond)
	d := &SpinDelay{Clock: clock}

	d.Delay(10 * time.Millisecond)

	// One read for the deadline, then reads at +1ms..+10ms
	if got := clock.Calls(); got != 11 {
		t.Errorf("Expected 11 clock reads, got %d", got)
	}
}

func TestSpinDelayZero(t *testing.T) {
	clock := NewMockTimeProvider(time.Now())
	d := &SpinDelay{Clock: clock}
	d.Delay(0)
	if clock.Calls() != 0 {
		t.Error("Expected zero delay to return immediately")
	}
}

func TestSleepDelayMinimumGap(t *testing.T) {
	start := time.Now()
	SleepDelay{}.Delay(2 * time.Millisecond)
	if elapsed := time.Since(start); elapsed < 2*time.Millisecond {
		t.Errorf("Expected at least 2ms, got %v", elapsed)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
	bad := []Config{
		{FramePeriod: -1, SpawnPeriod: 1, MovePeriod: 1},
		{SpawnPeriod: 0, MovePeriod: 1},
		{SpawnPeriod: 1, MovePeriod: 0},
	}
	for i, c := range bad {
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestEvery(t *testing.T) {
	if !Every(0, 32) || !Every(64, 32) || Every(33, 32) {
		t.Error("Expected multiples of the period only")
	}
	if Every(0, 0) {
		t.Error("Expected zero period to never fire")
	}
}
