package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 0)
	if s.AveragePopulation != 100 || s.PeakPopulation != 100 {
		t.Fatalf("avg/peak = %.1f/%d, want 100/100", s.AveragePopulation, s.PeakPopulation)
	}
	if s.GenerationsPerSecond != 0 {
		t.Errorf("GenerationsPerSecond = %.1f for a zero duration, want 0", s.GenerationsPerSecond)
	}

	s.Update(2, 50, 100*time.Millisecond)
	if s.AveragePopulation != 95 {
		t.Errorf("AveragePopulation = %.1f, want 95", s.AveragePopulation)
	}
	if s.PeakPopulation != 100 {
		t.Errorf("PeakPopulation = %d, want 100", s.PeakPopulation)
	}
	if s.GenerationsPerSecond != 10 {
		t.Errorf("GenerationsPerSecond = %.1f, want 10", s.GenerationsPerSecond)
	}
	if s.TotalGenerations != 2 {
		t.Errorf("TotalGenerations = %d, want 2", s.TotalGenerations)
	}
}
