package model

import "testing"

func TestHistoryPeriod(t *testing.T) {
	block := gridWithCells(6, 6, Cell{2, 2}, Cell{2, 3}, Cell{3, 2}, Cell{3, 3})
	blinker := gridWithCells(7, 7, Cell{3, 2}, Cell{3, 3}, Cell{3, 4})

	t.Run("still life", func(t *testing.T) {
		h := NewHistory(5)
		h.Record(block)
		if p := h.Period(stepN(block, 1)); p != 1 {
			t.Errorf("Period = %d, want 1", p)
		}
	})

	t.Run("oscillator", func(t *testing.T) {
		h := NewHistory(5)
		h.Record(blinker)
		g1 := stepN(blinker, 1)
		if p := h.Period(g1); p != 0 {
			t.Errorf("Period after one generation = %d, want 0", p)
		}
		h.Record(g1)
		if p := h.Period(stepN(blinker, 2)); p != 2 {
			t.Errorf("Period after two generations = %d, want 2", p)
		}
	})

	t.Run("evicted states are forgotten", func(t *testing.T) {
		h := NewHistory(1)
		h.Record(blinker)
		h.Record(stepN(blinker, 1))
		if h.Len() != 1 {
			t.Fatalf("Len = %d, want 1", h.Len())
		}
		if p := h.Period(blinker); p != 0 {
			t.Errorf("Period = %d, want 0", p)
		}
	})

	t.Run("reset", func(t *testing.T) {
		h := NewHistory(3)
		h.Record(block)
		h.Reset()
		if h.Len() != 0 || h.Period(block) != 0 {
			t.Error("Reset kept recorded states")
		}
	})
}
