package config

import "testing"

func TestClampCellSize(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 100},
		{-5, 100},
		{3, 10},
		{100, 100},
		{5000, 1000},
	}
	for _, tc := range tests {
		if got := ClampCellSize(tc.in); got != tc.want {
			t.Errorf("ClampCellSize(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestClampShapeDim(t *testing.T) {
	if got := ClampShapeDim(0, 5); got != 5 {
		t.Errorf("non-positive dim = %d, want default 5", got)
	}
	if got := ClampShapeDim(200, 5); got != 50 {
		t.Errorf("oversized dim = %d, want 50", got)
	}
	if got := ClampShapeDim(7, 5); got != 7 {
		t.Errorf("in-range dim = %d, want 7", got)
	}
}

func TestClampWeightAndFootprint(t *testing.T) {
	if got := ClampWeight(-1); got != 0 {
		t.Errorf("negative weight = %v, want 0", got)
	}
	if got := ClampWeight(250); got != 100 {
		t.Errorf("oversized weight = %v, want 100", got)
	}
	if got := ClampFootprint(0); got != 1 {
		t.Errorf("zero footprint = %d, want 1", got)
	}
	if got := ClampFootprint(99); got != 10 {
		t.Errorf("oversized footprint = %d, want 10", got)
	}
}

func TestClampCeilingHeight(t *testing.T) {
	if got := ClampCeilingHeight(0); got != 300 {
		t.Errorf("zero height = %v, want default 300", got)
	}
	if got := ClampCeilingHeight(50); got != 100 {
		t.Errorf("undersized height = %v, want 100", got)
	}
	if got := ClampCeilingHeight(2000); got != 1000 {
		t.Errorf("oversized height = %v, want 1000", got)
	}
}
