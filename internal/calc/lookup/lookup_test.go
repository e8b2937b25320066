package lookup

import (
	"math"
	"testing"
)

func TestTableAt(t *testing.T) {
	tbl := MustTable([]float64{0.15, 0.25, 0.50}, []float64{0.29, 0.36, 0.49})

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"below range holds first", 0.05, 0.29},
		{"exact key", 0.25, 0.36},
		{"midpoint", 0.375, 0.425},
		{"above range holds last", 3.0, 0.49},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tbl.At(tt.x)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("At(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestNewTableRejectsBadKeys(t *testing.T) {
	if _, err := NewTable([]float64{1, 1}, []float64{2, 3}); err == nil {
		t.Error("expected error for repeated key")
	}
	if _, err := NewTable([]float64{1, 2}, []float64{2}); err == nil {
		t.Error("expected error for length mismatch")
	}
	if _, err := NewTable(nil, nil); err == nil {
		t.Error("expected error for empty table")
	}
}

func TestTableDoesNotAliasInput(t *testing.T) {
	keys := []float64{1, 2}
	values := []float64{10, 20}
	tbl := MustTable(keys, values)
	values[0] = 99
	if got := tbl.At(1); got != 10 {
		t.Errorf("table changed with caller slice: got %v", got)
	}
}

func TestGridAt(t *testing.T) {
	g := MustGrid(
		[]float64{20, 30},
		[]float64{0.5, 1.0},
		[][]float64{
			{0.48, 0.62},
			{0.50, 0.66},
		},
	)

	tests := []struct {
		name     string
		row, col float64
		want     float64
	}{
		{"exact corner", 20, 0.5, 0.48},
		{"exact row, mid col", 30, 0.75, 0.58},
		{"mid row, exact col", 25, 1.0, 0.64},
		{"both mid", 25, 0.75, 0.565},
		{"row clamped low", 10, 1.0, 0.62},
		{"row clamped high", 40, 0.5, 0.50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.At(tt.row, tt.col)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("At(%v, %v) = %v, want %v", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestStepAt(t *testing.T) {
	s := MustStep([]float64{0, 1, 3}, []float64{1.00, 1.02, 1.06})

	tests := []struct {
		x    float64
		want float64
	}{
		{-1, 1.00},
		{0, 1.00},
		{1, 1.02},
		{2, 1.02},
		{3, 1.06},
		{10, 1.06},
	}
	for _, tt := range tests {
		if got := s.At(tt.x); got != tt.want {
			t.Errorf("At(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	if !s.NonDecreasing() {
		t.Error("expected non-decreasing step table")
	}
	if MustStep([]float64{0, 1}, []float64{2, 1}).NonDecreasing() {
		t.Error("expected decreasing table to be reported")
	}
}

func TestEnumGet(t *testing.T) {
	src := map[string]float64{"a": 1}
	e := NewEnum(src)
	src["b"] = 2

	if v, ok := e.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v", v, ok)
	}
	if _, ok := e.Get("b"); ok {
		t.Error("enum picked up caller mutation")
	}
	if e.Len() != 1 {
		t.Errorf("Len() = %d, want 1", e.Len())
	}
	if keys := e.Keys(); len(keys) != 1 || keys[0] != "a" {
		t.Errorf("Keys() = %v", keys)
	}
}
