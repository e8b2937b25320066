// Package lookup holds the immutable tables the design code is written in:
// piecewise-linear curves, two-way grids and stepped tables. Solvers read
// them through pure functions so a new code edition is a data change.
package lookup

import (
	"fmt"
	"sort"
)

// Table is a piecewise-linear curve over strictly increasing keys.
type Table struct {
	keys   []float64
	values []float64
}

// NewTable copies keys and values and checks that keys increase strictly.
func NewTable(keys, values []float64) (Table, error) {
	if len(keys) == 0 || len(keys) != len(values) {
		return Table{}, fmt.Errorf("table needs matching non-empty keys and values, got %d/%d", len(keys), len(values))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] <= keys[i-1] {
			return Table{}, fmt.Errorf("table keys not increasing at index %d", i)
		}
	}
	t := Table{
		keys:   append([]float64(nil), keys...),
		values: append([]float64(nil), values...),
	}
	return t, nil
}

// MustTable is NewTable for package-level code tables.
func MustTable(keys, values []float64) Table {
	t, err := NewTable(keys, values)
	if err != nil {
		panic(err)
	}
	return t
}

// At interpolates linearly between neighbouring keys. Outside the key range
// the end values are held.
func (t Table) At(x float64) float64 {
	n := len(t.keys)
	if n == 0 {
		return 0
	}
	if x <= t.keys[0] {
		return t.values[0]
	}
	if x >= t.keys[n-1] {
		return t.values[n-1]
	}
	i := sort.SearchFloat64s(t.keys, x)
	if t.keys[i] == x {
		return t.values[i]
	}
	x0, x1 := t.keys[i-1], t.keys[i]
	y0, y1 := t.values[i-1], t.values[i]
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// Keys returns a copy of the table keys.
func (t Table) Keys() []float64 {
	return append([]float64(nil), t.keys...)
}

// Grid is a two-way table: one curve per row key, interpolated along the
// column axis first and then between the bracketing rows.
type Grid struct {
	rows   []float64
	curves []Table
}

// NewGrid builds a grid from row keys, shared column keys and one value row
// per row key.
func NewGrid(rows, cols []float64, values [][]float64) (Grid, error) {
	if len(rows) == 0 || len(rows) != len(values) {
		return Grid{}, fmt.Errorf("grid needs one value row per row key, got %d/%d", len(rows), len(values))
	}
	g := Grid{rows: append([]float64(nil), rows...)}
	for i, r := range values {
		if i > 0 && rows[i] <= rows[i-1] {
			return Grid{}, fmt.Errorf("grid row keys not increasing at index %d", i)
		}
		t, err := NewTable(cols, r)
		if err != nil {
			return Grid{}, fmt.Errorf("grid row %v: %w", rows[i], err)
		}
		g.curves = append(g.curves, t)
	}
	return g, nil
}

// MustGrid is NewGrid for package-level code tables.
func MustGrid(rows, cols []float64, values [][]float64) Grid {
	g, err := NewGrid(rows, cols, values)
	if err != nil {
		panic(err)
	}
	return g
}

// At returns the value for (row, col), clamping both axes to the grid.
func (g Grid) At(row, col float64) float64 {
	n := len(g.rows)
	if n == 0 {
		return 0
	}
	if row <= g.rows[0] {
		return g.curves[0].At(col)
	}
	if row >= g.rows[n-1] {
		return g.curves[n-1].At(col)
	}
	i := sort.SearchFloat64s(g.rows, row)
	if g.rows[i] == row {
		return g.curves[i].At(col)
	}
	r0, r1 := g.rows[i-1], g.rows[i]
	v0, v1 := g.curves[i-1].At(col), g.curves[i].At(col)
	return v0 + (v1-v0)*(row-r0)/(r1-r0)
}

// Step is a stepped table: the value at x belongs to the largest key not
// above x. Keys below the first key take the first value.
type Step struct {
	keys   []float64
	values []float64
}

// NewStep builds a stepped table over strictly increasing keys.
func NewStep(keys, values []float64) (Step, error) {
	t, err := NewTable(keys, values)
	if err != nil {
		return Step{}, err
	}
	return Step{keys: t.keys, values: t.values}, nil
}

// MustStep is NewStep for package-level tables.
func MustStep(keys, values []float64) Step {
	s, err := NewStep(keys, values)
	if err != nil {
		panic(err)
	}
	return s
}

// At returns the stepped value for x.
func (s Step) At(x float64) float64 {
	if len(s.keys) == 0 {
		return 0
	}
	i := sort.Search(len(s.keys), func(i int) bool { return s.keys[i] > x })
	if i == 0 {
		return s.values[0]
	}
	return s.values[i-1]
}

// NonDecreasing reports whether the stepped values never fall.
func (s Step) NonDecreasing() bool {
	for i := 1; i < len(s.values); i++ {
		if s.values[i] < s.values[i-1] {
			return false
		}
	}
	return true
}

// Enum looks up a discrete code value by key.
type Enum[K comparable, V any] struct {
	entries map[K]V
}

// NewEnum copies entries into an immutable enum table.
func NewEnum[K comparable, V any](entries map[K]V) Enum[K, V] {
	m := make(map[K]V, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return Enum[K, V]{entries: m}
}

// Get returns the value for k and whether k is a recognised key.
func (e Enum[K, V]) Get(k K) (V, bool) {
	v, ok := e.entries[k]
	return v, ok
}

// Len returns the number of entries.
func (e Enum[K, V]) Len() int {
	return len(e.entries)
}

// Keys returns the keys in no particular order.
func (e Enum[K, V]) Keys() []K {
	keys := make([]K, 0, len(e.entries))
	for k := range e.entries {
		keys = append(keys, k)
	}
	return keys
}
