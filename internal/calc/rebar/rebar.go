// Package rebar enumerates constructible longitudinal bar arrangements for a
// required steel area.
package rebar

import (
	"math"
	"sort"
)

// StandardDiameters are the bar sizes tried, in mm.
var StandardDiameters = []float64{12, 16, 20, 25, 32}

// Layout says how spacing is measured.
type Layout int

const (
	// Row spaces bars across a width: width/(n+1) with n bars per layer.
	Row Layout = iota
	// Ring distributes bars around a closed perimeter: perimeter/n.
	Ring
)

// Policy holds the count and spacing bounds for one member type.
type Policy struct {
	Name       string
	MinCount   int
	MaxCount   int     // 0 for no upper bound
	MinSpacing float64 // mm
	MaxSpacing float64 // mm
	Layout     Layout
	Layers     int
	EvenCount  bool
	TopN       int
}

var (
	// BeamPolicy is a single layer of 2 to 8 bars.
	BeamPolicy = Policy{Name: "beam", MinCount: 2, MaxCount: 8, MinSpacing: 75, MaxSpacing: 300, Layout: Row, Layers: 1, TopN: 4}
	// BeamTwoLayerPolicy allows 2 to 10 bars split over two layers.
	BeamTwoLayerPolicy = Policy{Name: "beam-two-layer", MinCount: 2, MaxCount: 10, MinSpacing: 75, MaxSpacing: 300, Layout: Row, Layers: 2, TopN: 4}
	// ColumnPolicy is at least 4 bars, an even count, around the core. Spacing
	// alone limits the count.
	ColumnPolicy = Policy{Name: "column", MinCount: 4, MinSpacing: 75, MaxSpacing: 300, Layout: Ring, Layers: 1, EvenCount: true, TopN: 4}
)

// Option is one bar arrangement.
type Option struct {
	Dia          float64 `json:"dia"`
	Count        int     `json:"count"`
	AreaProvided float64 `json:"area_provided"`
	Spacing      float64 `json:"spacing"`
}

// Area of one bar of diameter dia (mm²).
func Area(dia float64) float64 {
	return math.Pi * dia * dia / 4
}

// Spacing returns the centre-to-centre spacing of count bars over width
// under the policy layout.
func (p Policy) Spacing(width float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	if p.Layout == Ring {
		return width / float64(count)
	}
	layers := p.Layers
	if layers < 1 {
		layers = 1
	}
	perLayer := (count + layers - 1) / layers
	return width / float64(perLayer+1)
}

// Allows reports whether count and spacing sit inside the policy bounds.
func (p Policy) Allows(count int, spacing float64) bool {
	if count < p.MinCount || (p.MaxCount > 0 && count > p.MaxCount) {
		return false
	}
	if p.EvenCount && count%2 != 0 {
		return false
	}
	return spacing >= p.MinSpacing && spacing <= p.MaxSpacing
}

// Enumerate tries every standard diameter, takes the least count covering
// required (raised to the policy minimum), and keeps the arrangements whose
// count and spacing the policy allows. Results are ordered by provided area,
// then count, and cut to the policy TopN.
func Enumerate(required, width float64, p Policy) []Option {
	if required <= 0 || width <= 0 {
		return nil
	}
	var out []Option
	for _, dia := range StandardDiameters {
		a := Area(dia)
		count := int(math.Ceil(required / a))
		if count < p.MinCount {
			count = p.MinCount
		}
		if p.EvenCount && count%2 != 0 {
			count++
		}
		spacing := p.Spacing(width, count)
		if !p.Allows(count, spacing) {
			continue
		}
		out = append(out, Option{
			Dia:          dia,
			Count:        count,
			AreaProvided: float64(count) * a,
			Spacing:      spacing,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AreaProvided != out[j].AreaProvided {
			return out[i].AreaProvided < out[j].AreaProvided
		}
		return out[i].Count < out[j].Count
	})
	if p.TopN > 0 && len(out) > p.TopN {
		out = out[:p.TopN]
	}
	return out
}
