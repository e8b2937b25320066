package boq

import "math"

// Materials is a bundle of material quantities: cement in 50kg bags, steel
// in kg, sand and aggregate in m³, bricks in numbers, tiles in m², paint in
// litres.
type Materials struct {
	Cement    float64 `json:"cement"`
	Steel     float64 `json:"steel"`
	Sand      float64 `json:"sand"`
	Aggregate float64 `json:"aggregate"`
	Bricks    float64 `json:"bricks"`
	Tiles     float64 `json:"tiles"`
	Paint     float64 `json:"paint"`
}

// Add returns the component-wise sum. It is associative and commutative, so
// totals do not depend on item order.
func (m Materials) Add(o Materials) Materials {
	return Materials{
		Cement:    m.Cement + o.Cement,
		Steel:     m.Steel + o.Steel,
		Sand:      m.Sand + o.Sand,
		Aggregate: m.Aggregate + o.Aggregate,
		Bricks:    m.Bricks + o.Bricks,
		Tiles:     m.Tiles + o.Tiles,
		Paint:     m.Paint + o.Paint,
	}
}

// Scale multiplies every component by q.
func (m Materials) Scale(q float64) Materials {
	return Materials{
		Cement:    m.Cement * q,
		Steel:     m.Steel * q,
		Sand:      m.Sand * q,
		Aggregate: m.Aggregate * q,
		Bricks:    m.Bricks * q,
		Tiles:     m.Tiles * q,
		Paint:     m.Paint * q,
	}
}

// Rounded rounds each component for presentation. Bricks are whole numbers.
func (m Materials) Rounded() Materials {
	return Materials{
		Cement:    round2(m.Cement),
		Steel:     round2(m.Steel),
		Sand:      round2(m.Sand),
		Aggregate: round2(m.Aggregate),
		Bricks:    math.Ceil(m.Bricks),
		Tiles:     round2(m.Tiles),
		Paint:     round2(m.Paint),
	}
}

// Cost prices the bundle at per-unit rates, in whole rupees.
func (m Materials) Cost(rates Materials) int64 {
	v := m.Cement*rates.Cement +
		m.Steel*rates.Steel +
		m.Sand*rates.Sand +
		m.Aggregate*rates.Aggregate +
		m.Bricks*rates.Bricks +
		m.Tiles*rates.Tiles +
		m.Paint*rates.Paint
	return int64(math.Round(v))
}

// Total folds the material contributions of items.
func Total(items []Item) Materials {
	var sum Materials
	for _, it := range items {
		sum = sum.Add(it.Materials())
	}
	return sum
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
