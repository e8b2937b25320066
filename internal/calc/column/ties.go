package column

import (
	"math"

	"Nirman/internal/calc/is456"
)

// TieDiameters are the lateral tie sizes stocked, in mm.
var TieDiameters = []float64{6, 8, 10, 12}

type Ties struct {
	Dia       float64 `json:"dia"`
	SpacingMM float64 `json:"spacing_mm"`
}

// designTies sizes ties as max(⌈φ/4⌉, 6mm) snapped up to a stocked size, at
// min(least lateral dimension, 16φ, 300mm) rounded down to 25mm.
func designTies(barDia, b, D float64) Ties {
	dia := math.Max(math.Ceil(barDia/4), is456.MinTieDia)
	for _, d := range TieDiameters {
		if d >= dia {
			dia = d
			break
		}
	}
	sp := math.Min(math.Min(b, D), is456.TieSpacingBarMultiple*barDia)
	sp = math.Min(sp, is456.MaxTieSpacing)
	sp = math.Floor(sp/is456.TieSpacingRounding) * is456.TieSpacingRounding
	return Ties{Dia: dia, SpacingMM: sp}
}
