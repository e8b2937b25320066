package boq

import "Nirman/internal/calc/lookup"

// floorEscalation multiplies item rates by floor index (0 = ground). Floors
// beyond the last key keep the last multiplier.
var floorEscalation = lookup.MustStep(
	[]float64{0, 1, 2, 3, 4, 5},
	[]float64{1.00, 1.02, 1.04, 1.06, 1.08, 1.10},
)

// Escalation returns the rate multiplier for a floor index.
func Escalation(floor int) float64 {
	if floor < 0 {
		floor = 0
	}
	return floorEscalation.At(float64(floor))
}
