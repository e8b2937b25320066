package is456

// Slenderness limit between short and slender compression members
// (cl. 25.1.2).
const SlendernessLimit = 12.0

// Minimum eccentricity rules (cl. 25.4).
const (
	MinEccentricityLengthDivisor = 500.0
	MinEccentricityDepthDivisor  = 30.0
	MinEccentricityFloor         = 20.0 // mm
)

// Column reinforcement percentage candidates, in tenths of a percent so the
// set is exact: 0.8% to 6.0% in 0.2% steps (cl. 26.5.3.1).
const (
	ColumnMinSteelTenths  = 8
	ColumnMaxSteelTenths  = 60
	ColumnSteelStepTenths = 2
)

// ColumnSteelCandidates returns the candidate percentages in ascending order.
func ColumnSteelCandidates() []float64 {
	var out []float64
	for p := ColumnMinSteelTenths; p <= ColumnMaxSteelTenths; p += ColumnSteelStepTenths {
		out = append(out, float64(p)/10)
	}
	return out
}

// UniaxialMomentRatio is the share below which the smaller design moment is
// treated as negligible.
const UniaxialMomentRatio = 0.05

// Stirrup and tie spacing limits (cl. 26.5.1.5, 26.5.3.2).
const (
	MaxStirrupSpacing        = 300.0 // mm
	MaxStirrupSpacingByDepth = 0.75  // × d
	MinStirrupSpacing        = 75.0  // mm
	MaxTieSpacing            = 300.0 // mm
	TieSpacingBarMultiple    = 16.0
	TieSpacingRounding       = 25.0 // mm
	MinTieDia                = 6.0  // mm
	StirrupSpacingRounding   = 5.0  // mm
)

// Deflection: spans over this length reduce the allowable ratio by 10/L.
const LongSpanThreshold = 10000.0 // mm
