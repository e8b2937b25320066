package is456

import (
	"math"

	"Nirman/internal/calc/lookup"
)

// Limiting neutral-axis depth ratio xu,max/d by steel grade (cl. 38.1).
var xuMaxByD = lookup.NewEnum(map[float64]float64{
	250: 0.53,
	415: 0.48,
	500: 0.46,
	550: 0.44,
})

// XuMaxByD returns xu,max/d for a recognised steel grade.
func XuMaxByD(fy float64) (float64, bool) {
	return xuMaxByD.Get(fy)
}

// shearPt are the pt = 100 As/(b d) columns of Table 19.
var shearPt = []float64{0.15, 0.25, 0.50, 0.75, 1.00, 1.25, 1.50, 1.75, 2.00, 2.25, 2.50, 2.75, 3.00}

// Design shear strength of concrete τc (Table 19), rows by fck.
var tauC = lookup.MustGrid(
	[]float64{15, 20, 25, 30, 35, 40},
	shearPt,
	[][]float64{
		{0.28, 0.35, 0.46, 0.54, 0.60, 0.64, 0.68, 0.71, 0.71, 0.71, 0.71, 0.71, 0.71},
		{0.28, 0.36, 0.48, 0.56, 0.62, 0.67, 0.72, 0.75, 0.79, 0.81, 0.82, 0.82, 0.82},
		{0.29, 0.36, 0.49, 0.57, 0.64, 0.70, 0.74, 0.78, 0.82, 0.85, 0.88, 0.90, 0.92},
		{0.29, 0.37, 0.50, 0.59, 0.66, 0.71, 0.76, 0.80, 0.84, 0.88, 0.91, 0.94, 0.96},
		{0.29, 0.37, 0.50, 0.59, 0.67, 0.73, 0.78, 0.82, 0.86, 0.90, 0.93, 0.96, 0.99},
		{0.30, 0.38, 0.51, 0.60, 0.68, 0.74, 0.79, 0.84, 0.88, 0.92, 0.95, 0.98, 1.01},
	},
)

// TauC returns the design shear strength of concrete (MPa) for a grade and
// tension steel percentage. pt is clamped to the table range.
func TauC(fck, pt float64) float64 {
	return tauC.At(fck, pt)
}

// Maximum shear stress τc,max (Table 20).
var tauCMax = lookup.MustTable(
	[]float64{15, 20, 25, 30, 35, 40},
	[]float64{2.5, 2.8, 3.1, 3.5, 3.7, 4.0},
)

// TauCMax returns τc,max (MPa) for a concrete grade.
func TauCMax(fck float64) float64 {
	return tauCMax.At(fck)
}

// Design bond stress for plain bars in tension (cl. 26.2.1.1).
var bondStress = lookup.MustTable(
	[]float64{15, 20, 25, 30, 35, 40},
	[]float64{1.0, 1.2, 1.4, 1.5, 1.7, 1.9},
)

// DeformedBarBondFactor raises τbd for deformed bars (fy > 250).
const DeformedBarBondFactor = 1.6

// TauBd returns the design bond stress (MPa) for the bar type implied by fy.
func TauBd(fck, fy float64) float64 {
	tbd := bondStress.At(fck)
	if fy > 250 {
		tbd *= DeformedBarBondFactor
	}
	return tbd
}

// DevelopmentLength returns Ld = φ·0.87fy/(4τbd) rounded up to 10mm
// (cl. 26.2.1).
func DevelopmentLength(dia, fck, fy float64) float64 {
	ld := dia * Fyd(fy) / (4 * TauBd(fck, fy))
	return math.Ceil(ld/10) * 10
}

// Restraint is the end condition of a column in one plane.
type Restraint string

const (
	FixedFixed   Restraint = "fixed-fixed"
	FixedHinged  Restraint = "fixed-hinged"
	HingedHinged Restraint = "hinged-hinged"
	FixedFree    Restraint = "fixed-free"
)

// Effective length factors (Table 28, recommended values).
var effectiveLengthFactors = lookup.NewEnum(map[Restraint]float64{
	FixedFixed:   0.65,
	FixedHinged:  0.80,
	HingedHinged: 1.00,
	FixedFree:    2.00,
})

// EffectiveLengthFactor returns the factor for a restraint condition.
func EffectiveLengthFactor(r Restraint) (float64, bool) {
	return effectiveLengthFactors.Get(r)
}

// Support condition of a beam for the span/depth check (cl. 23.2.1).
type Support string

const (
	Cantilever      Support = "cantilever"
	SimplySupported Support = "simply-supported"
	Continuous      Support = "continuous"
)

var basicSpanDepth = lookup.NewEnum(map[Support]float64{
	Cantilever:      7,
	SimplySupported: 20,
	Continuous:      26,
})

// BasicSpanDepth returns the base allowable span/effective-depth ratio.
func BasicSpanDepth(s Support) (float64, bool) {
	return basicSpanDepth.Get(s)
}

// Tension reinforcement modification factor against pt (Fig. 4, fs≈240).
var tensionModification = lookup.MustTable(
	[]float64{0.2, 0.4, 0.6, 0.8, 1.0, 1.2, 1.6, 2.0, 2.4, 2.8},
	[]float64{2.0, 1.6, 1.35, 1.2, 1.1, 1.05, 0.98, 0.92, 0.88, 0.85},
)

// TensionModification returns kt for a tension steel percentage.
func TensionModification(pt float64) float64 {
	return tensionModification.At(pt)
}

// CompressionModification returns kc for a compression steel percentage
// (Fig. 5), capped at 1.5.
func CompressionModification(pc float64) float64 {
	if pc <= 0 {
		return 1
	}
	return math.Min(1+pc/(3+pc), 1.5)
}
