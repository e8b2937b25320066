// Package is456 carries the numeric rules of IS 456:2000 used by the beam
// and column solvers: recognised grades, code tables and policy constants.
package is456

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks a missing or out-of-range input. Design
// inadequacy is never reported through it.
var ErrInvalidInput = errors.New("invalid input")

// Invalid wraps ErrInvalidInput with a field-level message.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Status of a design check.
type Status string

const (
	StatusOK     Status = "OK"
	StatusDesign Status = "DESIGN"
	StatusFail   Status = "FAIL"
)

// Worst returns the more severe of two statuses.
func Worst(a, b Status) Status {
	if rank(b) > rank(a) {
		return b
	}
	return a
}

func rank(s Status) int {
	switch s {
	case StatusFail:
		return 2
	case StatusDesign:
		return 1
	default:
		return 0
	}
}

// ConcreteGrades (fck, MPa) recognised by the solvers.
var ConcreteGrades = []float64{15, 20, 25, 30, 35, 40}

// SteelGrades (fy, MPa) recognised by the solvers.
var SteelGrades = []float64{250, 415, 500, 550}

// Material is a concrete/steel pair.
type Material struct {
	Fck float64 `json:"fck"`
	Fy  float64 `json:"fy"`
}

// Validate checks both grades against the recognised enumerations.
func (m Material) Validate() error {
	if !contains(ConcreteGrades, m.Fck) {
		return Invalid("fck %.0f is not a recognised concrete grade %v", m.Fck, ConcreteGrades)
	}
	if !contains(SteelGrades, m.Fy) {
		return Invalid("fy %.0f is not a recognised steel grade %v", m.Fy, SteelGrades)
	}
	return nil
}

// GradeName renders the grade pair, e.g. "M25/Fe500".
func (m Material) GradeName() string {
	return fmt.Sprintf("M%.0f/Fe%.0f", m.Fck, m.Fy)
}

func contains(list []float64, v float64) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// Design stress factors (cl. 38.1).
const (
	SteelDesignFactor    = 0.87 // fyd = 0.87 fy
	StressBlockFactor    = 0.36 // C = 0.36 fck b xu
	StressBlockLeverArm  = 0.42 // z = d - 0.42 xu
	ColumnConcreteFactor = 0.40 // Pu = 0.4 fck Ac + 0.67 fy Asc (cl. 39.3)
	ColumnSteelFactor    = 0.67
	MinStirrupFactor     = 0.4 // Asv/(b sv) >= 0.4/(0.87 fy) (cl. 26.5.1.6)
)

// Fyd returns the design yield stress of reinforcement.
func Fyd(fy float64) float64 {
	return SteelDesignFactor * fy
}

// MinTensionSteel is the code minimum for beam tension steel (cl. 26.5.1.1)
// taken together with the 0.24√fck/fy floor used for higher grades.
func MinTensionSteel(fck, fy, b, d float64) float64 {
	return math.Max(0.85*b*d/fy, 0.24*math.Sqrt(fck)*b*d/fy)
}

// MaxBeamSteelRatio caps tension or compression steel at 4% of b·D
// (cl. 26.5.1.1(b), 26.5.1.2).
const MaxBeamSteelRatio = 0.04
