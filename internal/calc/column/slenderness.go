package column

import (
	"math"

	"Nirman/internal/calc/is456"
)

// Classification of a compression member.
type Classification string

const (
	Short   Classification = "short"
	Slender Classification = "slender"
)

// EffectiveLengths are le = k·L per axis. The major axis bends across the
// depth D, the minor axis across the width b.
type EffectiveLengths struct {
	MajorMM float64 `json:"major_mm"`
	MinorMM float64 `json:"minor_mm"`
	KMajor  float64 `json:"k_major"`
	KMinor  float64 `json:"k_minor"`
}

type Slenderness struct {
	MajorRatio     float64        `json:"major_ratio"`
	MinorRatio     float64        `json:"minor_ratio"`
	Classification Classification `json:"classification"`
}

// Eccentricity holds the minimum, additional (slender columns) and actual
// design eccentricities per axis, in mm.
type Eccentricity struct {
	MinMajorMM        float64 `json:"min_major_mm"`
	MinMinorMM        float64 `json:"min_minor_mm"`
	AdditionalMajorMM float64 `json:"additional_major_mm"`
	AdditionalMinorMM float64 `json:"additional_minor_mm"`
	ActualMajorMM     float64 `json:"actual_major_mm"`
	ActualMinorMM     float64 `json:"actual_minor_mm"`
}

// State is the geometric evaluation of a column before reinforcement.
type State struct {
	EffectiveLengths EffectiveLengths `json:"effective_lengths"`
	Slenderness      Slenderness      `json:"slenderness"`
	Eccentricity     Eccentricity     `json:"eccentricity"`
}

func effectiveLengths(length float64, kMajor, kMinor float64) EffectiveLengths {
	return EffectiveLengths{
		MajorMM: kMajor * length,
		MinorMM: kMinor * length,
		KMajor:  kMajor,
		KMinor:  kMinor,
	}
}

// classify is short only when both ratios are below the slenderness limit.
func classify(le EffectiveLengths, b, D float64) Slenderness {
	s := Slenderness{
		MajorRatio: le.MajorMM / D,
		MinorRatio: le.MinorMM / b,
	}
	s.Classification = Slender
	if s.MajorRatio < is456.SlendernessLimit && s.MinorRatio < is456.SlendernessLimit {
		s.Classification = Short
	}
	return s
}

// MinEccentricity returns max(L/500 + h/30, 20mm) for the dimension h in the
// plane of bending.
func MinEccentricity(length, h float64) float64 {
	e := length/is456.MinEccentricityLengthDivisor + h/is456.MinEccentricityDepthDivisor
	return math.Max(e, is456.MinEccentricityFloor)
}

// additionalEccentricity is ea = h/2000·(le/h)² when the axis is slender
// (cl. 39.7.1), zero otherwise.
func additionalEccentricity(ratio, h float64) float64 {
	if ratio < is456.SlendernessLimit {
		return 0
	}
	return h / 2000 * ratio * ratio
}
