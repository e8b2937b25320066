// Package autodesign sizes the overall depth of a beam by trying depths in
// fixed steps until the full IS 456 design stops failing.
package autodesign

import (
	"fmt"
	"math"

	"Nirman/internal/calc/beam"
	"Nirman/internal/calc/is456"
)

const (
	DepthStepMM     = 25.0
	MaxDepthMM      = 1200.0
	MinStartDepthMM = 150.0
)

// BeamAutoInput is a beam design request whose depth_mm is ignored. Search
// starts at MinDepthMM (or 150mm) rounded up to the step.
type BeamAutoInput struct {
	beam.Input
	MinDepthMM   float64 `json:"min_depth_mm,omitempty"`
	PreferSingly bool    `json:"prefer_singly,omitempty"`
}

type BeamAutoResult struct {
	Found   bool         `json:"found"`
	DepthMM float64      `json:"depth_mm"`
	Tried   int          `json:"tried"`
	Status  is456.Status `json:"status"`
	Message string       `json:"message,omitempty"`
	Design  *beam.Result `json:"design,omitempty"`
	Notes   string       `json:"notes"`
}

// acceptable reports whether a trial design ends the search.
func acceptable(res beam.Result, preferSingly bool) bool {
	if res.Summary.Status == is456.StatusFail {
		return false
	}
	return !preferSingly || res.Flexure.DesignType == beam.Singly
}

// Beam returns the shallowest passing depth. Depths too shallow to leave an
// effective depth are skipped; other input errors are returned at once.
func Beam(in BeamAutoInput) (BeamAutoResult, error) {
	probe := in.Input
	probe.DepthMM = MaxDepthMM
	if err := probe.Validate(); err != nil {
		return BeamAutoResult{}, err
	}
	start := math.Max(in.MinDepthMM, MinStartDepthMM)
	start = math.Ceil(start/DepthStepMM) * DepthStepMM
	if start > MaxDepthMM {
		return BeamAutoResult{}, is456.Invalid("min_depth_mm must not exceed %.0f", MaxDepthMM)
	}

	out := BeamAutoResult{Notes: fmt.Sprintf("Depth searched from %.0f to %.0f mm in %.0f mm steps.", start, MaxDepthMM, DepthStepMM)}
	for D := start; D <= MaxDepthMM; D += DepthStepMM {
		trial := in.Input
		trial.DepthMM = D
		res, err := beam.Calculate(trial)
		if err != nil {
			// cover and bars leave no effective depth yet
			continue
		}
		out.Tried++
		if acceptable(res, in.PreferSingly) {
			out.Found = true
			out.DepthMM = D
			out.Status = res.Summary.Status
			out.Design = &res
			return out, nil
		}
	}
	out.Status = is456.StatusFail
	out.Message = fmt.Sprintf("no depth up to %.0f mm satisfies the design at width %.0f mm; widen the beam or raise the grade", MaxDepthMM, in.WidthMM)
	return out, nil
}
