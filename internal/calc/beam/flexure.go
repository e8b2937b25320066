package beam

import (
	"fmt"
	"math"

	"Nirman/internal/calc/is456"
	"Nirman/internal/calc/rebar"
)

// DesignType tags the flexural outcome.
type DesignType string

const (
	Singly DesignType = "singly"
	Doubly DesignType = "doubly"
)

// Limiting holds the balanced-section values.
type Limiting struct {
	MuLimKNM float64 `json:"mu_lim_knm"`
	XuMaxByD float64 `json:"xu_max_by_d"`
	XuMaxMM  float64 `json:"xu_max_mm"`
}

// Flexure is the flexural design. The compression fields are only set for a
// doubly reinforced section.
type Flexure struct {
	DesignType       DesignType     `json:"design_type"`
	Status           is456.Status   `json:"status"`
	Message          string         `json:"message,omitempty"`
	AstCalculatedMM2 float64        `json:"ast_calculated_mm2"`
	AstRequiredMM2   float64        `json:"ast_required_mm2"`
	AstMinMM2        float64        `json:"ast_min_mm2"`
	AstMaxMM2        float64        `json:"ast_max_mm2"`
	AstProvidedMM2   float64        `json:"ast_provided_mm2"`
	PtProvided       float64        `json:"pt_provided"`
	BarOptions       []rebar.Option `json:"bar_options"`

	Mu2KNM                float64        `json:"mu2_knm,omitempty"`
	AscRequiredMM2        float64        `json:"asc_required_mm2,omitempty"`
	AscProvidedMM2        float64        `json:"asc_provided_mm2,omitempty"`
	PcProvided            float64        `json:"pc_provided,omitempty"`
	CompressionBarOptions []rebar.Option `json:"compression_bar_options,omitempty"`
}

// section is the resolved geometry the solvers work on, in mm and N.
type section struct {
	b, D, d, dPrime float64
	fck, fy         float64
}

// limiting computes xu,max and Mu,lim = 0.36 fck b xu,max (d − 0.42 xu,max).
func limiting(s section) (Limiting, float64) {
	ratio, _ := is456.XuMaxByD(s.fy)
	xu := ratio * s.d
	muLim := is456.StressBlockFactor * s.fck * s.b * xu * (s.d - is456.StressBlockLeverArm*xu)
	return Limiting{MuLimKNM: muLim / 1e6, XuMaxByD: ratio, XuMaxMM: xu}, muLim
}

// designFlexure classifies the section against Mu,lim and sizes the steel.
// mu is in N·mm.
func designFlexure(s section, mu float64, policy rebar.Policy) (Limiting, Flexure) {
	lim, muLim := limiting(s)
	f := Flexure{
		Status:    is456.StatusOK,
		AstMinMM2: is456.MinTensionSteel(s.fck, s.fy, s.b, s.d),
		AstMaxMM2: is456.MaxBeamSteelRatio * s.b * s.D,
	}
	fyd := is456.Fyd(s.fy)

	if mu <= muLim {
		f.DesignType = Singly
		r := mu / (s.b * s.d * s.d)
		radicand := 1 - 4.6*r/s.fck
		if radicand < 0 {
			f.Status = is456.StatusFail
			f.Message = "moment exceeds the singly reinforced capacity of the section"
			return lim, f
		}
		pt := (50 * s.fck / s.fy) * (1 - math.Sqrt(radicand))
		f.AstCalculatedMM2 = pt * s.b * s.d / 100
	} else {
		f.DesignType = Doubly
		lever := s.d - s.dPrime
		if lever <= 0 {
			f.Status = is456.StatusFail
			f.Message = "compression steel lies below the tension steel; increase depth"
			return lim, f
		}
		mu2 := mu - muLim
		asc := mu2 / (fyd * lever)
		ast1 := is456.StressBlockFactor * s.fck * s.b * lim.XuMaxMM / fyd
		f.Mu2KNM = mu2 / 1e6
		f.AscRequiredMM2 = asc
		f.AstCalculatedMM2 = ast1 + asc
	}
	f.AstRequiredMM2 = math.Max(f.AstCalculatedMM2, f.AstMinMM2)

	if f.AstRequiredMM2 > f.AstMaxMM2 || f.AscRequiredMM2 > f.AstMaxMM2 {
		f.Status = is456.StatusFail
		f.Message = fmt.Sprintf("steel demand exceeds %.0f%% of b·D (%.0f mm²); section too small",
			is456.MaxBeamSteelRatio*100, f.AstMaxMM2)
		return lim, f
	}

	f.BarOptions = rebar.Enumerate(f.AstRequiredMM2, s.b, policy)
	f.AstProvidedMM2 = f.AstRequiredMM2
	if len(f.BarOptions) > 0 {
		f.AstProvidedMM2 = f.BarOptions[0].AreaProvided
	} else {
		f.Status = is456.StatusFail
		f.Message = fmt.Sprintf("no tension bar arrangement fits a %.0f mm width under the %s policy", s.b, policy.Name)
	}
	f.PtProvided = 100 * f.AstProvidedMM2 / (s.b * s.d)

	if f.DesignType == Doubly {
		f.CompressionBarOptions = rebar.Enumerate(f.AscRequiredMM2, s.b, policy)
		f.AscProvidedMM2 = f.AscRequiredMM2
		if len(f.CompressionBarOptions) > 0 {
			f.AscProvidedMM2 = f.CompressionBarOptions[0].AreaProvided
		} else if f.Status != is456.StatusFail {
			f.Status = is456.StatusFail
			f.Message = fmt.Sprintf("no compression bar arrangement fits a %.0f mm width under the %s policy", s.b, policy.Name)
		}
		f.PcProvided = 100 * f.AscProvidedMM2 / (s.b * s.d)
	}
	return lim, f
}
