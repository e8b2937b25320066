// Package beam designs rectangular reinforced concrete beams to IS 456:
// flexure (singly or doubly reinforced), shear, span/depth deflection and
// development length.
package beam

import (
	"fmt"

	"Nirman/internal/calc/is456"
	"Nirman/internal/calc/rebar"
)

// Default detailing assumptions used to derive d and d'.
const (
	DefaultMainBarDia = 20.0
	DefaultStirrupDia = 8.0
)

type Input struct {
	MuKNM          float64       `json:"mu_knm"`
	VuKN           float64       `json:"vu_kn"`
	WidthMM        float64       `json:"width_mm"`
	DepthMM        float64       `json:"depth_mm"`
	CoverMM        float64       `json:"cover_mm"`
	SpanMM         float64       `json:"span_mm,omitempty"`
	Fck            float64       `json:"fck"`
	Fy             float64       `json:"fy"`
	MainBarDiaMM   float64       `json:"main_bar_dia_mm,omitempty"`
	StirrupDiaMM   float64       `json:"stirrup_dia_mm,omitempty"`
	Support        is456.Support `json:"support,omitempty"`
	AllowTwoLayers bool          `json:"allow_two_layers,omitempty"`
}

type Summary struct {
	DesignType  DesignType   `json:"design_type"`
	Tension     string       `json:"tension"`
	Compression string       `json:"compression,omitempty"`
	Stirrups    string       `json:"stirrups"`
	Status      is456.Status `json:"status"`
}

type Result struct {
	EffectiveDepthMM    float64     `json:"effective_depth_mm"`
	CompressionCoverMM  float64     `json:"compression_cover_mm"`
	Grade               string      `json:"grade"`
	Limiting            Limiting    `json:"limiting"`
	Flexure             Flexure     `json:"flexural_design"`
	Shear               Shear       `json:"shear_design"`
	Deflection          *Deflection `json:"deflection_check,omitempty"`
	DevelopmentLengthMM float64     `json:"development_length_mm"`
	Summary             Summary     `json:"summary"`
	Notes               []string    `json:"notes"`
}

// withDefaults fills the optional detailing fields.
func (in Input) withDefaults() Input {
	if in.MainBarDiaMM <= 0 {
		in.MainBarDiaMM = DefaultMainBarDia
	}
	if in.StirrupDiaMM <= 0 {
		in.StirrupDiaMM = DefaultStirrupDia
	}
	if in.Support == "" {
		in.Support = is456.SimplySupported
	}
	return in
}

// Validate rejects missing or non-positive required fields and unknown
// grades or support conditions.
func (in Input) Validate() error {
	switch {
	case in.MuKNM <= 0:
		return is456.Invalid("mu_knm must be positive")
	case in.VuKN < 0:
		return is456.Invalid("vu_kn must not be negative")
	case in.WidthMM <= 0:
		return is456.Invalid("width_mm must be positive")
	case in.DepthMM <= 0:
		return is456.Invalid("depth_mm must be positive")
	case in.CoverMM <= 0:
		return is456.Invalid("cover_mm must be positive")
	case in.SpanMM < 0:
		return is456.Invalid("span_mm must not be negative")
	}
	if err := (is456.Material{Fck: in.Fck, Fy: in.Fy}).Validate(); err != nil {
		return err
	}
	if in.Support != "" {
		if _, ok := is456.BasicSpanDepth(in.Support); !ok {
			return is456.Invalid("unknown support %q", in.Support)
		}
	}
	return nil
}

// Calculate runs the full beam design. A returned error is always an input
// problem; an inadequate section comes back as a Result with FAIL status.
func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	in = in.withDefaults()

	s := section{
		b:      in.WidthMM,
		D:      in.DepthMM,
		d:      in.DepthMM - in.CoverMM - in.StirrupDiaMM - in.MainBarDiaMM/2,
		dPrime: in.CoverMM + in.StirrupDiaMM + in.MainBarDiaMM/2,
		fck:    in.Fck,
		fy:     in.Fy,
	}
	if s.d <= 0 {
		return Result{}, is456.Invalid("depth_mm %.0f leaves no effective depth after cover and bars", in.DepthMM)
	}

	policy := rebar.BeamPolicy
	if in.AllowTwoLayers {
		policy = rebar.BeamTwoLayerPolicy
	}

	res := Result{
		EffectiveDepthMM:   s.d,
		CompressionCoverMM: s.dPrime,
		Grade:              is456.Material{Fck: in.Fck, Fy: in.Fy}.GradeName(),
		Notes: []string{
			fmt.Sprintf("d = D - cover - %.0fmm stirrup - %.0fmm bar/2", in.StirrupDiaMM, in.MainBarDiaMM),
			"compression steel stress taken as 0.87 fy",
		},
	}
	res.Limiting, res.Flexure = designFlexure(s, in.MuKNM*1e6, policy)

	pt := res.Flexure.PtProvided
	if pt == 0 {
		pt = 100 * res.Flexure.AstRequiredMM2 / (s.b * s.d)
	}
	res.Shear = designShear(s, in.VuKN*1000, pt)

	if in.SpanMM > 0 {
		dc := checkDeflection(in.SpanMM, s.d, in.Support, pt, res.Flexure.PcProvided)
		res.Deflection = &dc
	} else {
		res.Notes = append(res.Notes, "deflection not checked: span not given")
	}

	barDia := in.MainBarDiaMM
	if len(res.Flexure.BarOptions) > 0 {
		barDia = res.Flexure.BarOptions[0].Dia
	}
	res.DevelopmentLengthMM = is456.DevelopmentLength(barDia, in.Fck, in.Fy)

	res.Summary = summarize(res)
	return res, nil
}

func summarize(res Result) Summary {
	sum := Summary{
		DesignType: res.Flexure.DesignType,
		Tension:    describeBars(res.Flexure.BarOptions),
		Stirrups:   "-",
		Status:     is456.Worst(res.Flexure.Status, res.Shear.Status),
	}
	if res.Flexure.DesignType == Doubly {
		sum.Compression = describeBars(res.Flexure.CompressionBarOptions)
	}
	if len(res.Shear.StirrupOptions) > 0 {
		o := res.Shear.StirrupOptions[0]
		sum.Stirrups = fmt.Sprintf("%dL-%.0fφ @ %.0f c/c", o.Legs, o.Dia, o.SpacingMM)
	}
	if res.Deflection != nil {
		sum.Status = is456.Worst(sum.Status, res.Deflection.Status)
	}
	return sum
}

func describeBars(opts []rebar.Option) string {
	if len(opts) == 0 {
		return "-"
	}
	return fmt.Sprintf("%d-%.0fφ", opts[0].Count, opts[0].Dia)
}
