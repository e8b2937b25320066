// Package column designs short and slender rectangular RC columns to IS 456
// for axial load with uniaxial or biaxial bending.
package column

import (
	"fmt"
	"math"

	"Nirman/internal/calc/is456"
	"Nirman/internal/calc/rebar"
)

// Detailing assumptions for d'.
const (
	DefaultMainBarDia = 16.0
	DefaultTieDia     = 8.0
)

type Input struct {
	PuKN         float64         `json:"pu_kn"`
	MuxKNM       float64         `json:"mux_knm,omitempty"`
	MuyKNM       float64         `json:"muy_knm,omitempty"`
	WidthMM      float64         `json:"width_mm"`
	DepthMM      float64         `json:"depth_mm"`
	LengthMM     float64         `json:"length_mm"`
	Fck          float64         `json:"fck"`
	Fy           float64         `json:"fy"`
	CoverMM      float64         `json:"cover_mm"`
	RestraintX   is456.Restraint `json:"restraint_x,omitempty"`
	RestraintY   is456.Restraint `json:"restraint_y,omitempty"`
	MainBarDiaMM float64         `json:"main_bar_dia_mm,omitempty"`
}

type Summary struct {
	Classification Classification `json:"classification"`
	DesignType     DesignType     `json:"design_type"`
	Longitudinal   string         `json:"longitudinal"`
	Ties           string         `json:"ties"`
	Status         is456.Status   `json:"status"`
}

type Result struct {
	Grade            string           `json:"grade"`
	EffectiveLengths EffectiveLengths `json:"effective_lengths"`
	Slenderness      Slenderness      `json:"slenderness"`
	Eccentricity     Eccentricity     `json:"eccentricity"`
	Design           Design           `json:"design"`
	Ties             Ties             `json:"ties"`
	Summary          Summary          `json:"summary"`
	Notes            []string         `json:"notes"`
}

func (in Input) Validate() error {
	switch {
	case in.PuKN <= 0:
		return is456.Invalid("pu_kn must be positive")
	case in.WidthMM <= 0:
		return is456.Invalid("width_mm must be positive")
	case in.DepthMM <= 0:
		return is456.Invalid("depth_mm must be positive")
	case in.LengthMM <= 0:
		return is456.Invalid("length_mm must be positive")
	case in.CoverMM <= 0:
		return is456.Invalid("cover_mm must be positive")
	}
	if err := (is456.Material{Fck: in.Fck, Fy: in.Fy}).Validate(); err != nil {
		return err
	}
	restraints := []struct {
		name string
		r    is456.Restraint
	}{
		{"restraint_x", in.RestraintX},
		{"restraint_y", in.RestraintY},
	}
	for _, rs := range restraints {
		if rs.r == "" {
			continue
		}
		if _, ok := is456.EffectiveLengthFactor(rs.r); !ok {
			return is456.Invalid("%s %q is not a recognised end condition", rs.name, rs.r)
		}
	}
	return nil
}

func (in Input) withDefaults() Input {
	if in.RestraintX == "" {
		in.RestraintX = is456.HingedHinged
	}
	if in.RestraintY == "" {
		in.RestraintY = is456.HingedHinged
	}
	if in.MainBarDiaMM <= 0 {
		in.MainBarDiaMM = DefaultMainBarDia
	}
	in.MuxKNM = math.Abs(in.MuxKNM)
	in.MuyKNM = math.Abs(in.MuyKNM)
	return in
}

// Evaluate computes the effective lengths, slenderness and eccentricities
// without designing reinforcement.
func Evaluate(in Input) (State, error) {
	if err := in.Validate(); err != nil {
		return State{}, err
	}
	return evaluate(in.withDefaults()), nil
}

func evaluate(in Input) State {
	kx, _ := is456.EffectiveLengthFactor(in.RestraintX)
	ky, _ := is456.EffectiveLengthFactor(in.RestraintY)
	le := effectiveLengths(in.LengthMM, kx, ky)
	sl := classify(le, in.WidthMM, in.DepthMM)
	ecc := Eccentricity{
		MinMajorMM:        MinEccentricity(in.LengthMM, in.DepthMM),
		MinMinorMM:        MinEccentricity(in.LengthMM, in.WidthMM),
		AdditionalMajorMM: additionalEccentricity(sl.MajorRatio, in.DepthMM),
		AdditionalMinorMM: additionalEccentricity(sl.MinorRatio, in.WidthMM),
	}
	return State{EffectiveLengths: le, Slenderness: sl, Eccentricity: ecc}
}

// Calculate evaluates the column and searches the reinforcement percentage.
// Errors are input problems only; an inadequate section is a FAIL design
// returned together with the slenderness and eccentricity data.
func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	in = in.withDefaults()
	st := evaluate(in)

	m := member{
		b:      in.WidthMM,
		D:      in.DepthMM,
		dPrime: in.CoverMM + DefaultTieDia + in.MainBarDiaMM/2,
		fck:    in.Fck,
		fy:     in.Fy,
	}
	if 2*m.dPrime >= math.Min(m.b, m.D) {
		return Result{}, is456.Invalid("cover_mm %.0f leaves no core in a %.0fx%.0f section", in.CoverMM, in.WidthMM, in.DepthMM)
	}

	ecc := st.Eccentricity
	mux := math.Max(in.MuxKNM, in.PuKN*ecc.MinMajorMM/1000) + in.PuKN*ecc.AdditionalMajorMM/1000
	muy := math.Max(in.MuyKNM, in.PuKN*ecc.MinMinorMM/1000) + in.PuKN*ecc.AdditionalMinorMM/1000
	applied := in.MuxKNM > 0 || in.MuyKNM > 0 || st.Slenderness.Classification == Slender
	ecc.ActualMajorMM = mux / in.PuKN * 1000
	ecc.ActualMinorMM = muy / in.PuKN * 1000

	res := Result{
		Grade:            is456.Material{Fck: in.Fck, Fy: in.Fy}.GradeName(),
		EffectiveLengths: st.EffectiveLengths,
		Slenderness:      st.Slenderness,
		Eccentricity:     ecc,
		Notes: []string{
			fmt.Sprintf("d' = cover + %.0fmm tie + %.0fmm bar/2", DefaultTieDia, in.MainBarDiaMM),
			"design moments floored at Pu × minimum eccentricity",
		},
	}

	d := Design{
		Type:         classifyMoments(applied, mux, muy),
		MuxDesignKNM: mux,
		MuyDesignKNM: muy,
	}
	switch d.Type {
	case UniaxialMajor:
		d.MuDesignKNM = mux
	case UniaxialMinor:
		d.MuDesignKNM = muy
	case Biaxial:
		d.MuDesignKNM = math.Hypot(mux, muy)
		res.Notes = append(res.Notes, BiaxialNote)
	}
	if st.Slenderness.Classification == Slender {
		res.Notes = append(res.Notes, "slender column: additional moments Pu·ea included")
	}
	d = search(m, in.PuKN, d)

	barDia := in.MainBarDiaMM
	if d.Status != is456.StatusFail {
		core := 2 * ((m.b - 2*m.dPrime) + (m.D - 2*m.dPrime))
		d.BarOptions = rebar.Enumerate(d.AscRequiredMM2, core, rebar.ColumnPolicy)
		if len(d.BarOptions) == 0 {
			d.Status = is456.StatusFail
			d.Message = fmt.Sprintf("no bar arrangement of %.0f mm² fits the %.0f mm core perimeter", d.AscRequiredMM2, core)
		} else {
			barDia = d.BarOptions[0].Dia
		}
	}
	res.Design = d
	res.Ties = designTies(barDia, in.WidthMM, in.DepthMM)

	res.Summary = Summary{
		Classification: st.Slenderness.Classification,
		DesignType:     d.Type,
		Longitudinal:   "-",
		Ties:           fmt.Sprintf("%.0fφ @ %.0f c/c", res.Ties.Dia, res.Ties.SpacingMM),
		Status:         d.Status,
	}
	if len(d.BarOptions) > 0 {
		o := d.BarOptions[0]
		res.Summary.Longitudinal = fmt.Sprintf("%d-%.0fφ", o.Count, o.Dia)
	}
	return res, nil
}
