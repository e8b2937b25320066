// Package loads turns characteristic loads into factored design actions
// using the IS 456 Table 18 limit-state combinations.
package loads

import (
	"fmt"

	"Nirman/internal/calc/is456"
)

type Combination string

const (
	Gravity      Combination = "DL+LL"
	GravityWind  Combination = "DL+LL+WL"
	DeadWind     Combination = "DL+WL"
	WindReversal Combination = "0.9DL+WL"
)

// Input carries characteristic loads. With SpanM set the loads are UDLs in
// kN/m on a simply supported beam; otherwise they are axial loads in kN.
type Input struct {
	Combination Combination `json:"combination,omitempty"`
	DeadKN      float64     `json:"dead_kn"`
	LiveKN      float64     `json:"live_kn"`
	WindKN      float64     `json:"wind_kn,omitempty"`
	SpanM       float64     `json:"span_m,omitempty"`
}

type Result struct {
	Combination  Combination `json:"combination"`
	ComboName    string      `json:"combo_name"`
	DesignLoadKN float64     `json:"design_load_kn"`
	MuKNM        float64     `json:"mu_knm,omitempty"`
	VuKN         float64     `json:"vu_kn,omitempty"`
	PuKN         float64     `json:"pu_kn,omitempty"`
	Notes        string      `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.DeadKN <= 0 {
		return Result{}, is456.Invalid("dead_kn must be positive")
	}
	if in.LiveKN < 0 || in.WindKN < 0 || in.SpanM < 0 {
		return Result{}, is456.Invalid("loads and span must not be negative")
	}
	if in.Combination == "" {
		in.Combination = Gravity
	}
	gD, gL, gW, name, ok := factors(in.Combination)
	if !ok {
		return Result{}, is456.Invalid("combination %q is not one of %s, %s, %s, %s",
			in.Combination, Gravity, GravityWind, DeadWind, WindReversal)
	}
	w := in.DeadKN*gD + in.LiveKN*gL + in.WindKN*gW
	res := Result{
		Combination:  in.Combination,
		ComboName:    name,
		DesignLoadKN: w,
	}
	if in.SpanM > 0 {
		res.MuKNM, res.VuKN = SimplySupported(w, in.SpanM)
		res.Notes = fmt.Sprintf("Simply supported UDL of %.2f kN/m over %.2f m: Mu = wL²/8, Vu = wL/2.", w, in.SpanM)
		return res, nil
	}
	res.PuKN = w
	res.Notes = "Axial load combination."
	return res, nil
}

// SimplySupported returns midspan moment and end shear for a UDL w (kN/m)
// over span (m).
func SimplySupported(w, span float64) (muKNM, vuKN float64) {
	return w * span * span / 8, w * span / 2
}

func factors(c Combination) (gD, gL, gW float64, name string, ok bool) {
	switch c {
	case Gravity:
		return 1.5, 1.5, 0, "1.5(DL+LL)", true
	case GravityWind:
		return 1.2, 1.2, 1.2, "1.2(DL+LL+WL)", true
	case DeadWind:
		return 1.5, 0, 1.5, "1.5(DL+WL)", true
	case WindReversal:
		return 0.9, 0, 1.5, "0.9DL+1.5WL", true
	}
	return 0, 0, 0, "", false
}
