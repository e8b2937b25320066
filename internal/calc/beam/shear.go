package beam

import (
	"fmt"
	"math"
	"sort"

	"Nirman/internal/calc/is456"
	"Nirman/internal/calc/rebar"
)

// Stirrup candidates.
var (
	StirrupDiameters = []float64{8, 10, 12}
	StirrupLegs      = []int{2, 4}
)

// MaxShearSteelFy is the ceiling on fy for shear reinforcement (cl. 40.4).
const MaxShearSteelFy = 415.0

// StirrupOption is one vertical stirrup arrangement.
type StirrupOption struct {
	Dia            float64 `json:"dia"`
	Legs           int     `json:"legs"`
	SpacingMM      float64 `json:"spacing_mm"`
	CapacityKNPerM float64 `json:"capacity_kn_per_m"`
}

// Shear is the shear design of a beam section.
type Shear struct {
	TauV           float64         `json:"tau_v"`
	TauC           float64         `json:"tau_c"`
	TauCMax        float64         `json:"tau_c_max"`
	Status         is456.Status    `json:"status"`
	Message        string          `json:"message,omitempty"`
	VusKN          float64         `json:"vus_kn,omitempty"`
	AsvPerSv       float64         `json:"asv_per_sv,omitempty"`
	MaxSpacingMM   float64         `json:"max_spacing_mm"`
	StirrupOptions []StirrupOption `json:"stirrup_options"`
}

// designShear compares τv with τc and τc,max and picks stirrups. vu is in N.
func designShear(s section, vu, pt float64) Shear {
	bd := s.b * s.d
	sh := Shear{
		TauV:         vu / bd,
		TauC:         is456.TauC(s.fck, pt),
		TauCMax:      is456.TauCMax(s.fck),
		MaxSpacingMM: math.Min(is456.MaxStirrupSpacingByDepth*s.d, is456.MaxStirrupSpacing),
	}
	fyv := math.Min(s.fy, MaxShearSteelFy)

	switch {
	case sh.TauV > sh.TauCMax:
		sh.Status = is456.StatusFail
		sh.Message = fmt.Sprintf("τv %.2f MPa exceeds τc,max %.2f MPa; revise the section", sh.TauV, sh.TauCMax)
		return sh
	case sh.TauV <= sh.TauC:
		sh.Status = is456.StatusOK
		sh.Message = "minimum shear reinforcement"
		sh.StirrupOptions = stirrups(s.b, sh.MaxSpacingMM, fyv, 0)
		return sh
	}

	sh.Status = is456.StatusDesign
	vus := vu - sh.TauC*bd
	sh.VusKN = vus / 1000
	sh.AsvPerSv = vus / (is456.Fyd(fyv) * s.d)
	sh.StirrupOptions = stirrups(s.b, sh.MaxSpacingMM, fyv, sh.AsvPerSv)
	if len(sh.StirrupOptions) == 0 {
		sh.Status = is456.StatusFail
		sh.Message = fmt.Sprintf("no stirrup arrangement reaches Asv/sv %.3f mm²/mm at %.0f mm spacing or more",
			sh.AsvPerSv, is456.MinStirrupSpacing)
	}
	return sh
}

// stirrups enumerates diameter/leg combinations. With asvPerSv == 0 only the
// minimum-steel rule governs and the 75mm floor does not apply.
func stirrups(b, maxSpacing, fyv, asvPerSv float64) []StirrupOption {
	var out []StirrupOption
	for _, legs := range StirrupLegs {
		for _, dia := range StirrupDiameters {
			asv := float64(legs) * rebar.Area(dia)
			sv := math.Min(is456.Fyd(fyv)*asv/(is456.MinStirrupFactor*b), maxSpacing)
			if asvPerSv > 0 {
				sv = math.Min(sv, asv/asvPerSv)
			}
			sv = math.Floor(sv/is456.StirrupSpacingRounding) * is456.StirrupSpacingRounding
			if sv <= 0 {
				continue
			}
			if asvPerSv > 0 && sv < is456.MinStirrupSpacing {
				continue
			}
			out = append(out, StirrupOption{
				Dia:            dia,
				Legs:           legs,
				SpacingMM:      sv,
				CapacityKNPerM: is456.Fyd(fyv) * asv / sv,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ui := steelPerLength(out[i])
		uj := steelPerLength(out[j])
		if ui != uj {
			return ui < uj
		}
		return out[i].SpacingMM > out[j].SpacingMM
	})
	if len(out) > 4 {
		out = out[:4]
	}
	return out
}

func steelPerLength(o StirrupOption) float64 {
	return float64(o.Legs) * rebar.Area(o.Dia) / o.SpacingMM
}
