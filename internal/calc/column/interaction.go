package column

import (
	"fmt"
	"math"

	"Nirman/internal/calc/is456"
	"Nirman/internal/calc/rebar"
)

// DesignType tags the column outcome.
type DesignType string

const (
	Axial         DesignType = "axial"
	UniaxialMajor DesignType = "uniaxial-major"
	UniaxialMinor DesignType = "uniaxial-minor"
	Biaxial       DesignType = "biaxial"
)

// BiaxialNote flags the equivalent-moment shortcut used for biaxial bending.
const BiaxialNote = "biaxial bending approximated by the equivalent moment √(Mux²+Muy²) about the major axis; not an interaction-surface solution"

// Design is the reinforcement search outcome.
type Design struct {
	Type           DesignType     `json:"type"`
	Status         is456.Status   `json:"status"`
	Message        string         `json:"message,omitempty"`
	MuxDesignKNM   float64        `json:"mux_design_knm"`
	MuyDesignKNM   float64        `json:"muy_design_knm"`
	MuDesignKNM    float64        `json:"mu_design_knm"`
	PRequired      float64        `json:"p_required,omitempty"`
	AscRequiredMM2 float64        `json:"asc_required_mm2,omitempty"`
	PuMaxKN        float64        `json:"pu_max_kn,omitempty"`
	MuMaxKNM       float64        `json:"mu_max_knm,omitempty"`
	Interaction    float64        `json:"interaction,omitempty"`
	BarOptions     []rebar.Option `json:"bar_options,omitempty"`
}

// member is the resolved column section in mm, kN and kN·m.
type member struct {
	b, D, dPrime float64
	fck, fy      float64
}

// axialCapacity is Pu = 0.4 fck Ac + 0.67 fy Asc, in kN.
func axialCapacity(m member, asc float64) float64 {
	ac := m.b*m.D - asc
	return (is456.ColumnConcreteFactor*m.fck*ac + is456.ColumnSteelFactor*m.fy*asc) / 1000
}

// momentCapacity approximates the moment resistance (kN·m) about the axis
// whose depth is h and width w: a balanced concrete block acting about the
// centroid plus half the steel on each face.
func momentCapacity(m member, asc, h, w float64) float64 {
	ratio, _ := is456.XuMaxByD(m.fy)
	xu := ratio * (h - m.dPrime)
	concrete := is456.StressBlockFactor * m.fck * w * xu * (h/2 - is456.StressBlockLeverArm*xu)
	steel := is456.Fyd(m.fy) * (asc / 2) * (h - 2*m.dPrime)
	return (concrete + steel) / 1e6
}

// classifyMoments picks the design type from the floored design moments.
func classifyMoments(applied bool, mux, muy float64) DesignType {
	if !applied {
		return Axial
	}
	hi, lo := math.Max(mux, muy), math.Min(mux, muy)
	if hi == 0 {
		return Axial
	}
	if lo < is456.UniaxialMomentRatio*hi {
		if mux >= muy {
			return UniaxialMajor
		}
		return UniaxialMinor
	}
	return Biaxial
}

// search walks the candidate percentages and keeps the first one whose
// interaction ratio is within 1.0.
func search(m member, pu float64, d Design) Design {
	ag := m.b * m.D
	h, w := m.D, m.b
	if d.Type == UniaxialMinor {
		h, w = m.b, m.D
	}
	for _, p := range is456.ColumnSteelCandidates() {
		asc := p / 100 * ag
		puMax := axialCapacity(m, asc)
		if puMax <= 0 {
			continue
		}
		ratio := pu / puMax
		muMax := 0.0
		if d.Type != Axial {
			muMax = momentCapacity(m, asc, h, w)
			if muMax <= 0 {
				continue
			}
			ratio += d.MuDesignKNM / muMax
		}
		if ratio <= 1.0 {
			d.Status = is456.StatusOK
			d.PRequired = p
			d.AscRequiredMM2 = asc
			d.PuMaxKN = puMax
			d.MuMaxKNM = muMax
			d.Interaction = ratio
			return d
		}
	}
	d.Status = is456.StatusFail
	d.Message = fmt.Sprintf("no reinforcement between %.1f%% and %.1f%% satisfies the %s check; enlarge the section or raise the grade",
		float64(is456.ColumnMinSteelTenths)/10, float64(is456.ColumnMaxSteelTenths)/10, d.Type)
	return d
}
