package beam

import (
	"testing"

	"Nirman/internal/calc/is456"
	"Nirman/internal/calc/rebar"
)

func TestDesignShearMinimumOnly(t *testing.T) {
	s := section{b: 230, D: 450, d: 402, dPrime: 48, fck: 25, fy: 500}
	sh := designShear(s, 20e3, 1.0)
	if sh.Status != is456.StatusOK {
		t.Fatalf("status = %s", sh.Status)
	}
	if len(sh.StirrupOptions) == 0 {
		t.Fatal("expected minimum stirrups")
	}
	first := sh.StirrupOptions[0]
	if first.Dia != 8 || first.Legs != 2 || first.SpacingMM != 300 {
		t.Errorf("first option = %+v, want 2L-8 @ 300", first)
	}
}

func TestDesignShearDesigned(t *testing.T) {
	s := section{b: 230, D: 450, d: 402, dPrime: 48, fck: 25, fy: 415}
	sh := designShear(s, 180e3, 1.0)
	if sh.Status != is456.StatusDesign {
		t.Fatalf("status = %s", sh.Status)
	}
	if sh.VusKN <= 0 || sh.AsvPerSv <= 0 {
		t.Errorf("Vus = %v, Asv/sv = %v", sh.VusKN, sh.AsvPerSv)
	}
	for _, o := range sh.StirrupOptions {
		provided := float64(o.Legs) * rebar.Area(o.Dia) / o.SpacingMM
		if provided < sh.AsvPerSv-1e-9 {
			t.Errorf("option %+v under-provides", o)
		}
		if o.SpacingMM < 75 || o.SpacingMM > sh.MaxSpacingMM {
			t.Errorf("option %+v spacing out of range", o)
		}
	}
}

func TestDesignShearCapsStirrupGrade(t *testing.T) {
	s := section{b: 230, D: 450, d: 402, dPrime: 48, fck: 25, fy: 500}
	hi := designShear(s, 180e3, 1.0)
	s.fy = 415
	lo := designShear(s, 180e3, 1.0)
	if hi.AsvPerSv != lo.AsvPerSv {
		t.Errorf("Fe500 stirrups should be designed at 415: %v vs %v", hi.AsvPerSv, lo.AsvPerSv)
	}
}
