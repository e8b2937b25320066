package beam

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"Nirman/internal/calc/is456"
)

func scenario() Input {
	return Input{
		MuKNM:   150,
		VuKN:    80,
		WidthMM: 230,
		DepthMM: 450,
		CoverMM: 30,
		Fck:     25,
		Fy:      500,
	}
}

func TestCalculateDoublyScenario(t *testing.T) {
	res, err := Calculate(scenario())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	checks := []struct {
		name      string
		got, want float64
		tol       float64
	}{
		{"d", res.EffectiveDepthMM, 402, 1e-9},
		{"d'", res.CompressionCoverMM, 48, 1e-9},
		{"Mu,lim", res.Limiting.MuLimKNM, 124.1, 0.1},
		{"Mu2", res.Flexure.Mu2KNM, 25.85, 0.1},
		{"Asc", res.Flexure.AscRequiredMM2, 168, 1},
		{"Ast", res.Flexure.AstRequiredMM2, 1048, 1},
		{"Ast,min", res.Flexure.AstMinMM2, 222, 0.5},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > c.tol {
			t.Errorf("%s = %.3f, want %.3f ± %v", c.name, c.got, c.want, c.tol)
		}
	}
	if res.Flexure.DesignType != Doubly {
		t.Errorf("design type = %s, want doubly", res.Flexure.DesignType)
	}
	if res.Flexure.Status != is456.StatusOK {
		t.Errorf("flexure status = %s (%s)", res.Flexure.Status, res.Flexure.Message)
	}
	if len(res.Flexure.CompressionBarOptions) == 0 {
		t.Error("expected compression bar options")
	}
	if res.Shear.Status != is456.StatusDesign {
		t.Errorf("shear status = %s, want DESIGN", res.Shear.Status)
	}
	if res.Summary.DesignType != Doubly || res.Summary.Compression == "" {
		t.Errorf("summary = %+v", res.Summary)
	}
	if res.DevelopmentLengthMM != 1560 {
		// 32mm bars govern: 32*435/(4*2.24) = 1553.6 -> 1560
		t.Errorf("Ld = %v, want 1560", res.DevelopmentLengthMM)
	}
}

func TestCalculateSingly(t *testing.T) {
	in := scenario()
	in.MuKNM = 80
	res, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	if res.Flexure.DesignType != Singly {
		t.Fatalf("design type = %s", res.Flexure.DesignType)
	}
	if math.Abs(res.Flexure.AstRequiredMM2-515.1) > 1 {
		t.Errorf("Ast = %.1f, want ~515.1", res.Flexure.AstRequiredMM2)
	}
	if res.Flexure.AscRequiredMM2 != 0 || res.Flexure.CompressionBarOptions != nil {
		t.Error("singly section should carry no compression steel")
	}
	if res.Summary.Tension != "2-20φ" {
		t.Errorf("tension = %q, want 2-20φ", res.Summary.Tension)
	}
}

func TestCalculateMinimumSteelGoverns(t *testing.T) {
	in := scenario()
	in.MuKNM = 5
	res, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	if res.Flexure.AstCalculatedMM2 >= res.Flexure.AstMinMM2 {
		t.Fatalf("expected calculated steel below minimum, got %.1f", res.Flexure.AstCalculatedMM2)
	}
	if res.Flexure.AstRequiredMM2 != res.Flexure.AstMinMM2 {
		t.Errorf("Ast required %.1f not clamped to minimum %.1f", res.Flexure.AstRequiredMM2, res.Flexure.AstMinMM2)
	}
}

func TestCalculateFailures(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Input)
		check  func(t *testing.T, res Result)
	}{
		{
			name:   "steel above four percent",
			modify: func(in *Input) { in.MuKNM = 800 },
			check: func(t *testing.T, res Result) {
				if res.Flexure.Status != is456.StatusFail {
					t.Errorf("flexure status = %s", res.Flexure.Status)
				}
			},
		},
		{
			name:   "shear above tau_c_max",
			modify: func(in *Input) { in.VuKN = 400 },
			check: func(t *testing.T, res Result) {
				if res.Shear.Status != is456.StatusFail {
					t.Errorf("shear status = %s", res.Shear.Status)
				}
				if res.Shear.StirrupOptions != nil {
					t.Error("failed shear should list no stirrups")
				}
			},
		},
		{
			name:   "long span deflection",
			modify: func(in *Input) { in.SpanMM = 12000 },
			check: func(t *testing.T, res Result) {
				if res.Deflection == nil || res.Deflection.Status != is456.StatusFail {
					t.Fatalf("deflection = %+v", res.Deflection)
				}
				if res.Deflection.SpanFactor >= 1 {
					t.Errorf("span factor = %v", res.Deflection.SpanFactor)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := scenario()
			tt.modify(&in)
			res, err := Calculate(in)
			if err != nil {
				t.Fatalf("design failure returned as error: %v", err)
			}
			tt.check(t, res)
			if res.Summary.Status != is456.StatusFail {
				t.Errorf("summary status = %s, want FAIL", res.Summary.Status)
			}
		})
	}
}

func TestCalculateDeflectionOK(t *testing.T) {
	in := scenario()
	in.SpanMM = 4000
	res, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	if res.Deflection == nil || res.Deflection.Status != is456.StatusOK {
		t.Fatalf("deflection = %+v", res.Deflection)
	}
	if res.Deflection.AllowableRatio < res.Deflection.ActualRatio {
		t.Error("OK deflection with actual above allowable")
	}
}

func TestCalculateInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Input)
	}{
		{"missing moment", func(in *Input) { in.MuKNM = 0 }},
		{"negative shear", func(in *Input) { in.VuKN = -1 }},
		{"missing width", func(in *Input) { in.WidthMM = 0 }},
		{"missing depth", func(in *Input) { in.DepthMM = 0 }},
		{"missing cover", func(in *Input) { in.CoverMM = 0 }},
		{"unknown concrete", func(in *Input) { in.Fck = 27 }},
		{"unknown steel", func(in *Input) { in.Fy = 600 }},
		{"unknown support", func(in *Input) { in.Support = "propped" }},
		{"depth eaten by cover", func(in *Input) { in.DepthMM = 40 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := scenario()
			tt.modify(&in)
			_, err := Calculate(in)
			if !errors.Is(err, is456.ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCalculateProperties(t *testing.T) {
	for _, b := range []float64{230, 300, 400} {
		for _, D := range []float64{400, 500, 600, 750} {
			for _, mu := range []float64{20, 60, 120, 200, 320} {
				for _, vu := range []float64{10, 60, 150, 300} {
					in := Input{MuKNM: mu, VuKN: vu, WidthMM: b, DepthMM: D, CoverMM: 25, Fck: 20, Fy: 415, SpanMM: 5000}
					res, err := Calculate(in)
					if err != nil {
						t.Fatalf("%+v: %v", in, err)
					}
					f := res.Flexure
					if f.Status != is456.StatusFail {
						if mu <= res.Limiting.MuLimKNM {
							if f.DesignType != Singly || f.AstProvidedMM2 < f.AstMinMM2 {
								t.Errorf("%+v: singly invariant broken: %+v", in, f)
							}
						} else if f.DesignType != Doubly || f.AscRequiredMM2 <= 0 {
							t.Errorf("%+v: doubly invariant broken: %+v", in, f)
						}
					}
					for _, o := range append(f.BarOptions, f.CompressionBarOptions...) {
						if o.Spacing < 75 || o.Spacing > 300 || o.Count < 2 || o.Count > 8 {
							t.Errorf("%+v: bar option %+v out of bounds", in, o)
						}
					}
					sh := res.Shear
					switch {
					case sh.TauV > sh.TauCMax:
						if sh.Status != is456.StatusFail {
							t.Errorf("%+v: τv above τc,max but status %s", in, sh.Status)
						}
					case sh.TauV <= sh.TauC:
						if sh.Status != is456.StatusOK {
							t.Errorf("%+v: τv within τc but status %s", in, sh.Status)
						}
					default:
						if sh.Status != is456.StatusDesign && sh.Status != is456.StatusFail {
							t.Errorf("%+v: designed shear status %s", in, sh.Status)
						}
					}
					for _, o := range sh.StirrupOptions {
						if o.SpacingMM > sh.MaxSpacingMM {
							t.Errorf("%+v: stirrup %+v above max spacing", in, o)
						}
						if sh.Status == is456.StatusDesign && o.SpacingMM < 75 {
							t.Errorf("%+v: designed stirrup %+v below 75mm", in, o)
						}
					}
				}
			}
		}
	}
}

func TestCalculateIdempotent(t *testing.T) {
	in := scenario()
	in.SpanMM = 5000
	a, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Calculate(in)
	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	if !bytes.Equal(ja, jb) {
		t.Error("identical inputs gave different output")
	}
}
