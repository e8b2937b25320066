package report

import (
	"fmt"

	"Nirman/internal/calc/beam"
	"Nirman/internal/calc/column"
	"Nirman/internal/calc/is456"
	"Nirman/internal/calc/rebar"
)

func barTable(d *doc, opts []rebar.Option) {
	if len(opts) == 0 {
		return
	}
	body := make([][]string, 0, len(opts))
	for i, o := range opts {
		body = append(body, []string{
			fmt.Sprint(i + 1),
			fmt.Sprintf("%d-%.0fφ", o.Count, o.Dia),
			mm2(o.AreaProvided),
			mm(o.Spacing),
		})
	}
	d.table([]float64{15, 60, 50, 55}, []string{"#", "Bars", "Area", "Spacing"}, body)
}

// BeamPDF renders a beam design sheet.
func BeamPDF(meta Meta, in beam.Input, res beam.Result) ([]byte, error) {
	d := newDoc(meta, "RC Beam Design (IS 456)")

	d.section("Input")
	d.rows(
		[2]string{"Factored moment Mu", fmt.Sprintf("%.2f kNm", in.MuKNM)},
		[2]string{"Factored shear Vu", fmt.Sprintf("%.2f kN", in.VuKN)},
		[2]string{"Section b x D", fmt.Sprintf("%.0f x %.0f mm", in.WidthMM, in.DepthMM)},
		[2]string{"Clear cover", mm(in.CoverMM)},
		[2]string{"Grade", res.Grade},
		[2]string{"Effective depth d / d'", fmt.Sprintf("%.1f / %.1f mm", res.EffectiveDepthMM, res.CompressionCoverMM)},
	)

	f := res.Flexure
	d.section(fmt.Sprintf("Flexure (%s reinforced): %s", f.DesignType, f.Status))
	d.rows(
		[2]string{"Mu,lim", fmt.Sprintf("%.2f kNm", res.Limiting.MuLimKNM)},
		[2]string{"xu,max/d", num(res.Limiting.XuMaxByD)},
		[2]string{"Ast required", mm2(f.AstRequiredMM2)},
		[2]string{"Ast min / max", fmt.Sprintf("%.0f / %.0f mm²", f.AstMinMM2, f.AstMaxMM2)},
		[2]string{"Ast provided", fmt.Sprintf("%.0f mm² (pt %.2f%%)", f.AstProvidedMM2, f.PtProvided)},
	)
	if f.DesignType == beam.Doubly {
		d.rows(
			[2]string{"Mu2", fmt.Sprintf("%.2f kNm", f.Mu2KNM)},
			[2]string{"Asc required", mm2(f.AscRequiredMM2)},
		)
	}
	if f.Message != "" {
		d.rows([2]string{"Message", f.Message})
	}
	barTable(d, f.BarOptions)

	s := res.Shear
	d.section("Shear: " + string(s.Status))
	d.rows(
		[2]string{"tau_v / tau_c / tau_c,max", fmt.Sprintf("%.3f / %.3f / %.3f MPa", s.TauV, s.TauC, s.TauCMax)},
		[2]string{"Stirrups", res.Summary.Stirrups},
	)
	if s.Message != "" {
		d.rows([2]string{"Message", s.Message})
	}

	d.section("Serviceability")
	if res.Deflection != nil {
		d.rows([2]string{"Span/depth actual vs allowable", fmt.Sprintf("%.2f vs %.2f (%s)",
			res.Deflection.ActualRatio, res.Deflection.AllowableRatio, res.Deflection.Status)})
	}
	d.rows([2]string{"Development length Ld", mm(res.DevelopmentLengthMM)})

	d.section("Summary: " + string(res.Summary.Status))
	d.rows(
		[2]string{"Tension steel", res.Summary.Tension},
		[2]string{"Compression steel", res.Summary.Compression},
		[2]string{"Stirrups", res.Summary.Stirrups},
	)
	d.notes(res.Notes)
	return d.bytes()
}

// ColumnPDF renders a column design sheet.
func ColumnPDF(meta Meta, in column.Input, res column.Result) ([]byte, error) {
	d := newDoc(meta, "RC Column Design (IS 456)")

	d.section("Input")
	d.rows(
		[2]string{"Factored axial load Pu", fmt.Sprintf("%.1f kN", in.PuKN)},
		[2]string{"Mux / Muy", fmt.Sprintf("%.2f / %.2f kNm", in.MuxKNM, in.MuyKNM)},
		[2]string{"Section b x D", fmt.Sprintf("%.0f x %.0f mm", in.WidthMM, in.DepthMM)},
		[2]string{"Unsupported length", mm(in.LengthMM)},
		[2]string{"Grade", res.Grade},
	)

	d.section("Slenderness: " + string(res.Slenderness.Classification))
	d.rows(
		[2]string{"Effective length major / minor", fmt.Sprintf("%.0f / %.0f mm", res.EffectiveLengths.MajorMM, res.EffectiveLengths.MinorMM)},
		[2]string{"Slenderness major / minor", fmt.Sprintf("%.2f / %.2f", res.Slenderness.MajorRatio, res.Slenderness.MinorRatio)},
		[2]string{"emin major / minor", fmt.Sprintf("%.1f / %.1f mm", res.Eccentricity.MinMajorMM, res.Eccentricity.MinMinorMM)},
		[2]string{"ea major / minor", fmt.Sprintf("%.1f / %.1f mm", res.Eccentricity.AdditionalMajorMM, res.Eccentricity.AdditionalMinorMM)},
	)

	ds := res.Design
	d.section(fmt.Sprintf("Design (%s): %s", ds.Type, ds.Status))
	d.rows(
		[2]string{"Design moments Mux / Muy", fmt.Sprintf("%.2f / %.2f kNm", ds.MuxDesignKNM, ds.MuyDesignKNM)},
		[2]string{"Moment checked", fmt.Sprintf("%.2f kNm", ds.MuDesignKNM)},
	)
	if ds.Status != is456.StatusFail {
		d.rows(
			[2]string{"Steel p / Asc", fmt.Sprintf("%.1f%% / %.0f mm²", ds.PRequired, ds.AscRequiredMM2)},
			[2]string{"Pu,max / Mu,max", fmt.Sprintf("%.1f kN / %.2f kNm", ds.PuMaxKN, ds.MuMaxKNM)},
			[2]string{"Interaction ratio", num(ds.Interaction)},
		)
	}
	if ds.Message != "" {
		d.rows([2]string{"Message", ds.Message})
	}
	barTable(d, ds.BarOptions)

	d.section("Summary")
	d.rows(
		[2]string{"Longitudinal", res.Summary.Longitudinal},
		[2]string{"Ties", res.Summary.Ties},
	)
	d.notes(res.Notes)
	return d.bytes()
}
