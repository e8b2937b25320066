package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"Nirman/internal/calc/beam"
	"Nirman/internal/calc/is456"
)

var beamIn beam.Input

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Design a rectangular RC beam",
	Long: `Design a rectangular beam for flexure, shear and deflection to IS 456.

Examples:
  nirman beam --mu 120 --vu 90 -b 230 -D 450 --span 5000
  nirman beam -m 250 -v 150 -b 300 -D 500 --fck 25 --fy 500 --two-layers`,
	RunE: runBeam,
}

func init() {
	rootCmd.AddCommand(beamCmd)

	f := beamCmd.Flags()
	f.Float64VarP(&beamIn.MuKNM, "mu", "m", 0, "Factored moment Mu (kNm) [required]")
	f.Float64VarP(&beamIn.VuKN, "vu", "v", 0, "Factored shear Vu (kN) [required]")
	f.Float64VarP(&beamIn.WidthMM, "width", "b", 0, "Beam width (mm) [required]")
	f.Float64VarP(&beamIn.DepthMM, "depth", "D", 0, "Overall depth (mm) [required]")
	f.Float64VarP(&beamIn.CoverMM, "cover", "c", 25, "Clear cover (mm)")
	f.Float64Var(&beamIn.SpanMM, "span", 0, "Effective span for the deflection check (mm)")
	f.Float64Var(&beamIn.Fck, "fck", 20, "Concrete grade fck (MPa)")
	f.Float64Var(&beamIn.Fy, "fy", 415, "Steel grade fy (MPa)")
	f.StringVar((*string)(&beamIn.Support), "support", string(is456.SimplySupported), "Support condition: simply-supported, continuous or cantilever")
	f.BoolVar(&beamIn.AllowTwoLayers, "two-layers", false, "Allow tension bars in two layers")

	beamCmd.MarkFlagRequired("mu")
	beamCmd.MarkFlagRequired("vu")
	beamCmd.MarkFlagRequired("width")
	beamCmd.MarkFlagRequired("depth")
}

func runBeam(cmd *cobra.Command, args []string) error {
	res, err := beam.Calculate(beamIn)
	if err != nil {
		return err
	}
	printBeam(cmd.OutOrStdout(), beamIn, res)
	return nil
}

func printBeam(out io.Writer, in beam.Input, res beam.Result) {
	header(out, "RC BEAM DESIGN - IS 456:2000")

	section(out, "INPUT DATA", func(w io.Writer) {
		fmt.Fprintf(w, "  Section (b × D):\t%.0f × %.0f mm\n", in.WidthMM, in.DepthMM)
		fmt.Fprintf(w, "  Effective depth (d):\t%.0f mm\n", res.EffectiveDepthMM)
		fmt.Fprintf(w, "  Grade:\t%s\n", res.Grade)
		fmt.Fprintf(w, "  Mu / Vu:\t%.2f kNm / %.2f kN\n", in.MuKNM, in.VuKN)
	})

	fl := res.Flexure
	section(out, "FLEXURE", func(w io.Writer) {
		fmt.Fprintf(w, "  Mu,lim:\t%.2f kNm\n", res.Limiting.MuLimKNM)
		fmt.Fprintf(w, "  xu,max/d:\t%.3f\n", res.Limiting.XuMaxByD)
		fmt.Fprintf(w, "  Design type:\t%s\n", fl.DesignType)
		fmt.Fprintf(w, "  Ast required:\t%.0f mm²\n", fl.AstRequiredMM2)
		fmt.Fprintf(w, "  Ast provided:\t%.0f mm² (pt %.2f%%)\n", fl.AstProvidedMM2, fl.PtProvided)
		if fl.AscRequiredMM2 > 0 {
			fmt.Fprintf(w, "  Asc required:\t%.0f mm²\n", fl.AscRequiredMM2)
		}
		fmt.Fprintf(w, "  Status:\t%s\n", fl.Status)
		if fl.Message != "" {
			fmt.Fprintf(w, "  Message:\t%s\n", fl.Message)
		}
	})

	sh := res.Shear
	section(out, "SHEAR", func(w io.Writer) {
		fmt.Fprintf(w, "  τv / τc / τc,max:\t%.3f / %.3f / %.3f MPa\n", sh.TauV, sh.TauC, sh.TauCMax)
		fmt.Fprintf(w, "  Max spacing:\t%.0f mm\n", sh.MaxSpacingMM)
		fmt.Fprintf(w, "  Status:\t%s\n", sh.Status)
		if sh.Message != "" {
			fmt.Fprintf(w, "  Message:\t%s\n", sh.Message)
		}
	})

	if d := res.Deflection; d != nil {
		section(out, "DEFLECTION", func(w io.Writer) {
			fmt.Fprintf(w, "  Actual L/d:\t%.2f\n", d.ActualRatio)
			fmt.Fprintf(w, "  Allowable L/d:\t%.2f\n", d.AllowableRatio)
			fmt.Fprintf(w, "  Status:\t%s\n", d.Status)
		})
	}

	s := res.Summary
	section(out, "SUMMARY", func(w io.Writer) {
		fmt.Fprintf(w, "  Tension steel:\t%s\n", s.Tension)
		if s.Compression != "" {
			fmt.Fprintf(w, "  Compression steel:\t%s\n", s.Compression)
		}
		fmt.Fprintf(w, "  Stirrups:\t%s\n", s.Stirrups)
		fmt.Fprintf(w, "  Ld:\t%.0f mm\n", res.DevelopmentLengthMM)
		fmt.Fprintf(w, "  Overall status:\t%s\n", s.Status)
	})
	notes(out, res.Notes)
}
