package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"Nirman/internal/calc/column"
	"Nirman/internal/calc/is456"
)

var columnIn column.Input

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Design a rectangular RC column",
	Long: `Design a rectangular column for axial load with uniaxial or biaxial
moments, including slenderness and minimum eccentricity.

Example:
  nirman column --pu 1500 --mux 60 -b 300 -D 450 -L 3000`,
	RunE: runColumn,
}

func init() {
	rootCmd.AddCommand(columnCmd)

	f := columnCmd.Flags()
	f.Float64VarP(&columnIn.PuKN, "pu", "p", 0, "Factored axial load Pu (kN) [required]")
	f.Float64Var(&columnIn.MuxKNM, "mux", 0, "Moment about the major axis (kNm)")
	f.Float64Var(&columnIn.MuyKNM, "muy", 0, "Moment about the minor axis (kNm)")
	f.Float64VarP(&columnIn.WidthMM, "width", "b", 0, "Column width (mm) [required]")
	f.Float64VarP(&columnIn.DepthMM, "depth", "D", 0, "Column depth (mm) [required]")
	f.Float64VarP(&columnIn.LengthMM, "length", "L", 0, "Unsupported length (mm) [required]")
	f.Float64VarP(&columnIn.CoverMM, "cover", "c", 40, "Clear cover (mm)")
	f.Float64Var(&columnIn.Fck, "fck", 25, "Concrete grade fck (MPa)")
	f.Float64Var(&columnIn.Fy, "fy", 415, "Steel grade fy (MPa)")
	f.StringVar((*string)(&columnIn.RestraintX), "restraint-x", string(is456.HingedHinged), "End restraint in the major plane")
	f.StringVar((*string)(&columnIn.RestraintY), "restraint-y", string(is456.HingedHinged), "End restraint in the minor plane")

	columnCmd.MarkFlagRequired("pu")
	columnCmd.MarkFlagRequired("width")
	columnCmd.MarkFlagRequired("depth")
	columnCmd.MarkFlagRequired("length")
}

func runColumn(cmd *cobra.Command, args []string) error {
	res, err := column.Calculate(columnIn)
	if err != nil {
		return err
	}
	printColumn(cmd.OutOrStdout(), columnIn, res)
	return nil
}

func printColumn(out io.Writer, in column.Input, res column.Result) {
	header(out, "RC COLUMN DESIGN - IS 456:2000")

	section(out, "INPUT DATA", func(w io.Writer) {
		fmt.Fprintf(w, "  Section (b × D):\t%.0f × %.0f mm\n", in.WidthMM, in.DepthMM)
		fmt.Fprintf(w, "  Grade:\t%s\n", res.Grade)
		fmt.Fprintf(w, "  Pu:\t%.2f kN\n", in.PuKN)
		fmt.Fprintf(w, "  Mux / Muy:\t%.2f / %.2f kNm\n", in.MuxKNM, in.MuyKNM)
	})

	section(out, "SLENDERNESS", func(w io.Writer) {
		el := res.EffectiveLengths
		fmt.Fprintf(w, "  Lex / Ley:\t%.0f / %.0f mm\n", el.MajorMM, el.MinorMM)
		fmt.Fprintf(w, "  λx / λy:\t%.2f / %.2f\n", res.Slenderness.MajorRatio, res.Slenderness.MinorRatio)
		fmt.Fprintf(w, "  Classification:\t%s\n", res.Slenderness.Classification)
		e := res.Eccentricity
		fmt.Fprintf(w, "  emin,x / emin,y:\t%.2f / %.2f mm\n", e.MinMajorMM, e.MinMinorMM)
		if e.AdditionalMajorMM > 0 || e.AdditionalMinorMM > 0 {
			fmt.Fprintf(w, "  ea,x / ea,y:\t%.2f / %.2f mm\n", e.AdditionalMajorMM, e.AdditionalMinorMM)
		}
	})

	d := res.Design
	section(out, "DESIGN", func(w io.Writer) {
		fmt.Fprintf(w, "  Type:\t%s\n", d.Type)
		fmt.Fprintf(w, "  Mu (design):\t%.2f kNm\n", d.MuDesignKNM)
		if d.PRequired > 0 {
			fmt.Fprintf(w, "  p required:\t%.1f%%\n", d.PRequired)
			fmt.Fprintf(w, "  Asc required:\t%.0f mm²\n", d.AscRequiredMM2)
		}
		fmt.Fprintf(w, "  Status:\t%s\n", d.Status)
		if d.Message != "" {
			fmt.Fprintf(w, "  Message:\t%s\n", d.Message)
		}
	})

	s := res.Summary
	section(out, "SUMMARY", func(w io.Writer) {
		fmt.Fprintf(w, "  Longitudinal:\t%s\n", s.Longitudinal)
		fmt.Fprintf(w, "  Ties:\t%s\n", s.Ties)
		fmt.Fprintf(w, "  Overall status:\t%s\n", s.Status)
	})
	notes(out, res.Notes)
}
