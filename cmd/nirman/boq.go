package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"Nirman/internal/calc/boq"
	"Nirman/internal/money"
)

var (
	boqIn        boq.Input
	boqGST       float64
	boqFloorwise bool
)

var boqCmd = &cobra.Command{
	Use:   "boq",
	Short: "Price a bill of quantities for a building",
	Long: `Estimate quantities, materials, labour and cost for a rectangular
building footprint, with GST on the subtotal.

Examples:
  nirman boq -l 12 -w 10 -f 3 --grade standard
  nirman boq -l 12 -w 10 -f 3 --grade premium --basement --floorwise`,
	RunE: runBOQ,
}

func init() {
	rootCmd.AddCommand(boqCmd)

	f := boqCmd.Flags()
	f.Float64VarP(&boqIn.LengthM, "length", "l", 0, "Plot length (m) [required]")
	f.Float64VarP(&boqIn.BreadthM, "breadth", "w", 0, "Plot breadth (m) [required]")
	f.IntVarP(&boqIn.Floors, "floors", "f", 1, "Number of floors")
	f.BoolVar(&boqIn.IncludeBasement, "basement", false, "Include a basement")
	f.Float64Var(&boqIn.BasementDepthM, "basement-depth", boq.DefaultBasementDepthM, "Basement depth (m)")
	f.StringVarP(&boqIn.GradeKey, "grade", "g", "", "Rate catalog: "+strings.Join(boq.GradeKeys(), ", ")+" [required]")
	f.Float64Var(&boqGST, "gst", boq.DefaultTaxRate, "GST rate as a fraction")
	f.BoolVar(&boqFloorwise, "floorwise", false, "Print one sheet per floor")

	boqCmd.MarkFlagRequired("length")
	boqCmd.MarkFlagRequired("breadth")
	boqCmd.MarkFlagRequired("grade")
}

func runBOQ(cmd *cobra.Command, args []string) error {
	in := boqIn
	in.TaxRate = &boqGST
	out := cmd.OutOrStdout()

	if !boqFloorwise {
		res, err := boq.Calculate(in)
		if err != nil {
			return err
		}
		header(out, "BILL OF QUANTITIES - "+strings.ToUpper(res.Catalog))
		printSheet(out, res.Sheet)
		printTotals(out, res.Summary, res.MaterialQty, res.MaterialCost, res.TotalLabour)
		notes(out, res.Notes)
		return nil
	}

	res, err := boq.CalculateFloorwise(in)
	if err != nil {
		return err
	}
	header(out, "FLOORWISE BILL OF QUANTITIES - "+strings.ToUpper(res.Catalog))
	for _, s := range res.Sheets {
		printSheet(out, s)
	}
	printTotals(out, res.Summary, res.MaterialQty, res.MaterialCost, res.TotalLabour)
	notes(out, res.Notes)
	return nil
}

func printSheet(out io.Writer, s boq.Sheet) {
	section(out, strings.ToUpper(s.Name), func(w io.Writer) {
		fmt.Fprintln(w, "  #\tDescription\tQty\tUnit\tRate\tAmount")
		for _, it := range s.Items {
			fmt.Fprintf(w, "  %d\t%s\t%.2f\t%s\t%s\t%s\n",
				it.SrNo, it.Description, it.Quantity, it.Unit, money.FormatINR(it.Rate), money.Rupees(it.Amount))
		}
		fmt.Fprintf(w, "  \tSubtotal\t\t\t\t%s\n", money.Rupees(s.Summary.Subtotal))
	})
}

func printTotals(out io.Writer, sum boq.Summary, m boq.Materials, cost int64, labour float64) {
	section(out, "MATERIALS", func(w io.Writer) {
		fmt.Fprintf(w, "  Cement:\t%.2f bags\n", m.Cement)
		fmt.Fprintf(w, "  Steel:\t%.2f kg\n", m.Steel)
		fmt.Fprintf(w, "  Sand:\t%.2f m³\n", m.Sand)
		fmt.Fprintf(w, "  Aggregate:\t%.2f m³\n", m.Aggregate)
		fmt.Fprintf(w, "  Bricks:\t%.0f nos\n", m.Bricks)
		fmt.Fprintf(w, "  Tiles:\t%.2f m²\n", m.Tiles)
		fmt.Fprintf(w, "  Paint:\t%.2f l\n", m.Paint)
		fmt.Fprintf(w, "  Labour:\t%.2f man-days\n", labour)
		fmt.Fprintf(w, "  Material cost:\t%s\n", money.Rupees(cost))
	})
	section(out, "TOTAL", func(w io.Writer) {
		fmt.Fprintf(w, "  Items:\t%d\n", sum.TotalItems)
		fmt.Fprintf(w, "  Subtotal:\t%s\n", money.Rupees(sum.Subtotal))
		fmt.Fprintf(w, "  GST @ %.0f%%:\t%s\n", sum.TaxRate*100, money.Rupees(sum.GST))
		fmt.Fprintf(w, "  Grand total:\t%s\n", money.Rupees(sum.GrandTotal))
	})
}
