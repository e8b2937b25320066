package report

import (
	"fmt"

	"Nirman/internal/calc/boq"
	"Nirman/internal/money"
)

// BOQPDF renders the floor-wise estimate: every sheet's items followed by
// the grand summary and material totals.
func BOQPDF(meta Meta, res boq.FloorwiseResult) ([]byte, error) {
	d := newDoc(meta, "Bill of Quantities - "+res.Catalog)
	widths := []float64{10, 78, 14, 22, 22, 34}
	header := []string{"#", "Description", "Unit", "Qty", "Rate", "Amount"}

	for _, s := range res.Sheets {
		d.section(s.Name)
		body := make([][]string, 0, len(s.Items))
		for _, it := range s.Items {
			body = append(body, []string{
				fmt.Sprint(it.SrNo),
				it.Description,
				it.Unit,
				num(it.Quantity),
				num(it.Rate),
				money.Rupees(it.Amount),
			})
		}
		d.table(widths, header, body)
		d.rows([2]string{"Subtotal", money.Rupees(s.Summary.Subtotal)})
	}

	sum := res.Summary
	d.section("Summary")
	d.rows(
		[2]string{"Items", fmt.Sprint(sum.TotalItems)},
		[2]string{"Subtotal", money.Rupees(sum.Subtotal)},
		[2]string{fmt.Sprintf("GST @ %.0f%%", sum.TaxRate*100), money.Rupees(sum.GST)},
		[2]string{"Grand total", money.Rupees(sum.GrandTotal)},
	)

	m := res.MaterialQty
	d.section("Materials")
	d.rows(
		[2]string{"Cement", fmt.Sprintf("%.2f bags", m.Cement)},
		[2]string{"Steel", fmt.Sprintf("%.2f kg", m.Steel)},
		[2]string{"Sand", fmt.Sprintf("%.2f m³", m.Sand)},
		[2]string{"Aggregate", fmt.Sprintf("%.2f m³", m.Aggregate)},
		[2]string{"Bricks", fmt.Sprintf("%.0f nos", m.Bricks)},
		[2]string{"Tiles", fmt.Sprintf("%.2f m²", m.Tiles)},
		[2]string{"Paint", fmt.Sprintf("%.2f litre", m.Paint)},
		[2]string{"Labour", fmt.Sprintf("%.2f days", res.TotalLabour)},
		[2]string{"Material cost", money.Rupees(res.MaterialCost)},
	)
	d.notes(res.Notes)
	return d.bytes()
}
