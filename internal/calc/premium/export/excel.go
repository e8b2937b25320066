// Package export renders BOQ estimates as Excel workbooks.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"Nirman/internal/calc/boq"
	"Nirman/internal/money"
)

// SummarySheet is the name of the first sheet in every workbook.
const SummarySheet = "Summary"

// Meta heads every sheet.
type Meta struct {
	Title     string
	Reference string
	Date      string
}

type styles struct {
	title, subtitle, header, item, label, value int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}}},
		{&s.subtitle, &excelize.Style{Font: &excelize.Font{Size: 11}}},
		{&s.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorders(),
		}},
		{&s.item, &excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()}},
		{&s.label, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}, Alignment: &excelize.Alignment{Horizontal: "right"}}},
		{&s.value, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return styles{}, fmt.Errorf("create style: %w", err)
		}
		*d.dst = id
	}
	return s, nil
}

var itemHeaders = []string{"#", "Description", "Unit", "Qty", "Rate", "Amount", "Labour days"}

// BOQWorkbook writes a summary sheet followed by one sheet per BOQ sheet
// (foundation, then each floor).
func BOQWorkbook(res boq.FloorwiseResult, meta Meta) ([]byte, error) {
	if meta.Title == "" {
		meta.Title = "Bill of Quantities"
	}
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	if err := writeSummary(f, st, res, meta); err != nil {
		return nil, err
	}
	for _, s := range res.Sheets {
		name := sheetName(s.Name)
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("new sheet %q: %w", name, err)
		}
		if err := writeItems(f, st, name, s, meta); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// writeHeading fills rows 1-3 and returns the next free row.
func writeHeading(f *excelize.File, st styles, sheet, title string, meta Meta, lastCol string) int {
	f.MergeCell(sheet, "A1", lastCol+"1")
	f.SetCellValue(sheet, "A1", sanitizeExcelCell(title))
	f.SetCellStyle(sheet, "A1", lastCol+"1", st.title)
	if meta.Reference != "" {
		f.SetCellValue(sheet, "A2", "Ref: "+meta.Reference)
		f.SetCellStyle(sheet, "A2", "A2", st.subtitle)
	}
	if meta.Date != "" {
		f.SetCellValue(sheet, "A3", "Date: "+meta.Date)
		f.SetCellStyle(sheet, "A3", "A3", st.subtitle)
	}
	return 5
}

func writeItems(f *excelize.File, st styles, sheet string, s boq.Sheet, meta Meta) error {
	widths := []float64{6, 48, 8, 12, 12, 16, 12}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(itemHeaders))
	row := writeHeading(f, st, sheet, meta.Title+" - "+s.Name, meta, lastCol)

	for i, h := range itemHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), st.header)
	row++

	for _, it := range s.Items {
		vals := []any{it.SrNo, sanitizeExcelCell(it.Description), sanitizeExcelCell(it.Unit), it.Quantity, it.Rate, it.Amount, it.LabourDays}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, row, err)
		}
		f.SetCellStyle(sheet, cell, fmt.Sprintf("%s%d", lastCol, row), st.item)
		row++
	}
	row++
	writeTotals(f, st, sheet, row, s.Summary)
	return nil
}

// writeTotals puts subtotal, GST and grand total in columns E:F from row.
func writeTotals(f *excelize.File, st styles, sheet string, row int, sum boq.Summary) int {
	lines := []struct {
		label string
		value int64
	}{
		{"Subtotal:", sum.Subtotal},
		{fmt.Sprintf("GST @ %.0f%%:", sum.TaxRate*100), sum.GST},
		{"Grand total:", sum.GrandTotal},
	}
	for _, l := range lines {
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), l.label)
		f.SetCellStyle(sheet, fmt.Sprintf("E%d", row), fmt.Sprintf("E%d", row), st.label)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), money.Rupees(l.value))
		f.SetCellStyle(sheet, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), st.value)
		row++
	}
	return row
}

func writeSummary(f *excelize.File, st styles, res boq.FloorwiseResult, meta Meta) error {
	for col, w := range map[string]float64{"A": 6, "B": 32, "C": 10, "D": 14, "E": 16, "F": 18} {
		if err := f.SetColWidth(SummarySheet, col, col, w); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}
	row := writeHeading(f, st, SummarySheet, meta.Title+" - "+res.Catalog, meta, "F")

	for i, h := range []string{"#", "Section", "Items", "Labour days", "Subtotal"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(SummarySheet, cell, h)
	}
	f.SetCellStyle(SummarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), st.header)
	row++
	for i, s := range res.Sheets {
		vals := []any{i + 1, s.Name, s.Summary.TotalItems, s.TotalLabour, s.Summary.Subtotal}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(SummarySheet, cell, &vals); err != nil {
			return fmt.Errorf("write summary row %d: %w", row, err)
		}
		f.SetCellStyle(SummarySheet, cell, fmt.Sprintf("E%d", row), st.item)
		row++
	}
	row++
	row = writeTotals(f, st, SummarySheet, row, res.Summary)
	row++

	f.SetCellValue(SummarySheet, fmt.Sprintf("B%d", row), "Material")
	f.SetCellValue(SummarySheet, fmt.Sprintf("C%d", row), "Quantity")
	f.SetCellValue(SummarySheet, fmt.Sprintf("D%d", row), "Unit")
	f.SetCellStyle(SummarySheet, fmt.Sprintf("B%d", row), fmt.Sprintf("D%d", row), st.header)
	row++
	m := res.MaterialQty
	for _, line := range []struct {
		name string
		qty  float64
		unit string
	}{
		{"Cement", m.Cement, "bags"},
		{"Steel", m.Steel, "kg"},
		{"Sand", m.Sand, "m³"},
		{"Aggregate", m.Aggregate, "m³"},
		{"Bricks", m.Bricks, "nos"},
		{"Tiles", m.Tiles, "m²"},
		{"Paint", m.Paint, "litre"},
		{"Labour", res.TotalLabour, "days"},
	} {
		vals := []any{line.name, line.qty, line.unit}
		cell := fmt.Sprintf("B%d", row)
		if err := f.SetSheetRow(SummarySheet, cell, &vals); err != nil {
			return fmt.Errorf("write material row %d: %w", row, err)
		}
		f.SetCellStyle(SummarySheet, cell, fmt.Sprintf("D%d", row), st.item)
		row++
	}
	return nil
}

// sheetName trims to Excel's 31-character limit and drops characters Excel
// forbids in sheet names.
func sheetName(s string) string {
	clean := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			continue
		}
		clean = append(clean, r)
	}
	if len(clean) > 31 {
		clean = clean[:31]
	}
	if len(clean) == 0 {
		return "BOQ"
	}
	return string(clean)
}

// sanitizeExcelCell prefixes values Excel would treat as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
