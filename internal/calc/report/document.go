// Package report renders design and estimate results as A4 PDF calculation
// sheets.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
)

// Meta heads every report.
type Meta struct {
	Project   string `json:"project"`
	Author    string `json:"author"`
	Title     string `json:"title"`
	Notes     string `json:"notes"`
	Reference string `json:"-"`
	Date      string `json:"-"`
}

// The core PDF fonts are cp1252; symbols outside it are spelled out before
// translation.
var plain = strings.NewReplacer(
	"φ", "mm",
	"₹", "Rs. ",
	"√", "sqrt",
	"≈", "~",
	"×", "x",
	"·", ".",
	"≤", "<=",
	"–", "-",
)

// doc wraps a gofpdf document with the layout shared by every report.
type doc struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (d *doc) text(s string) string {
	return d.tr(plain.Replace(s))
}

func newDoc(meta Meta, fallbackTitle string) *doc {
	if meta.Title == "" {
		meta.Title = fallbackTitle
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AliasNbPages("")
	d := &doc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Ref %s    Page %d/{nb}", meta.Reference, pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, d.text(meta.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	for _, kv := range [][2]string{
		{"Project", meta.Project},
		{"Author", meta.Author},
		{"Date", meta.Date},
		{"Reference", meta.Reference},
	} {
		if kv[1] == "" {
			continue
		}
		pdf.Cell(0, 5, fmt.Sprintf("%s: %s", kv[0], d.text(kv[1])))
		pdf.Ln(5)
	}
	if meta.Notes != "" {
		pdf.Ln(2)
		pdf.MultiCell(0, 5, d.text(meta.Notes), "", "L", false)
	}
	pdf.Ln(4)
	return d
}

func (d *doc) section(title string) {
	d.pdf.Ln(3)
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.SetFillColor(230, 230, 230)
	d.pdf.CellFormat(0, 7, d.text(title), "", 1, "L", true, 0, "")
	d.pdf.SetFont("Helvetica", "", 10)
}

// rows prints label/value pairs in two bordered columns.
func (d *doc) rows(pairs ...[2]string) {
	for _, p := range pairs {
		d.pdf.CellFormat(70, 6, d.text(p[0]), "1", 0, "L", false, 0, "")
		d.pdf.CellFormat(0, 6, d.text(p[1]), "1", 1, "L", false, 0, "")
	}
}

// table prints a header row and body rows using the given column widths.
func (d *doc) table(widths []float64, header []string, body [][]string) {
	d.pdf.SetFont("Helvetica", "B", 9)
	for i, h := range header {
		d.pdf.CellFormat(widths[i], 6, d.text(h), "1", 0, "C", false, 0, "")
	}
	d.pdf.Ln(-1)
	d.pdf.SetFont("Helvetica", "", 9)
	for _, r := range body {
		for i, c := range r {
			align := "R"
			if i == 1 {
				align = "L"
			}
			d.pdf.CellFormat(widths[i], 6, d.text(c), "1", 0, align, false, 0, "")
		}
		d.pdf.Ln(-1)
	}
	d.pdf.SetFont("Helvetica", "", 10)
}

func (d *doc) notes(lines []string) {
	if len(lines) == 0 {
		return
	}
	d.section("Notes")
	for _, n := range lines {
		d.pdf.MultiCell(0, 5, "- "+d.text(n), "", "L", false)
	}
}

func (d *doc) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func mm(v float64) string  { return fmt.Sprintf("%.0f mm", v) }
func mm2(v float64) string { return fmt.Sprintf("%.0f mm²", v) }
func num(v float64) string { return fmt.Sprintf("%.2f", v) }
