// Package importer designs beams listed in an uploaded spreadsheet.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"Nirman/internal/calc/beam"
	"Nirman/internal/calc/is456"
)

// Columns is the expected header row, in order. span_mm and support may be
// left blank.
var Columns = []string{"mark", "mu_knm", "vu_kn", "width_mm", "depth_mm", "cover_mm", "fck", "fy", "span_mm", "support"}

const requiredColumns = 8

type RowResult struct {
	Row    int          `json:"row"`
	Mark   string       `json:"mark"`
	Result *beam.Result `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

type BeamImportResult struct {
	Sheet  string       `json:"sheet"`
	Count  int          `json:"count"`
	Failed int          `json:"failed"`
	Errors int          `json:"errors"`
	Rows   []RowResult  `json:"rows"`
	Status is456.Status `json:"status"`
}

// ImportBeams reads the first sheet of an xlsx workbook. Row 1 is a header;
// blank rows are skipped. A bad row is reported in place without stopping
// the import.
func ImportBeams(r io.Reader) (BeamImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return BeamImportResult{}, fmt.Errorf("%w: not a readable xlsx workbook", is456.ErrInvalidInput)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return BeamImportResult{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return BeamImportResult{}, is456.Invalid("sheet %q has no data rows", sheet)
	}

	out := BeamImportResult{Sheet: sheet, Rows: []RowResult{}, Status: is456.StatusOK}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		rr := RowResult{Row: i + 1, Mark: cell(row, 0)}
		input, err := parseBeamRow(row)
		if err == nil {
			var res beam.Result
			res, err = beam.Calculate(input)
			if err == nil {
				rr.Result = &res
				out.Count++
				if res.Summary.Status == is456.StatusFail {
					out.Failed++
				}
				out.Status = is456.Worst(out.Status, res.Summary.Status)
			}
		}
		if err != nil {
			rr.Error = err.Error()
			out.Errors++
		}
		out.Rows = append(out.Rows, rr)
	}
	return out, nil
}

func parseBeamRow(row []string) (beam.Input, error) {
	if len(row) < requiredColumns {
		return beam.Input{}, is456.Invalid("expected at least %d columns (%s), got %d",
			requiredColumns, strings.Join(Columns[:requiredColumns], ", "), len(row))
	}
	var vals [requiredColumns - 1]float64
	for i := range vals {
		v, err := toFloat(row[i+1])
		if err != nil {
			return beam.Input{}, is456.Invalid("%s: %q is not a number", Columns[i+1], row[i+1])
		}
		vals[i] = v
	}
	in := beam.Input{
		MuKNM:   vals[0],
		VuKN:    vals[1],
		WidthMM: vals[2],
		DepthMM: vals[3],
		CoverMM: vals[4],
		Fck:     vals[5],
		Fy:      vals[6],
	}
	if s := cell(row, 8); s != "" {
		span, err := toFloat(s)
		if err != nil {
			return beam.Input{}, is456.Invalid("span_mm: %q is not a number", s)
		}
		in.SpanMM = span
	}
	if s := cell(row, 9); s != "" {
		in.Support = is456.Support(strings.ToLower(s))
	}
	return in, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
