// Package boq assembles a priced bill of quantities for a building from its
// footprint and floor count, using thumb-rule consumption factors from a
// grade-specific rate catalog.
package boq

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"Nirman/internal/money"
)

// ErrInvalidInput marks errors caused by the caller's input.
var ErrInvalidInput = errors.New("invalid input")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

const (
	DefaultBasementDepthM = 3.0
	MaxFloors             = 60
)

type Input struct {
	LengthM         float64  `json:"length_m"`
	BreadthM        float64  `json:"breadth_m"`
	Floors          int      `json:"floors"`
	IncludeBasement bool     `json:"include_basement,omitempty"`
	BasementDepthM  float64  `json:"basement_depth_m,omitempty"`
	GradeKey        string   `json:"grade_key"`
	TaxRate         *float64 `json:"tax_rate,omitempty"`
}

// Summary totals a set of items. GST is computed once on the subtotal.
type Summary struct {
	Subtotal   int64   `json:"subtotal"`
	TaxRate    float64 `json:"tax_rate"`
	GST        int64   `json:"gst"`
	GrandTotal int64   `json:"grand_total"`
	TotalItems int     `json:"total_items"`
}

// Sheet is a numbered, summarised group of items.
type Sheet struct {
	Name         string    `json:"name"`
	Items        []Item    `json:"items"`
	Summary      Summary   `json:"summary"`
	MaterialQty  Materials `json:"material_qty"`
	MaterialCost int64     `json:"material_cost"` // MaterialQty at catalog material rates, not added to the subtotal
	TotalLabour  float64   `json:"total_labour"`
}

type Result struct {
	Grade   string `json:"grade"`
	Catalog string `json:"catalog"`
	Sheet
	Notes []string `json:"notes"`
}

// FloorwiseResult carries the foundation sheet followed by one sheet per
// floor, plus a grand summary over all of them.
type FloorwiseResult struct {
	Grade        string    `json:"grade"`
	Catalog      string    `json:"catalog"`
	Sheets       []Sheet   `json:"sheets"`
	Summary      Summary   `json:"summary"`
	MaterialQty  Materials `json:"material_qty"`
	MaterialCost int64     `json:"material_cost"`
	TotalLabour  float64   `json:"total_labour"`
	Notes        []string  `json:"notes"`
}

// Tax is round(subtotal × rate) in whole rupees.
func Tax(subtotal int64, rate float64) int64 {
	return int64(math.Round(float64(subtotal) * rate))
}

func summarize(subtotal int64, count int, rate float64) Summary {
	gst := Tax(subtotal, rate)
	return Summary{
		Subtotal:   subtotal,
		TaxRate:    rate,
		GST:        gst,
		GrandTotal: subtotal + gst,
		TotalItems: count,
	}
}

// Summarize totals items and applies tax once.
func Summarize(items []Item, rate float64) Summary {
	var subtotal int64
	for _, it := range items {
		subtotal += it.Amount
	}
	return summarize(subtotal, len(items), rate)
}

func (e estimate) sheet(name string, items []Item) Sheet {
	items = numbered(items)
	var labour float64
	for _, it := range items {
		labour += it.LabourDays
	}
	qty := Total(items).Rounded()
	return Sheet{
		Name:         name,
		Items:        items,
		Summary:      Summarize(items, e.taxRate),
		MaterialQty:  qty,
		MaterialCost: qty.Cost(e.catalog.MaterialRates),
		TotalLabour:  round2(labour),
	}
}

func (in Input) Validate() error {
	switch {
	case in.LengthM <= 0:
		return invalid("length_m must be positive")
	case in.BreadthM <= 0:
		return invalid("breadth_m must be positive")
	case in.Floors < 1:
		return invalid("floors must be at least 1")
	case in.Floors > MaxFloors:
		return invalid("floors must not exceed %d", MaxFloors)
	case in.BasementDepthM < 0:
		return invalid("basement_depth_m must not be negative")
	case in.GradeKey == "":
		return invalid("grade_key is required (one of %v)", GradeKeys())
	}
	if _, ok := LookupCatalog(in.GradeKey); !ok {
		return invalid("grade_key %q is not one of %v", in.GradeKey, GradeKeys())
	}
	if in.TaxRate != nil && (*in.TaxRate < 0 || *in.TaxRate >= 1) {
		return invalid("tax_rate must be in [0, 1)")
	}
	return nil
}

// estimate is the resolved request shared by both result shapes.
type estimate struct {
	catalog    Catalog
	plot       plot
	basement   float64
	taxRate    float64
	foundation []Item
	floors     [][]Item
}

func prepare(in Input) (estimate, error) {
	if err := in.Validate(); err != nil {
		return estimate{}, err
	}
	c, _ := LookupCatalog(in.GradeKey)
	e := estimate{
		catalog: c,
		plot:    plot{length: in.LengthM, breadth: in.BreadthM},
		taxRate: c.TaxRate,
	}
	if in.TaxRate != nil {
		e.taxRate = *in.TaxRate
	}
	if in.IncludeBasement {
		e.basement = in.BasementDepthM
		if e.basement == 0 {
			e.basement = DefaultBasementDepthM
		}
	}
	e.foundation = foundationItems(c, e.plot, e.basement)
	for f := 0; f < in.Floors; f++ {
		e.floors = append(e.floors, floorItems(c, e.plot, f, in.Floors))
	}
	return e, nil
}

// all lists foundation items followed by every floor in order.
func (e estimate) all() []Item {
	items := append([]Item{}, e.foundation...)
	for _, f := range e.floors {
		items = append(items, f...)
	}
	return items
}

func (e estimate) notes(labourDays float64, materialCost int64) []string {
	notes := []string{
		fmt.Sprintf("%s, built-up area %.2f m² per floor over %d floor(s)", e.catalog.Name, e.plot.area(), len(e.floors)),
		"Quantities use thumb-rule factors per m² of built-up area; verify against drawings before tendering",
		fmt.Sprintf("GST @ %.0f%% applied once on the subtotal", e.taxRate*100),
	}
	if top := len(e.floors) - 1; top > 0 {
		notes = append(notes, fmt.Sprintf("Superstructure rates escalate by floor, ×%.2f on %s", Escalation(top), FloorName(top)))
	}
	if e.basement > 0 {
		notes = append(notes, fmt.Sprintf("Basement of %.2fm depth included with the foundation items", e.basement))
	}
	labour := int64(math.Round(labourDays * e.catalog.LabourDayRate))
	notes = append(notes, fmt.Sprintf("Labour component ≈ %s (%.0f labour-days @ %s/day)",
		money.Rupees(labour), labourDays, money.Rupees(int64(e.catalog.LabourDayRate))))
	notes = append(notes, fmt.Sprintf("Material component ≈ %s at %s material rates", money.Rupees(materialCost), strings.ToLower(e.catalog.Name)))
	return notes
}

// Calculate returns all items in one numbered sheet.
func Calculate(in Input) (Result, error) {
	e, err := prepare(in)
	if err != nil {
		return Result{}, err
	}
	sheet := e.sheet("All floors", e.all())
	return Result{
		Grade:   e.catalog.Key,
		Catalog: e.catalog.Name,
		Sheet:   sheet,
		Notes:   e.notes(sheet.TotalLabour, sheet.MaterialCost),
	}, nil
}

// CalculateFloorwise returns the foundation and each floor as separate
// sheets. The grand summary taxes the combined subtotal, not the sum of
// per-sheet taxes.
func CalculateFloorwise(in Input) (FloorwiseResult, error) {
	e, err := prepare(in)
	if err != nil {
		return FloorwiseResult{}, err
	}
	sheets := []Sheet{e.sheet("Foundation", e.foundation)}
	for f, items := range e.floors {
		sheets = append(sheets, e.sheet(FloorName(f), items))
	}

	var (
		subtotal int64
		count    int
		labour   float64
	)
	for _, s := range sheets {
		subtotal += s.Summary.Subtotal
		count += s.Summary.TotalItems
		labour += s.TotalLabour
	}
	labour = round2(labour)
	qty := Total(e.all()).Rounded()
	cost := qty.Cost(e.catalog.MaterialRates)
	return FloorwiseResult{
		Grade:        e.catalog.Key,
		Catalog:      e.catalog.Name,
		Sheets:       sheets,
		Summary:      summarize(subtotal, count, e.taxRate),
		MaterialQty:  qty,
		MaterialCost: cost,
		TotalLabour:  labour,
		Notes:        e.notes(labour, cost),
	}, nil
}
