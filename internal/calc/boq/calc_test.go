package boq

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
)

func house() Input {
	return Input{LengthM: 10, BreadthM: 12, Floors: 2, GradeKey: "standard"}
}

func TestTaxScenario(t *testing.T) {
	s := summarize(1_000_000, 1, 0.18)
	if s.GST != 180_000 {
		t.Errorf("GST = %d, want 180000", s.GST)
	}
	if s.GrandTotal != 1_180_000 {
		t.Errorf("grand total = %d, want 1180000", s.GrandTotal)
	}
}

func TestCalculateItems(t *testing.T) {
	res, err := Calculate(house())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	// 3 foundation + 8 per floor + terrace on the top floor.
	if got, want := len(res.Items), 3+8+9; got != want {
		t.Fatalf("items = %d, want %d", got, want)
	}
	if res.Summary.TotalItems != len(res.Items) {
		t.Errorf("total items = %d", res.Summary.TotalItems)
	}

	terrace := 0
	for i, it := range res.Items {
		if it.SrNo != i+1 {
			t.Errorf("item %d has sr_no %d", i, it.SrNo)
		}
		if it.Amount != int64(math.Round(it.Quantity*it.Rate)) {
			t.Errorf("%s: amount %d != round(%.2f × %.2f)", it.Key, it.Amount, it.Quantity, it.Rate)
		}
		if it.Key == KeyTerraceWaterproofing {
			terrace++
			if i != len(res.Items)-1 {
				t.Errorf("terrace waterproofing at position %d, want last", i)
			}
		}
	}
	if terrace != 1 {
		t.Errorf("terrace waterproofing appears %d times", terrace)
	}

	// excavation: 120 m² × 0.60 = 72 m³ @ 350
	if ex := res.Items[0]; ex.Key != KeyExcavation || ex.Quantity != 72 || ex.Amount != 25200 {
		t.Errorf("excavation = %+v", ex)
	}
	// first-floor frame: 21.6 m³ @ 9500 × 1.02
	frame := res.Items[3+8]
	if frame.Key != KeyFrame || frame.Rate != 9690 || frame.Amount != 209304 {
		t.Errorf("floor 1 frame = %+v", frame)
	}
	if res.Items[3].Rate != 9500 {
		t.Errorf("ground frame rate = %.2f, want unescalated 9500", res.Items[3].Rate)
	}
}

func TestSummaryInvariant(t *testing.T) {
	for _, grade := range GradeKeys() {
		for floors := 1; floors <= 8; floors++ {
			for _, basement := range []bool{false, true} {
				in := Input{LengthM: 9.5, BreadthM: 13.7, Floors: floors, IncludeBasement: basement, GradeKey: grade}
				res, err := Calculate(in)
				if err != nil {
					t.Fatal(err)
				}
				s := res.Summary
				var sum int64
				for _, it := range res.Items {
					sum += it.Amount
				}
				if s.Subtotal != sum {
					t.Errorf("%s/%d: subtotal %d != Σ amounts %d", grade, floors, s.Subtotal, sum)
				}
				if s.GrandTotal != s.Subtotal+Tax(s.Subtotal, s.TaxRate) {
					t.Errorf("%s/%d: grand total %d != %d + tax", grade, floors, s.GrandTotal, s.Subtotal)
				}
			}
		}
	}
}

func TestCalculateFloorwise(t *testing.T) {
	in := house()
	in.Floors = 3
	in.IncludeBasement = true
	fw, err := CalculateFloorwise(in)
	if err != nil {
		t.Fatal(err)
	}
	flat, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}

	if len(fw.Sheets) != 4 {
		t.Fatalf("sheets = %d, want foundation + 3 floors", len(fw.Sheets))
	}
	names := []string{"Foundation", "Ground floor", "Floor 1", "Floor 2"}
	var subtotal int64
	for i, s := range fw.Sheets {
		if s.Name != names[i] {
			t.Errorf("sheet %d = %q, want %q", i, s.Name, names[i])
		}
		if s.Items[0].SrNo != 1 {
			t.Errorf("sheet %q numbering starts at %d", s.Name, s.Items[0].SrNo)
		}
		subtotal += s.Summary.Subtotal
	}
	if len(fw.Sheets[0].Items) != 6 {
		t.Errorf("foundation with basement has %d items, want 6", len(fw.Sheets[0].Items))
	}
	if fw.Summary.Subtotal != subtotal || subtotal != flat.Summary.Subtotal {
		t.Errorf("subtotals disagree: grand %d, sheets %d, flat %d", fw.Summary.Subtotal, subtotal, flat.Summary.Subtotal)
	}
	if fw.Summary.GST != Tax(subtotal, DefaultTaxRate) {
		t.Errorf("grand GST = %d, want tax on combined subtotal", fw.Summary.GST)
	}
	if fw.MaterialQty != flat.MaterialQty {
		t.Errorf("material totals disagree: %+v vs %+v", fw.MaterialQty, flat.MaterialQty)
	}
	if fw.MaterialCost != flat.MaterialCost {
		t.Errorf("material cost %d vs flat %d", fw.MaterialCost, flat.MaterialCost)
	}
	if fw.Summary.TotalItems != flat.Summary.TotalItems {
		t.Errorf("item counts disagree: %d vs %d", fw.Summary.TotalItems, flat.Summary.TotalItems)
	}
}

func TestBasementDefaults(t *testing.T) {
	in := house()
	in.IncludeBasement = true
	res, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	// 120 m² × 3.0 m
	if dig := res.Items[3]; dig.Key != KeyExcavation || dig.Quantity != 360 {
		t.Errorf("basement excavation = %+v", dig)
	}
	// 44 m perimeter × 3.0 × 0.23
	if wall := res.Items[4]; wall.Key != KeyRetainingWall || wall.Quantity != 30.36 {
		t.Errorf("retaining wall = %+v", wall)
	}
	if wp := res.Items[5]; wp.Quantity != 252 {
		t.Errorf("basement waterproofing = %+v", wp)
	}
}

func TestPremiumCostsMore(t *testing.T) {
	std, err := Calculate(house())
	if err != nil {
		t.Fatal(err)
	}
	in := house()
	in.GradeKey = "premium"
	prem, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	if prem.Summary.Subtotal <= std.Summary.Subtotal {
		t.Errorf("premium %d not above standard %d", prem.Summary.Subtotal, std.Summary.Subtotal)
	}
	if prem.MaterialCost <= std.MaterialCost {
		t.Errorf("premium material cost %d not above standard %d", prem.MaterialCost, std.MaterialCost)
	}
}

func TestMaterialsCost(t *testing.T) {
	m := Materials{Cement: 10, Steel: 100, Bricks: 500}
	rates := Materials{Cement: 400, Steel: 68, Sand: 1800, Bricks: 9}
	if got := m.Cost(rates); got != 4000+6800+4500 {
		t.Errorf("Cost() = %d, want 15300", got)
	}
	if got := (Materials{}).Cost(rates); got != 0 {
		t.Errorf("empty Cost() = %d", got)
	}
}

func TestMaterialCostUsesCatalogRates(t *testing.T) {
	for _, key := range GradeKeys() {
		t.Run(key, func(t *testing.T) {
			in := house()
			in.GradeKey = key
			res, err := Calculate(in)
			if err != nil {
				t.Fatal(err)
			}
			c, _ := LookupCatalog(key)
			want := res.MaterialQty.Cost(c.MaterialRates)
			if want <= 0 || res.MaterialCost != want {
				t.Errorf("material cost = %d, want %d", res.MaterialCost, want)
			}
			if res.MaterialCost >= res.Summary.Subtotal {
				t.Errorf("material cost %d not below subtotal %d", res.MaterialCost, res.Summary.Subtotal)
			}
			var noted bool
			for _, n := range res.Notes {
				noted = noted || strings.HasPrefix(n, "Material component")
			}
			if !noted {
				t.Errorf("notes missing material component: %v", res.Notes)
			}
		})
	}
}

func TestLookupCatalogIsACopy(t *testing.T) {
	c, ok := LookupCatalog("standard")
	if !ok {
		t.Fatal("standard catalog missing")
	}
	want := c.Item(KeyFrame).Rate
	c.MaterialRates.Cement = 0
	c.TaxRate = 0.5

	again, _ := LookupCatalog("standard")
	if again.MaterialRates.Cement != 400 || again.TaxRate != DefaultTaxRate {
		t.Errorf("catalog changed through a returned copy: %+v", again)
	}
	if again.Item(KeyFrame).Rate != want {
		t.Errorf("frame rate = %.2f, want %.2f", again.Item(KeyFrame).Rate, want)
	}
}

func TestTaxOverride(t *testing.T) {
	in := house()
	zero := 0.0
	in.TaxRate = &zero
	res, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	if res.Summary.GST != 0 || res.Summary.GrandTotal != res.Summary.Subtotal {
		t.Errorf("summary = %+v", res.Summary)
	}
}

func TestMaterialsOrderIndependent(t *testing.T) {
	res, err := Calculate(house())
	if err != nil {
		t.Fatal(err)
	}
	reversed := make([]Item, len(res.Items))
	for i, it := range res.Items {
		reversed[len(res.Items)-1-i] = it
	}
	a, b := Total(res.Items), Total(reversed)
	pairs := [][2]float64{
		{a.Cement, b.Cement}, {a.Steel, b.Steel}, {a.Sand, b.Sand}, {a.Aggregate, b.Aggregate},
		{a.Bricks, b.Bricks}, {a.Tiles, b.Tiles}, {a.Paint, b.Paint},
	}
	for _, p := range pairs {
		if math.Abs(p[0]-p[1]) > 1e-6 {
			t.Errorf("fold depends on order: %v vs %v", p[0], p[1])
		}
	}
	if a.Rounded() != res.MaterialQty {
		t.Errorf("material qty %+v != rounded total %+v", res.MaterialQty, a.Rounded())
	}
	if res.MaterialQty.Bricks == 0 || res.MaterialQty.Steel == 0 || res.MaterialQty.Paint == 0 {
		t.Errorf("expected bricks, steel and paint: %+v", res.MaterialQty)
	}
}

func TestEscalation(t *testing.T) {
	if !floorEscalation.NonDecreasing() {
		t.Fatal("escalation table must not decrease")
	}
	tests := map[int]float64{-1: 1, 0: 1, 1: 1.02, 3: 1.06, 5: 1.10, 12: 1.10}
	for floor, want := range tests {
		if got := Escalation(floor); got != want {
			t.Errorf("Escalation(%d) = %v, want %v", floor, got, want)
		}
	}
}

func TestCalculateInvalidInput(t *testing.T) {
	bad := -0.1
	tests := []struct {
		name   string
		modify func(*Input)
		want   string
	}{
		{"zero length", func(in *Input) { in.LengthM = 0 }, "length_m"},
		{"negative breadth", func(in *Input) { in.BreadthM = -3 }, "breadth_m"},
		{"no floors", func(in *Input) { in.Floors = 0 }, "floors"},
		{"too many floors", func(in *Input) { in.Floors = MaxFloors + 1 }, "floors"},
		{"missing grade", func(in *Input) { in.GradeKey = "" }, "grade_key"},
		{"unknown grade", func(in *Input) { in.GradeKey = "luxury" }, "grade_key"},
		{"negative basement", func(in *Input) { in.BasementDepthM = -1 }, "basement_depth_m"},
		{"negative tax", func(in *Input) { in.TaxRate = &bad }, "tax_rate"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := house()
			tc.modify(&in)
			_, err := Calculate(in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("error = %v, want ErrInvalidInput", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %s", err, tc.want)
			}
			if _, err := CalculateFloorwise(in); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("floorwise error = %v", err)
			}
		})
	}
}

func TestCalculateIdempotent(t *testing.T) {
	a, err := CalculateFloorwise(house())
	if err != nil {
		t.Fatal(err)
	}
	b, _ := CalculateFloorwise(house())
	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	if !bytes.Equal(ja, jb) {
		t.Error("repeated CalculateFloorwise returned different results")
	}
}
