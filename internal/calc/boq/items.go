package boq

import (
	"fmt"
	"math"
)

// RetainingWallThicknessM is the assumed basement wall thickness.
const RetainingWallThicknessM = 0.23

// Item is one priced BOQ line. Rate already includes floor escalation.
type Item struct {
	SrNo        int     `json:"sr_no"`
	Key         string  `json:"key"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      int64   `json:"amount"`
	LabourDays  float64 `json:"labour_days"`

	materials Materials
}

// Materials returns the item's material contribution.
func (it Item) Materials() Materials {
	return it.materials
}

func line(c Catalog, key string, qty, multiplier float64) Item {
	r := c.Item(key)
	qty = round2(qty)
	rate := round2(r.Rate * multiplier)
	return Item{
		Key:         key,
		Description: r.Description,
		Unit:        r.Unit,
		Quantity:    qty,
		Rate:        rate,
		Amount:      int64(math.Round(qty * rate)),
		LabourDays:  round2(qty * r.LabourDays),
		materials:   r.Consumption.Scale(qty),
	}
}

// perArea is an item whose quantity follows the catalog's per-m² factor.
func perArea(c Catalog, key string, area, multiplier float64) Item {
	return line(c, key, area*c.Item(key).QtyPerSqm, multiplier)
}

// plot is the building footprint in metres.
type plot struct {
	length, breadth float64
}

func (p plot) area() float64      { return p.length * p.breadth }
func (p plot) perimeter() float64 { return 2 * (p.length + p.breadth) }

// foundationItems are priced at ground-level rates regardless of floor count.
func foundationItems(c Catalog, p plot, basementDepth float64) []Item {
	items := []Item{
		perArea(c, KeyExcavation, p.area(), 1),
		perArea(c, KeyPCC, p.area(), 1),
		perArea(c, KeyFooting, p.area(), 1),
	}
	if basementDepth <= 0 {
		return items
	}
	dig := line(c, KeyExcavation, p.area()*basementDepth, 1)
	dig.Description = fmt.Sprintf("Basement excavation to %.2fm depth", basementDepth)
	return append(items,
		dig,
		line(c, KeyRetainingWall, p.perimeter()*basementDepth*RetainingWallThicknessM, 1),
		line(c, KeyBasementWaterproofing, p.area()+p.perimeter()*basementDepth, 1),
	)
}

// floorSequence is the fixed order of superstructure items on every floor.
var floorSequence = []string{
	KeyFrame,
	KeyMasonry,
	KeyPlaster,
	KeyFlooring,
	KeyPainting,
	KeyOpenings,
	KeyElectrical,
	KeyPlumbing,
}

// floorItems builds one floor (0 = ground). Terrace waterproofing is added
// to the top floor only.
func floorItems(c Catalog, p plot, floor, floors int) []Item {
	m := Escalation(floor)
	items := make([]Item, 0, len(floorSequence)+1)
	for _, key := range floorSequence {
		items = append(items, perArea(c, key, p.area(), m))
	}
	if floor == floors-1 {
		items = append(items, perArea(c, KeyTerraceWaterproofing, p.area(), m))
	}
	return items
}

// FloorName labels floor index i.
func FloorName(i int) string {
	if i == 0 {
		return "Ground floor"
	}
	return fmt.Sprintf("Floor %d", i)
}

// numbered returns a copy of items with serial numbers from 1.
func numbered(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		it.SrNo = i + 1
		out[i] = it
	}
	return out
}
