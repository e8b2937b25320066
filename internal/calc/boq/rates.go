package boq

import (
	"sort"

	"Nirman/internal/calc/lookup"
)

// Item keys shared by every catalog.
const (
	KeyExcavation            = "excavation"
	KeyPCC                   = "pcc"
	KeyFooting               = "footing"
	KeyRetainingWall         = "retaining_wall"
	KeyBasementWaterproofing = "basement_waterproofing"
	KeyFrame                 = "frame"
	KeyMasonry               = "masonry"
	KeyPlaster               = "plaster"
	KeyFlooring              = "flooring"
	KeyPainting              = "painting"
	KeyOpenings              = "openings"
	KeyElectrical            = "electrical"
	KeyPlumbing              = "plumbing"
	KeyTerraceWaterproofing  = "terrace_waterproofing"
)

// DefaultTaxRate is GST on works contracts.
const DefaultTaxRate = 0.18

// RateItem is one composite rate. QtyPerSqm converts built-up area into the
// item's unit; Consumption and LabourDays are per unit of the item.
type RateItem struct {
	Description string
	Unit        string
	QtyPerSqm   float64
	Rate        float64
	Consumption Materials
	LabourDays  float64
}

// Catalog is a self-contained rate table for one specification grade. The
// item table is read only through Item, so catalogs can be shared.
type Catalog struct {
	Key           string
	Name          string
	TaxRate       float64
	MaterialRates Materials // rupees per unit of each material
	LabourDayRate float64
	items         map[string]RateItem
}

// Item returns the rate item for key. Every catalog carries every key.
func (c Catalog) Item(key string) RateItem {
	return c.items[key]
}

// Composite consumptions, per m³ or m² of finished work.
var (
	pccMix     = Materials{Cement: 3.4, Sand: 0.47, Aggregate: 0.94}
	footingMix = Materials{Cement: 8.0, Steel: 80, Sand: 0.42, Aggregate: 0.84}
	frameMix   = Materials{Cement: 8.0, Steel: 110, Sand: 0.42, Aggregate: 0.84}
	wallMix    = Materials{Cement: 8.0, Steel: 95, Sand: 0.42, Aggregate: 0.84}
	brickwork  = Materials{Cement: 1.25, Sand: 0.30, Bricks: 500}
	plaster12  = Materials{Cement: 0.13, Sand: 0.018}
	membrane   = Materials{Cement: 0.05, Sand: 0.005}
)

var catalogs = lookup.NewEnum(map[string]Catalog{
	"standard": {
		Key:           "standard",
		Name:          "Standard specification",
		TaxRate:       DefaultTaxRate,
		MaterialRates: Materials{Cement: 400, Steel: 68, Sand: 1800, Aggregate: 1600, Bricks: 9, Tiles: 550, Paint: 260},
		LabourDayRate: 750,
		items: map[string]RateItem{
			KeyExcavation:            {"Earthwork in excavation for foundations", "m³", 0.60, 350, Materials{}, 0.25},
			KeyPCC:                   {"PCC 1:4:8 bed below footings", "m³", 0.05, 5500, pccMix, 1.2},
			KeyFooting:               {"RCC M25 isolated footings incl. reinforcement", "m³", 0.12, 9000, footingMix, 2.5},
			KeyRetainingWall:         {"RCC M25 basement retaining wall", "m³", 0, 10500, wallMix, 3.2},
			KeyBasementWaterproofing: {"Basement waterproofing (membrane)", "m²", 0, 900, membrane, 0.08},
			KeyFrame:                 {"RCC M25 frame (columns, beams, slab)", "m³", 0.18, 9500, frameMix, 3.0},
			KeyMasonry:               {"Brick masonry in CM 1:6", "m³", 0.12, 6500, brickwork, 1.8},
			KeyPlaster:               {"12mm cement plaster 1:4", "m²", 3.0, 380, plaster12, 0.08},
			KeyFlooring:              {"Ceramic tile flooring", "m²", 0.90, 1100, Materials{Cement: 0.18, Sand: 0.03, Tiles: 1.05}, 0.10},
			KeyPainting:              {"Acrylic emulsion painting, two coats", "m²", 3.0, 180, Materials{Paint: 0.18}, 0.04},
			KeyOpenings:              {"Doors and windows (flush doors, aluminium windows)", "m²", 0.12, 6500, Materials{Steel: 1.5}, 0.30},
			KeyElectrical:            {"Electrical wiring and fittings", "m²", 1.0, 450, Materials{}, 0.08},
			KeyPlumbing:              {"Plumbing and sanitary", "m²", 1.0, 400, Materials{}, 0.07},
			KeyTerraceWaterproofing:  {"Terrace waterproofing with brickbat coba", "m²", 1.05, 650, Materials{Cement: 0.30, Sand: 0.04, Bricks: 20}, 0.06},
		},
	},
	"premium": {
		Key:           "premium",
		Name:          "Premium specification",
		TaxRate:       DefaultTaxRate,
		MaterialRates: Materials{Cement: 430, Steel: 72, Sand: 2000, Aggregate: 1750, Bricks: 11, Tiles: 1400, Paint: 420},
		LabourDayRate: 900,
		items: map[string]RateItem{
			KeyExcavation:            {"Earthwork in excavation for foundations", "m³", 0.60, 380, Materials{}, 0.25},
			KeyPCC:                   {"PCC 1:3:6 bed below footings", "m³", 0.05, 6200, Materials{Cement: 4.4, Sand: 0.44, Aggregate: 0.88}, 1.2},
			KeyFooting:               {"RCC M30 isolated footings incl. reinforcement", "m³", 0.13, 10500, footingMix.Add(Materials{Cement: 0.6}), 2.6},
			KeyRetainingWall:         {"RCC M30 basement retaining wall", "m³", 0, 12000, wallMix.Add(Materials{Cement: 0.6}), 3.4},
			KeyBasementWaterproofing: {"Basement waterproofing (crystalline + membrane)", "m²", 0, 1400, membrane.Scale(2), 0.10},
			KeyFrame:                 {"RCC M30 frame (columns, beams, slab)", "m³", 0.20, 11000, frameMix.Add(Materials{Cement: 0.6}), 3.2},
			KeyMasonry:               {"AAC/brick masonry in CM 1:5", "m³", 0.12, 7600, brickwork.Add(Materials{Cement: 0.2}), 1.9},
			KeyPlaster:               {"15mm cement plaster 1:4 with POP punning", "m²", 3.0, 520, plaster12.Scale(1.25), 0.10},
			KeyFlooring:              {"Vitrified tile flooring", "m²", 0.90, 2600, Materials{Cement: 0.18, Sand: 0.03, Tiles: 1.08}, 0.12},
			KeyPainting:              {"Premium emulsion with putty, three coats", "m²", 3.0, 320, Materials{Paint: 0.22}, 0.06},
			KeyOpenings:              {"Doors and windows (teak frames, UPVC windows)", "m²", 0.14, 12000, Materials{Steel: 1.0}, 0.40},
			KeyElectrical:            {"Electrical wiring, modular fittings", "m²", 1.0, 750, Materials{}, 0.10},
			KeyPlumbing:              {"Plumbing, CP and sanitary fittings", "m²", 1.0, 800, Materials{}, 0.09},
			KeyTerraceWaterproofing:  {"Terrace waterproofing, APP membrane over coba", "m²", 1.05, 1100, Materials{Cement: 0.30, Sand: 0.04, Bricks: 20}, 0.08},
		},
	},
})

// LookupCatalog returns the catalog for a grade key.
func LookupCatalog(key string) (Catalog, bool) {
	return catalogs.Get(key)
}

// GradeKeys lists the available catalog keys in sorted order.
func GradeKeys() []string {
	keys := catalogs.Keys()
	sort.Strings(keys)
	return keys
}
