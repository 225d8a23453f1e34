package village

import (
	"strings"

	"github.com/google/uuid"
)

// Category selects which slot of a VillageInfo a write targets.
type Category string

const (
	CategoryPopulation      Category = "population"
	CategoryEducation       Category = "education"
	CategoryHealth          Category = "health"
	CategoryWaterSanitation Category = "water_sanitation"
	CategoryConnectivity    Category = "connectivity"
	CategoryLandUse         Category = "land_use"
	CategoryLivestock       Category = "livestock"
	CategoryAmenities       Category = "amenities"
)

// CategoryDef ties a category to its record type and to the slot on VillageInfo that owns it.
type CategoryDef struct {
	Category Category
	// Column is the slot foreign key column on village_info.
	Column string
	// Relation is the VillageInfo field name used for eager loading.
	Relation string
	New      func() Record
	SlotID   func(v *VillageInfo) *uuid.UUID
}

var categoryOrder = []Category{
	CategoryPopulation,
	CategoryEducation,
	CategoryHealth,
	CategoryWaterSanitation,
	CategoryConnectivity,
	CategoryLandUse,
	CategoryLivestock,
	CategoryAmenities,
}

var categoryDefs = map[Category]CategoryDef{
	CategoryPopulation: {
		Column:   "population_id",
		Relation: "Population",
		New:      func() Record { return &Population{} },
		SlotID:   func(v *VillageInfo) *uuid.UUID { return v.PopulationID },
	},
	CategoryEducation: {
		Column:   "education_id",
		Relation: "Education",
		New:      func() Record { return &Education{} },
		SlotID:   func(v *VillageInfo) *uuid.UUID { return v.EducationID },
	},
	CategoryHealth: {
		Column:   "health_id",
		Relation: "Health",
		New:      func() Record { return &Health{} },
		SlotID:   func(v *VillageInfo) *uuid.UUID { return v.HealthID },
	},
	CategoryWaterSanitation: {
		Column:   "water_sanitation_id",
		Relation: "WaterSanitation",
		New:      func() Record { return &WaterSanitation{} },
		SlotID:   func(v *VillageInfo) *uuid.UUID { return v.WaterSanitationID },
	},
	CategoryConnectivity: {
		Column:   "connectivity_id",
		Relation: "Connectivity",
		New:      func() Record { return &Connectivity{} },
		SlotID:   func(v *VillageInfo) *uuid.UUID { return v.ConnectivityID },
	},
	CategoryLandUse: {
		Column:   "land_use_id",
		Relation: "LandUse",
		New:      func() Record { return &LandUse{} },
		SlotID:   func(v *VillageInfo) *uuid.UUID { return v.LandUseID },
	},
	CategoryLivestock: {
		Column:   "livestock_id",
		Relation: "Livestock",
		New:      func() Record { return &Livestock{} },
		SlotID:   func(v *VillageInfo) *uuid.UUID { return v.LivestockID },
	},
	CategoryAmenities: {
		Column:   "amenities_id",
		Relation: "Amenities",
		New:      func() Record { return &Amenities{} },
		SlotID:   func(v *VillageInfo) *uuid.UUID { return v.AmenitiesID },
	},
}

// ParseCategory normalizes a raw tag ("Land_Use " -> land_use) and reports whether it is known.
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := categoryDefs[c]
	return c, ok
}

// Lookup returns the definition for c.
func Lookup(c Category) (CategoryDef, bool) {
	def, ok := categoryDefs[c]
	if !ok {
		return CategoryDef{}, false
	}
	def.Category = c
	return def, true
}

// Categories lists every category in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// SlotRelations returns the VillageInfo relation names of all category slots.
func SlotRelations() []string {
	out := make([]string, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		out = append(out, categoryDefs[c].Relation)
	}
	return out
}

// Models returns every table model of the package, for migrations.
func Models() []any {
	out := []any{&Year{}, &VillageInfo{}}
	for _, c := range categoryOrder {
		out = append(out, categoryDefs[c].New())
	}
	return out
}
