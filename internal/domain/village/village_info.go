package village

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Year is a reporting period ("2023-24"). Labels are unique and shared by every village
// record filed for that period.
type Year struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Label     string    `gorm:"column:label;not null;uniqueIndex:idx_year_label" json:"label"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Year) TableName() string { return "year" }

func (y *Year) BeforeCreate(*gorm.DB) error {
	if y.ID == uuid.Nil {
		y.ID = uuid.New()
	}
	return nil
}

// VillageInfo is the per-year statistical record of one village. (VillageCode, YearID) is
// the natural key and never changes once the row exists. Each category slot points at a
// record owned by this village alone.
type VillageInfo struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VillageCode     int       `gorm:"column:village_code;not null;uniqueIndex:idx_village_info_code_year,priority:1" json:"village_code"`
	SubdistrictCode int       `gorm:"column:subdistrict_code;not null" json:"subdistrict_code"`
	VillageName     string    `gorm:"column:village_name;not null" json:"village_name"`
	YearID          uuid.UUID `gorm:"type:uuid;column:year_id;not null;uniqueIndex:idx_village_info_code_year,priority:2" json:"year_id"`
	Year            *Year     `gorm:"foreignKey:YearID" json:"year,omitempty"`
	IsDraft         bool      `gorm:"column:is_draft;not null;default:false" json:"is_draft"`

	PopulationID      *uuid.UUID       `gorm:"type:uuid;column:population_id;uniqueIndex" json:"population_id"`
	Population        *Population      `gorm:"foreignKey:PopulationID" json:"population"`
	EducationID       *uuid.UUID       `gorm:"type:uuid;column:education_id;uniqueIndex" json:"education_id"`
	Education         *Education       `gorm:"foreignKey:EducationID" json:"education"`
	HealthID          *uuid.UUID       `gorm:"type:uuid;column:health_id;uniqueIndex" json:"health_id"`
	Health            *Health          `gorm:"foreignKey:HealthID" json:"health"`
	WaterSanitationID *uuid.UUID       `gorm:"type:uuid;column:water_sanitation_id;uniqueIndex" json:"water_sanitation_id"`
	WaterSanitation   *WaterSanitation `gorm:"foreignKey:WaterSanitationID" json:"water_sanitation"`
	ConnectivityID    *uuid.UUID       `gorm:"type:uuid;column:connectivity_id;uniqueIndex" json:"connectivity_id"`
	Connectivity      *Connectivity    `gorm:"foreignKey:ConnectivityID" json:"connectivity"`
	LandUseID         *uuid.UUID       `gorm:"type:uuid;column:land_use_id;uniqueIndex" json:"land_use_id"`
	LandUse           *LandUse         `gorm:"foreignKey:LandUseID" json:"land_use"`
	LivestockID       *uuid.UUID       `gorm:"type:uuid;column:livestock_id;uniqueIndex" json:"livestock_id"`
	Livestock         *Livestock       `gorm:"foreignKey:LivestockID" json:"livestock"`
	AmenitiesID       *uuid.UUID       `gorm:"type:uuid;column:amenities_id;uniqueIndex" json:"amenities_id"`
	Amenities         *Amenities       `gorm:"foreignKey:AmenitiesID" json:"amenities"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (VillageInfo) TableName() string { return "village_info" }

func (v *VillageInfo) BeforeCreate(*gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// CoreKey identifies a village record and carries its display fields.
type CoreKey struct {
	VillageCode     int    `json:"village_code" validate:"required,gt=0"`
	SubdistrictCode int    `json:"subdistrict_code" validate:"required,gt=0"`
	VillageName     string `json:"village_name" validate:"required,max=255"`
	YearLabel       string `json:"year" validate:"required,max=32"`
}
