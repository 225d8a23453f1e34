package village

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordMeta is embedded by every category record.
type RecordMeta struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	IsDraft   bool      `gorm:"column:is_draft;not null;default:false" json:"is_draft"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (m *RecordMeta) Meta() *RecordMeta { return m }

func (m *RecordMeta) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Record is implemented by pointers to the category structs below.
type Record interface {
	Meta() *RecordMeta
	TableName() string
}

type Population struct {
	RecordMeta
	TotalPopulation  int `gorm:"not null" json:"total_population" validate:"gte=0"`
	MalePopulation   int `gorm:"not null;default:0" json:"male_population" validate:"gte=0,ltefield=TotalPopulation"`
	FemalePopulation int `gorm:"not null;default:0" json:"female_population" validate:"gte=0,ltefield=TotalPopulation"`
	Households       int `gorm:"not null" json:"households" validate:"gte=0"`
	SCPopulation     int `gorm:"column:sc_population;not null;default:0" json:"sc_population" validate:"gte=0,ltefield=TotalPopulation"`
	STPopulation     int `gorm:"column:st_population;not null;default:0" json:"st_population" validate:"gte=0,ltefield=TotalPopulation"`
}

func (Population) TableName() string { return "village_population" }

type Education struct {
	RecordMeta
	PrimarySchools         int     `gorm:"not null;default:0" json:"primary_schools" validate:"gte=0"`
	MiddleSchools          int     `gorm:"not null;default:0" json:"middle_schools" validate:"gte=0"`
	SecondarySchools       int     `gorm:"not null;default:0" json:"secondary_schools" validate:"gte=0"`
	SeniorSecondarySchools int     `gorm:"not null;default:0" json:"senior_secondary_schools" validate:"gte=0"`
	Colleges               int     `gorm:"not null;default:0" json:"colleges" validate:"gte=0"`
	Anganwadis             int     `gorm:"not null;default:0" json:"anganwadis" validate:"gte=0"`
	LiteracyRate           float64 `gorm:"not null;default:0" json:"literacy_rate" validate:"gte=0,lte=100"`
}

func (Education) TableName() string { return "village_education" }

type Health struct {
	RecordMeta
	PrimaryHealthCentres   int `gorm:"not null;default:0" json:"primary_health_centres" validate:"gte=0"`
	SubCentres             int `gorm:"not null;default:0" json:"sub_centres" validate:"gte=0"`
	CommunityHealthCentres int `gorm:"not null;default:0" json:"community_health_centres" validate:"gte=0"`
	Dispensaries           int `gorm:"not null;default:0" json:"dispensaries" validate:"gte=0"`
	VeterinaryHospitals    int `gorm:"not null;default:0" json:"veterinary_hospitals" validate:"gte=0"`
	MedicalShops           int `gorm:"not null;default:0" json:"medical_shops" validate:"gte=0"`
}

func (Health) TableName() string { return "village_health" }

type WaterSanitation struct {
	RecordMeta
	TapWater               bool `gorm:"not null;default:false" json:"tap_water"`
	Handpumps              int  `gorm:"not null;default:0" json:"handpumps" validate:"gte=0"`
	Wells                  int  `gorm:"not null;default:0" json:"wells" validate:"gte=0"`
	DrainageSystem         bool `gorm:"not null;default:false" json:"drainage_system"`
	GarbageCollection      bool `gorm:"not null;default:false" json:"garbage_collection"`
	HouseholdsWithToilets  int  `gorm:"not null;default:0" json:"households_with_toilets" validate:"gte=0"`
	PowerSupplyHoursPerDay int  `gorm:"not null;default:0" json:"power_supply_hours_per_day" validate:"gte=0,lte=24"`
}

func (WaterSanitation) TableName() string { return "village_water_sanitation" }

type Connectivity struct {
	RecordMeta
	PuccaRoadKm    float64 `gorm:"not null;default:0" json:"pucca_road_km" validate:"gte=0"`
	KachchaRoadKm  float64 `gorm:"not null;default:0" json:"kachcha_road_km" validate:"gte=0"`
	BusService     bool    `gorm:"not null;default:false" json:"bus_service"`
	RailwayStation bool    `gorm:"not null;default:false" json:"railway_station"`
	MobileCoverage bool    `gorm:"not null;default:false" json:"mobile_coverage"`
	InternetAccess bool    `gorm:"not null;default:false" json:"internet_access"`
	NearestTownKm  float64 `gorm:"not null;default:0" json:"nearest_town_km" validate:"gte=0"`
}

func (Connectivity) TableName() string { return "village_connectivity" }

type LandUse struct {
	RecordMeta
	TotalAreaHectares      float64 `gorm:"not null;default:0" json:"total_area_hectares" validate:"gte=0"`
	CultivableAreaHectares float64 `gorm:"not null;default:0" json:"cultivable_area_hectares" validate:"gte=0,ltefield=TotalAreaHectares"`
	IrrigatedAreaHectares  float64 `gorm:"not null;default:0" json:"irrigated_area_hectares" validate:"gte=0,ltefield=CultivableAreaHectares"`
	ForestAreaHectares     float64 `gorm:"not null;default:0" json:"forest_area_hectares" validate:"gte=0,ltefield=TotalAreaHectares"`
	MainCrops              string  `gorm:"not null;default:''" json:"main_crops" validate:"max=255"`
}

func (LandUse) TableName() string { return "village_land_use" }

type Livestock struct {
	RecordMeta
	Cattle    int `gorm:"not null;default:0" json:"cattle" validate:"gte=0"`
	Buffaloes int `gorm:"not null;default:0" json:"buffaloes" validate:"gte=0"`
	Goats     int `gorm:"not null;default:0" json:"goats" validate:"gte=0"`
	Sheep     int `gorm:"not null;default:0" json:"sheep" validate:"gte=0"`
	Poultry   int `gorm:"not null;default:0" json:"poultry" validate:"gte=0"`
}

func (Livestock) TableName() string { return "village_livestock" }

type Amenities struct {
	RecordMeta
	CommercialBanks  int `gorm:"not null;default:0" json:"commercial_banks" validate:"gte=0"`
	CooperativeBanks int `gorm:"not null;default:0" json:"cooperative_banks" validate:"gte=0"`
	ATMs             int `gorm:"column:atms;not null;default:0" json:"atms" validate:"gte=0"`
	PostOffices      int `gorm:"not null;default:0" json:"post_offices" validate:"gte=0"`
	CommunityHalls   int `gorm:"not null;default:0" json:"community_halls" validate:"gte=0"`
	Markets          int `gorm:"not null;default:0" json:"markets" validate:"gte=0"`
}

func (Amenities) TableName() string { return "village_amenities" }
