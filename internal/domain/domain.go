package domain

import "github.com/yungbote/panchayat-backend/internal/domain/village"

type Year = village.Year
type VillageInfo = village.VillageInfo
type CoreKey = village.CoreKey
type Category = village.Category
type CategoryRecord = village.Record

type Population = village.Population
type Education = village.Education
type Health = village.Health
type WaterSanitation = village.WaterSanitation
type Connectivity = village.Connectivity
type LandUse = village.LandUse
type Livestock = village.Livestock
type Amenities = village.Amenities
