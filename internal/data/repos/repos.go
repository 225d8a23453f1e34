package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/panchayat-backend/internal/data/repos/village"
	"github.com/yungbote/panchayat-backend/internal/platform/logger"
)

type YearRepo = village.YearRepo
type VillageInfoRepo = village.VillageInfoRepo
type CategoryRepo = village.CategoryRepo

func NewYearRepo(db *gorm.DB, baseLog *logger.Logger) YearRepo {
	return village.NewYearRepo(db, baseLog)
}
func NewVillageInfoRepo(db *gorm.DB, baseLog *logger.Logger) VillageInfoRepo {
	return village.NewVillageInfoRepo(db, baseLog)
}
func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	return village.NewCategoryRepo(db, baseLog)
}
