package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/panchayat-backend/internal/data/repos"
	"github.com/yungbote/panchayat-backend/internal/platform/logger"
)

type Repos struct {
	Years      repos.YearRepo
	Villages   repos.VillageInfoRepo
	Categories repos.CategoryRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Years:      repos.NewYearRepo(db, log),
		Villages:   repos.NewVillageInfoRepo(db, log),
		Categories: repos.NewCategoryRepo(db, log),
	}
}
