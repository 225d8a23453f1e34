package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/panchayat-backend/internal/data/aggregates"
	"github.com/yungbote/panchayat-backend/internal/observability"
	"github.com/yungbote/panchayat-backend/internal/platform/logger"
	"github.com/yungbote/panchayat-backend/internal/services"
)

type Services struct {
	VillageInfo services.VillageInfoService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos, c Clients, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")
	villageAgg := aggregates.NewVillageInfoAggregate(aggregates.VillageInfoAggregateDeps{
		Base: aggregates.BaseDeps{
			DB:    db,
			Log:   log,
			Hooks: aggregates.NewObservabilityHooks(metrics),
		},
		Years:      r.Years,
		Villages:   r.Villages,
		Categories: r.Categories,
	})
	if err := villageAgg.Contract().Validate(); err != nil {
		log.Warn("aggregate contract invalid", "error", err)
	}
	return Services{
		VillageInfo: services.NewVillageInfoService(db, log, villageAgg, r.Years, r.Villages, c.Cache, cfg.CacheTTL, metrics),
	}
}
