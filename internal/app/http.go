package app

import (
	"github.com/yungbote/panchayat-backend/internal/http"
	httpH "github.com/yungbote/panchayat-backend/internal/http/handlers"
	"github.com/yungbote/panchayat-backend/internal/observability"
	"github.com/yungbote/panchayat-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg Config, svcs Services, metrics *observability.Metrics, ready httpH.ReadyFunc) *http.Server {
	return http.NewServer(http.RouterConfig{
		Log:                log,
		Metrics:            metrics,
		ServiceName:        cfg.ServiceName,
		AllowedOrigins:     cfg.AllowedOrigins,
		HealthHandler:      httpH.NewHealthHandler(ready),
		VillageInfoHandler: httpH.NewVillageInfoHandler(log, svcs.VillageInfo),
	})
}
