package providers

import (
	"github.com/samber/do/v2"

	"github.com/streamlens/streamlens-server/internal/catalog"
	"github.com/streamlens/streamlens-server/internal/config"
	"github.com/streamlens/streamlens-server/internal/logger"
	"github.com/streamlens/streamlens-server/internal/service"
)

// ProvideDashboardService provides the chart and summary service.
func ProvideDashboardService(i do.Injector) (*service.DashboardService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	store := do.MustInvoke[*catalog.Store](i)

	return service.NewDashboardService(store, cfg.Charts, log.Logger), nil
}

// ProvideTitlesService provides the title browse service.
func ProvideTitlesService(i do.Injector) (*service.TitlesService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	store := do.MustInvoke[*catalog.Store](i)
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)

	return service.NewTitlesService(store, indexHandle.Index, cfg.Charts, log.Logger), nil
}
