package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/catalog-backend/internal/platform/logger"
	"github.com/yungbote/catalog-backend/internal/services"
	"github.com/yungbote/catalog-backend/internal/source"
)

type Services struct {
	Catalog services.CatalogService
	Store   services.CatalogStoreService
}

func wireServices(gdb *gorm.DB, log *logger.Logger, cfg Config, repos Repos) Services {
	log.Info("Wiring services...")
	loader := source.NewLoader(cfg.Source, log)
	return Services{
		Catalog: services.NewCatalogService(loader, log),
		Store:   services.NewCatalogStoreService(gdb, log, repos.Brands, repos.Products),
	}
}
