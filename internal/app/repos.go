package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/catalog-backend/internal/data/repos/catalog"
	"github.com/yungbote/catalog-backend/internal/platform/logger"
)

type Repos struct {
	Brands   catalog.BrandRepo
	Products catalog.ProductRepo
}

func wireRepos(gdb *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Brands:   catalog.NewBrandRepo(gdb, log),
		Products: catalog.NewProductRepo(gdb, log),
	}
}
