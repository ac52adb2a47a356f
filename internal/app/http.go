package app

import (
	"github.com/gin-gonic/gin"

	apihttp "github.com/yungbote/catalog-backend/internal/http"
	"github.com/yungbote/catalog-backend/internal/http/handlers"
	"github.com/yungbote/catalog-backend/internal/platform/logger"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Steps  *handlers.StepsHandler
	Store  *handlers.StoreHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: handlers.NewHealthHandler(),
		Steps:  handlers.NewStepsHandler(log, services.Catalog),
		Store:  handlers.NewStoreHandler(log, services.Store),
	}
}

func wireRouter(log *logger.Logger, h Handlers) *gin.Engine {
	return apihttp.NewRouter(apihttp.RouterConfig{
		Log:           log,
		HealthHandler: h.Health,
		StepsHandler:  h.Steps,
		StoreHandler:  h.Store,
	})
}
