package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/yungbote/catalog-backend/internal/http/handlers"
	httpMW "github.com/yungbote/catalog-backend/internal/http/middleware"
	"github.com/yungbote/catalog-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	HealthHandler *httpH.HealthHandler
	StepsHandler  *httpH.StepsHandler
	StoreHandler  *httpH.StoreHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/", cfg.HealthHandler.Root)
		r.GET("/health", cfg.HealthHandler.HealthCheck)
	}

	// In-process pipeline, composed stage by stage.
	if cfg.StepsHandler != nil {
		r.GET("/step1", cfg.StepsHandler.Step1)
		r.GET("/step2", cfg.StepsHandler.Step2)
		r.GET("/step3", cfg.StepsHandler.Step3)
		r.GET("/step4", cfg.StepsHandler.Step4)
		r.GET("/step5", cfg.StepsHandler.Step5)
	}

	// Store-backed query and writes.
	if cfg.StoreHandler != nil {
		r.GET("/step6", cfg.StoreHandler.Step6)
		step7 := r.Group("/step7")
		{
			step7.POST("/create", cfg.StoreHandler.CreateProduct)
			step7.PUT("/update/:product_id", cfg.StoreHandler.UpdateProduct)
			step7.DELETE("/delete/:product_id", cfg.StoreHandler.DeleteProduct)
		}
	}

	return r
}
