package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/catalog-backend/internal/http/response"
	"github.com/yungbote/catalog-backend/internal/pipeline"
	"github.com/yungbote/catalog-backend/internal/platform/logger"
	"github.com/yungbote/catalog-backend/internal/services"
)

// StepsHandler exposes the in-process pipeline. Each endpoint runs a longer
// prefix of the same stage chain; none of them touch the store.
type StepsHandler struct {
	log     *logger.Logger
	catalog services.CatalogService
}

func NewStepsHandler(baseLog *logger.Logger, catalog services.CatalogService) *StepsHandler {
	return &StepsHandler{log: baseLog.With("handler", "StepsHandler"), catalog: catalog}
}

// GET /step1 — validate + normalize
func (h *StepsHandler) Step1(c *gin.Context) {
	products, err := h.catalog.CleanProducts(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err, "load_failed")
		return
	}
	response.RespondOK(c, products)
}

// GET /step2?release_date_start&release_date_end — + date window
func (h *StepsHandler) Step2(c *gin.Context) {
	opts := pipeline.RangeOptions{
		DateStart: c.Query("release_date_start"),
		DateEnd:   c.Query("release_date_end"),
	}
	products, err := h.catalog.FilteredProducts(c.Request.Context(), opts)
	if err != nil {
		response.RespondServiceError(c, err, "filter_failed")
		return
	}
	response.RespondOK(c, products)
}

// GET /step3?brands&release_date_start&release_date_end — + brand list
func (h *StepsHandler) Step3(c *gin.Context) {
	products, err := h.catalog.FilteredProducts(c.Request.Context(), rangeOptions(c))
	if err != nil {
		response.RespondServiceError(c, err, "filter_failed")
		return
	}
	response.RespondOK(c, products)
}

// GET /step4?page_size&page_number&... — + pagination
func (h *StepsHandler) Step4(c *gin.Context) {
	pageSize, pageNumber, err := paginationParams(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_page", err)
		return
	}
	products, err := h.catalog.PagedProducts(c.Request.Context(), rangeOptions(c), pageSize, pageNumber)
	if err != nil {
		response.RespondServiceError(c, err, "paginate_failed")
		return
	}
	response.RespondOK(c, products)
}

// GET /step5?... — + brand enrichment
func (h *StepsHandler) Step5(c *gin.Context) {
	pageSize, pageNumber, err := paginationParams(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_page", err)
		return
	}
	products, err := h.catalog.EnrichedProducts(c.Request.Context(), rangeOptions(c), pageSize, pageNumber)
	if err != nil {
		response.RespondServiceError(c, err, "enrich_failed")
		return
	}
	response.RespondOK(c, products)
}

func rangeOptions(c *gin.Context) pipeline.RangeOptions {
	return pipeline.RangeOptions{
		DateStart: c.Query("release_date_start"),
		DateEnd:   c.Query("release_date_end"),
		Brands:    c.Query("brands"),
	}
}

// paginationParams reads the required page_size and page_number query
// params; both must be integers >= 1.
func paginationParams(c *gin.Context) (int, int, error) {
	pageSize, err := strconv.Atoi(c.Query("page_size"))
	if err != nil || pageSize < 1 {
		return 0, 0, errors.New("page_size must be a positive integer")
	}
	pageNumber, err := strconv.Atoi(c.Query("page_number"))
	if err != nil || pageNumber < 1 {
		return 0, 0, errors.New("page_number must be a positive integer")
	}
	return pageSize, pageNumber, nil
}
