package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/catalog-backend/internal/http/response"
	"github.com/yungbote/catalog-backend/internal/platform/logger"
	"github.com/yungbote/catalog-backend/internal/services"
)

// StoreHandler exposes the persisted query path (step 6) and the CRUD write
// path (step 7).
type StoreHandler struct {
	log   *logger.Logger
	store services.CatalogStoreService
}

func NewStoreHandler(baseLog *logger.Logger, store services.CatalogStoreService) *StoreHandler {
	return &StoreHandler{log: baseLog.With("handler", "StoreHandler"), store: store}
}

// GET /step6?brands&release_date_start&release_date_end&page_size&page_number
func (h *StoreHandler) Step6(c *gin.Context) {
	pageSize, pageNumber, err := paginationParams(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_page", err)
		return
	}

	page, err := h.store.Query(c.Request.Context(), services.StoreQuery{
		Brands:     c.Query("brands"),
		DateStart:  c.Query("release_date_start"),
		DateEnd:    c.Query("release_date_end"),
		PageSize:   pageSize,
		PageNumber: pageNumber,
	})
	if err != nil {
		response.RespondServiceError(c, err, "query_failed")
		return
	}
	response.RespondOK(c, page)
}

// POST /step7/create
func (h *StoreHandler) CreateProduct(c *gin.Context) {
	var in services.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	product, err := h.store.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondServiceError(c, err, "create_failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product_id": product.ProductID})
}

// PUT /step7/update/:product_id
func (h *StoreHandler) UpdateProduct(c *gin.Context) {
	var in services.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	product, err := h.store.Update(c.Request.Context(), c.Param("product_id"), in)
	if err != nil {
		response.RespondServiceError(c, err, "update_failed")
		return
	}
	response.RespondOK(c, gin.H{"product_id": product.ProductID})
}

// DELETE /step7/delete/:product_id
func (h *StoreHandler) DeleteProduct(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("product_id")); err != nil {
		response.RespondServiceError(c, err, "delete_failed")
		return
	}
	response.RespondOK(c, gin.H{"deleted": true})
}
