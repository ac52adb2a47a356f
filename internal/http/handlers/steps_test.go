package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/catalog-backend/internal/domain"
	"github.com/yungbote/catalog-backend/internal/pipeline"
	"github.com/yungbote/catalog-backend/internal/platform/apierr"
	"github.com/yungbote/catalog-backend/internal/platform/logger"
)

type stubCatalog struct {
	products []domain.CanonicalProduct
	enriched []domain.EnrichedProduct
	err      error

	gotOpts pipeline.RangeOptions
	gotSize int
	gotPage int
}

func (s *stubCatalog) CleanProducts(ctx context.Context) ([]domain.CanonicalProduct, error) {
	return s.products, s.err
}

func (s *stubCatalog) FilteredProducts(ctx context.Context, opts pipeline.RangeOptions) ([]domain.CanonicalProduct, error) {
	s.gotOpts = opts
	return s.products, s.err
}

func (s *stubCatalog) PagedProducts(ctx context.Context, opts pipeline.RangeOptions, pageSize, pageNumber int) ([]domain.CanonicalProduct, error) {
	s.gotOpts, s.gotSize, s.gotPage = opts, pageSize, pageNumber
	return s.products, s.err
}

func (s *stubCatalog) EnrichedProducts(ctx context.Context, opts pipeline.RangeOptions, pageSize, pageNumber int) ([]domain.EnrichedProduct, error) {
	s.gotOpts, s.gotSize, s.gotPage = opts, pageSize, pageNumber
	return s.enriched, s.err
}

func stepsRouter(t *testing.T, svc *stubCatalog) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("test")
	require.NoError(t, err)

	h := NewStepsHandler(log, svc)
	r := gin.New()
	r.GET("/step1", h.Step1)
	r.GET("/step2", h.Step2)
	r.GET("/step3", h.Step3)
	r.GET("/step4", h.Step4)
	r.GET("/step5", h.Step5)
	return r
}

func TestStep1ReturnsCleanedList(t *testing.T) {
	svc := &stubCatalog{products: []domain.CanonicalProduct{{ProductID: "P1"}}}
	r := stepsRouter(t, svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/step1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "P1", got[0]["product_id"])
	// All twelve canonical keys serialize, null included.
	assert.Len(t, got[0], 12)
	assert.Contains(t, got[0], "rating_count")
}

func TestStep2PassesDateBounds(t *testing.T) {
	svc := &stubCatalog{}
	r := stepsRouter(t, svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/step2?release_date_start=2023-01-01&release_date_end=2023-12-31", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2023-01-01", svc.gotOpts.DateStart)
	assert.Equal(t, "2023-12-31", svc.gotOpts.DateEnd)
	assert.Empty(t, svc.gotOpts.Brands)
}

func TestStep2InvalidDateIs400(t *testing.T) {
	svc := &stubCatalog{err: apierr.InvalidArgument("invalid_date", errors.New("bad bound"))}
	r := stepsRouter(t, svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/step2?release_date_start=junk", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_date")
}

func TestStep3PassesBrandList(t *testing.T) {
	svc := &stubCatalog{}
	r := stepsRouter(t, svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/step3?brands=Acme,Globex", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Acme,Globex", svc.gotOpts.Brands)
}

func TestStep4RequiresPositivePageParams(t *testing.T) {
	for _, query := range []string{
		"",
		"?page_size=10",
		"?page_number=1",
		"?page_size=0&page_number=1",
		"?page_size=10&page_number=-1",
		"?page_size=abc&page_number=1",
	} {
		svc := &stubCatalog{}
		r := stepsRouter(t, svc)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/step4"+query, nil))

		require.Equalf(t, http.StatusBadRequest, rec.Code, "query %q", query)
		assert.Contains(t, rec.Body.String(), "invalid_page")
	}
}

func TestStep4ForwardsPagination(t *testing.T) {
	svc := &stubCatalog{}
	r := stepsRouter(t, svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/step4?page_size=10&page_number=3", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, svc.gotSize)
	assert.Equal(t, 3, svc.gotPage)
}

func TestStep5UpstreamFailureIs502(t *testing.T) {
	svc := &stubCatalog{err: apierr.UpstreamUnavailable(errors.New("source down"))}
	r := stepsRouter(t, svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/step5?page_size=10&page_number=1", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "upstream_unavailable")
}

func TestStep5ReturnsEnrichedBrandObject(t *testing.T) {
	age := 26
	addr := "NYC"
	svc := &stubCatalog{enriched: []domain.EnrichedProduct{{
		CanonicalProduct: domain.CanonicalProduct{ProductID: "P1", BrandName: "Acme"},
		Brand:            domain.BrandInfo{Name: "Acme", YearFounded: 2000, CompanyAge: &age, Address: &addr},
	}}}
	r := stepsRouter(t, svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/step5?page_size=1&page_number=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	brand, ok := got[0]["brand"].(map[string]any)
	require.True(t, ok, "expected nested brand object")
	assert.Equal(t, float64(26), brand["company_age"])
	assert.Equal(t, "NYC", brand["address"])
}
