package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yungbote/catalog-backend/internal/domain"
	"github.com/yungbote/catalog-backend/internal/pipeline"
	"github.com/yungbote/catalog-backend/internal/platform/apierr"
	"github.com/yungbote/catalog-backend/internal/platform/logger"
)

type stubLoader struct {
	products []any
	brands   []domain.BrandRecord
	prodErr  error
	brandErr error
}

func (s *stubLoader) Products(ctx context.Context) ([]any, error) {
	return s.products, s.prodErr
}

func (s *stubLoader) Brands(ctx context.Context) ([]domain.BrandRecord, error) {
	return s.brands, s.brandErr
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func sourceRecord(id string) map[string]any {
	return map[string]any{
		"productId":     id,
		"productName":   "Phone",
		"brandName":     "Acme",
		"category":      "Electronics",
		"description":   "d",
		"price":         100.0,
		"currency":      "USD",
		"processor":     "x",
		"memory":        "4GB",
		"releaseDate":   "2023-05-01",
		"averageRating": 4.5,
		"ratingCount":   10.0,
	}
}

func TestCleanProductsDropsMalformed(t *testing.T) {
	bad := sourceRecord("P2")
	delete(bad, "memory")
	loader := &stubLoader{products: []any{sourceRecord("P1"), bad, "junk"}}

	svc := NewCatalogService(loader, testLogger(t))
	got, err := svc.CleanProducts(context.Background())
	if err != nil {
		t.Fatalf("CleanProducts: %v", err)
	}
	if len(got) != 1 || got[0].ProductID != "P1" {
		t.Fatalf("expected only P1, got %+v", got)
	}
}

func TestFilteredProductsInvalidDateIsClientError(t *testing.T) {
	svc := NewCatalogService(&stubLoader{products: []any{sourceRecord("P1")}}, testLogger(t))

	_, err := svc.FilteredProducts(context.Background(), pipeline.RangeOptions{DateStart: "bogus"})
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Status != 400 || ae.Code != "invalid_date" {
		t.Fatalf("expected invalid_date 400, got %v", err)
	}
}

func TestFilteredProductsPropagatesLoaderError(t *testing.T) {
	loader := &stubLoader{prodErr: apierr.UpstreamUnavailable(errors.New("boom"))}
	svc := NewCatalogService(loader, testLogger(t))

	_, err := svc.FilteredProducts(context.Background(), pipeline.RangeOptions{})
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Code != "upstream_unavailable" {
		t.Fatalf("expected upstream_unavailable, got %v", err)
	}
}

// Full pipeline over one record, page 1 size 1, no filters: the enriched
// output carries the derived brand fields.
func TestEnrichedProductsEndToEnd(t *testing.T) {
	loader := &stubLoader{
		products: []any{sourceRecord("P1")},
		brands: []domain.BrandRecord{
			{"name": "Acme", "year_founded": 2000.0, "address": map[string]any{"city": "NYC"}},
		},
	}
	svc := NewCatalogService(loader, testLogger(t)).(*catalogService)
	svc.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	got, err := svc.EnrichedProducts(context.Background(), pipeline.RangeOptions{}, 1, 1)
	if err != nil {
		t.Fatalf("EnrichedProducts: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 enriched product, got %d", len(got))
	}
	b := got[0].Brand
	if b.CompanyAge == nil || *b.CompanyAge != 26 {
		t.Fatalf("company_age: got %v, want 26", b.CompanyAge)
	}
	if b.Address == nil || *b.Address != "NYC" {
		t.Fatalf("address: got %v, want NYC", b.Address)
	}
	if got[0].ProductID != "P1" || got[0].Price != 100.0 {
		t.Fatalf("product fields altered: %+v", got[0])
	}
}

func TestEnrichedProductsBrandSourceFailureFailsCall(t *testing.T) {
	loader := &stubLoader{
		products: []any{sourceRecord("P1")},
		brandErr: apierr.ConfigurationMissing(errors.New("no brand url")),
	}
	svc := NewCatalogService(loader, testLogger(t))

	_, err := svc.EnrichedProducts(context.Background(), pipeline.RangeOptions{}, 10, 1)
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Code != "configuration_missing" {
		t.Fatalf("expected configuration_missing, got %v", err)
	}
}

func TestPagedProductsOutOfRange(t *testing.T) {
	loader := &stubLoader{products: []any{sourceRecord("P1"), sourceRecord("P2")}}
	svc := NewCatalogService(loader, testLogger(t))

	got, err := svc.PagedProducts(context.Background(), pipeline.RangeOptions{}, 10, 5)
	if err != nil {
		t.Fatalf("PagedProducts: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty page, got %d", len(got))
	}
}
