package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/catalog-backend/internal/domain"
)

func intPtr(v int) *int              { return &v }
func strPtr(v string) *string        { return &v }
func floatPtr(v float64) *float64    { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func SeedBrand(tb testing.TB, ctx context.Context, gdb *gorm.DB, name string) *domain.Brand {
	tb.Helper()
	b := &domain.Brand{
		ID:          uuid.New(),
		Name:        name,
		YearFounded: intPtr(2000),
		City:        strPtr("NYC"),
	}
	if err := gdb.WithContext(ctx).Create(b).Error; err != nil {
		tb.Fatalf("seed brand: %v", err)
	}
	return b
}

func SeedProduct(tb testing.TB, ctx context.Context, gdb *gorm.DB, brandID uuid.UUID, productID string, released *time.Time) *domain.Product {
	tb.Helper()
	p := &domain.Product{
		ID:            uuid.New(),
		ProductID:     productID,
		ProductName:   "Phone " + productID,
		BrandID:       brandID,
		Price:         floatPtr(99.5),
		Currency:      strPtr("USD"),
		ReleaseDate:   released,
		AverageRating: floatPtr(4.5),
		RatingCount:   intPtr(10),
	}
	if err := gdb.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

// Day builds a UTC midnight timestamp for release-date fixtures.
func Day(tb testing.TB, s string) *time.Time {
	tb.Helper()
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		tb.Fatalf("bad fixture date %q: %v", s, err)
	}
	return timePtr(t)
}
