package pipeline

import (
	"fmt"
	"testing"

	"github.com/yungbote/catalog-backend/internal/domain"
)

func numberedProducts(n int) []domain.CanonicalProduct {
	out := make([]domain.CanonicalProduct, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.CanonicalProduct{ProductID: fmt.Sprintf("P%d", i)})
	}
	return out
}

func TestPaginateLastPartialPage(t *testing.T) {
	got := Paginate(numberedProducts(25), 10, 3)
	if len(got) != 5 {
		t.Fatalf("expected 5 records on page 3, got %d", len(got))
	}
	if got[0].ProductID != "P20" || got[4].ProductID != "P24" {
		t.Fatalf("expected indices 20-24, got %v..%v", got[0].ProductID, got[4].ProductID)
	}
}

func TestPaginateOutOfRangePageIsEmpty(t *testing.T) {
	got := Paginate(numberedProducts(25), 10, 4)
	if len(got) != 0 {
		t.Fatalf("expected empty page, got %d records", len(got))
	}
}

func TestPaginateFullPages(t *testing.T) {
	records := numberedProducts(25)
	for page := 1; page <= 2; page++ {
		got := Paginate(records, 10, page)
		if len(got) != 10 {
			t.Fatalf("page %d: expected 10 records, got %d", page, len(got))
		}
		if got[0].ProductID != fmt.Sprintf("P%d", (page-1)*10) {
			t.Fatalf("page %d starts at %v", page, got[0].ProductID)
		}
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	if got := Paginate(nil, 10, 1); len(got) != 0 {
		t.Fatalf("expected empty result for empty input, got %d", len(got))
	}
}
