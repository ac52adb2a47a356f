package pipeline

import "testing"

func TestNormalizeRenamesKeysVerbatim(t *testing.T) {
	p := Normalize(validRecord())

	if p.ProductID != "P1" {
		t.Fatalf("product_id: got %v", p.ProductID)
	}
	if p.CategoryName != "Electronics" {
		t.Fatalf("category_name: got %v", p.CategoryName)
	}
	if p.DescriptionText != "d" {
		t.Fatalf("description_text: got %v", p.DescriptionText)
	}
	if p.Price != 100.0 {
		t.Fatalf("price: got %v", p.Price)
	}
	if p.ReleaseDate != "2023-05-01" {
		t.Fatalf("release_date: got %v", p.ReleaseDate)
	}
}

func TestNormalizeMissingKeysYieldNil(t *testing.T) {
	p := Normalize(map[string]any{"productId": "P1"})
	if p.ProductID != "P1" {
		t.Fatalf("product_id: got %v", p.ProductID)
	}
	if p.ProductName != nil || p.ReleaseDate != nil || p.RatingCount != nil {
		t.Fatalf("expected nil for absent keys, got %+v", p)
	}
}

func TestCleanDropsNonObjectsAndMalformed(t *testing.T) {
	bad := validRecord()
	delete(bad, "currency")

	raw := []any{
		"not an object",
		42.0,
		nil,
		bad,
		validRecord(),
	}

	got := Clean(raw)
	if len(got) != 1 {
		t.Fatalf("expected 1 cleaned record, got %d", len(got))
	}
	if got[0].ProductID != "P1" {
		t.Fatalf("unexpected record: %+v", got[0])
	}
}

func TestCleanPreservesOrder(t *testing.T) {
	a := validRecord()
	a["productId"] = "A"
	b := validRecord()
	b["productId"] = "B"

	got := Clean([]any{a, b})
	if len(got) != 2 || got[0].ProductID != "A" || got[1].ProductID != "B" {
		t.Fatalf("order not preserved: %+v", got)
	}
}
