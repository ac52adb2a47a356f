package pipeline

import "github.com/yungbote/catalog-backend/internal/domain"

// Normalize renames source keys to the canonical snake_case shape. Values
// are carried over verbatim; a missing key yields nil. No validation and no
// coercion happen here.
func Normalize(rec domain.RawRecord) domain.CanonicalProduct {
	return domain.CanonicalProduct{
		ProductID:       rec["productId"],
		ProductName:     rec["productName"],
		BrandName:       rec["brandName"],
		CategoryName:    rec["category"],
		DescriptionText: rec["description"],
		Price:           rec["price"],
		Currency:        rec["currency"],
		Processor:       rec["processor"],
		Memory:          rec["memory"],
		ReleaseDate:     rec["releaseDate"],
		AverageRating:   rec["averageRating"],
		RatingCount:     rec["ratingCount"],
	}
}

// Clean is the validate+normalize pass every step starts from: items that
// are not objects or fail the schema are dropped, the rest are renamed into
// canonical shape. Order is preserved.
func Clean(raw []any) []domain.CanonicalProduct {
	out := make([]domain.CanonicalProduct, 0, len(raw))
	for _, item := range raw {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if IsMalformed(rec) {
			continue
		}
		out = append(out, Normalize(rec))
	}
	return out
}
