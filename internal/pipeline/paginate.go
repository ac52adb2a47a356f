package pipeline

import "github.com/yungbote/catalog-backend/internal/domain"

// Paginate slices a single 1-based page out of products. Callers validate
// that pageSize and pageNumber are >= 1 before reaching this stage. Pages
// past the end are valid and yield an empty slice, not an error.
func Paginate(products []domain.CanonicalProduct, pageSize, pageNumber int) []domain.CanonicalProduct {
	start := (pageNumber - 1) * pageSize
	if start >= len(products) {
		return []domain.CanonicalProduct{}
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
