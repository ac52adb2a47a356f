package domain

// RawRecord is an untyped source item exactly as decoded from the upstream
// JSON payload. Nothing about its shape is trusted until it passes
// validation.
type RawRecord = map[string]any

// BrandRecord is an untyped item from the brand source. The pipeline keys
// on its "name" entry and reads "year_founded" and the optional "address"
// object when deriving brand fields.
type BrandRecord = map[string]any

// CanonicalProduct is the normalized internal shape. All twelve keys are
// present on every instance after normalization; values are carried over
// from the raw record verbatim, never coerced, so each field stays `any`
// and serializes as null when the source omitted it.
type CanonicalProduct struct {
	ProductID       any `json:"product_id"`
	ProductName     any `json:"product_name"`
	BrandName       any `json:"brand_name"`
	CategoryName    any `json:"category_name"`
	DescriptionText any `json:"description_text"`
	Price           any `json:"price"`
	Currency        any `json:"currency"`
	Processor       any `json:"processor"`
	Memory          any `json:"memory"`
	ReleaseDate     any `json:"release_date"`
	AverageRating   any `json:"average_rating"`
	RatingCount     any `json:"rating_count"`
}

// BrandInfo is the derived brand object attached during enrichment.
// CompanyAge and Address are nil when the brand is unknown or the source
// fields needed to derive them are absent.
type BrandInfo struct {
	Name        any     `json:"name"`
	YearFounded any     `json:"year_founded"`
	CompanyAge  *int    `json:"company_age"`
	Address     *string `json:"address"`
}

// EnrichedProduct is a CanonicalProduct joined with its derived brand
// object. The product's own fields are never modified by enrichment.
type EnrichedProduct struct {
	CanonicalProduct
	Brand BrandInfo `json:"brand"`
}
