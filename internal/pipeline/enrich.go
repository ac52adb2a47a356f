package pipeline

import (
	"strings"
	"time"

	"github.com/yungbote/catalog-backend/internal/domain"
)

// addressFieldOrder fixes the join order of derived brand addresses.
var addressFieldOrder = []string{"street", "city", "state", "postal_code", "country"}

// Enrich joins products against a brand-name-keyed lookup built from the
// brand source. On duplicate brand names the last record wins. A product
// whose brand is unknown keeps its own brand_name as the brand object's
// name with null derived fields; absence of a brand is a normal outcome,
// never an error. Product fields are left untouched.
func Enrich(products []domain.CanonicalProduct, brands []domain.BrandRecord, now time.Time) []domain.EnrichedProduct {
	lookup := make(map[string]domain.BrandRecord, len(brands))
	for _, b := range brands {
		if name, ok := asString(b["name"]); ok {
			lookup[name] = b
		}
	}

	year := now.Year()
	out := make([]domain.EnrichedProduct, 0, len(products))
	for _, p := range products {
		info := domain.BrandInfo{Name: p.BrandName}
		if name, ok := asString(p.BrandName); ok {
			if b, found := lookup[name]; found {
				info = brandInfo(b, year)
			}
		}
		out = append(out, domain.EnrichedProduct{CanonicalProduct: p, Brand: info})
	}
	return out
}

func brandInfo(b domain.BrandRecord, year int) domain.BrandInfo {
	info := domain.BrandInfo{
		Name:        b["name"],
		YearFounded: b["year_founded"],
	}
	if founded, ok := asInt(b["year_founded"]); ok {
		age := year - founded
		info.CompanyAge = &age
	}
	addr := JoinAddress(b["address"])
	info.Address = &addr
	return info
}

// JoinAddress flattens an address object into "street, city, state,
// postal_code, country", dropping parts that are absent, empty, or
// whitespace-only. A non-object input yields the empty string.
func JoinAddress(v any) string {
	addr, ok := v.(map[string]any)
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(addressFieldOrder))
	for _, k := range addressFieldOrder {
		if s, ok := asString(addr[k]); ok && strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
