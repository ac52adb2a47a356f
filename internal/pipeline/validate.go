package pipeline

import (
	"math"
	"regexp"

	"github.com/yungbote/catalog-backend/internal/domain"
)

// The twelve source keys every well-formed record must carry. A key present
// with a null value is acceptable; an absent key is not.
var requiredSourceFields = []string{
	"productId", "productName", "brandName", "category", "description",
	"price", "currency", "processor", "memory", "releaseDate",
	"averageRating", "ratingCount",
}

// Shape-only check. Calendar validity is deliberately not verified here;
// the range filter prunes dates like 2024-02-30 later.
var releaseDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsMalformed reports whether a raw record fails the fixed source schema.
// It is total: any input value shape yields a verdict, never a panic.
func IsMalformed(rec domain.RawRecord) bool {
	for _, k := range requiredSourceFields {
		if _, ok := rec[k]; !ok {
			return true
		}
	}

	if v := rec["releaseDate"]; v != nil {
		s, ok := v.(string)
		if !ok || !releaseDateRe.MatchString(s) {
			return true
		}
	}

	if v := rec["price"]; v != nil {
		if _, ok := asFloat(v); !ok {
			return true
		}
	}

	if v := rec["averageRating"]; v != nil {
		f, ok := asFloat(v)
		if !ok || f < 0 || f > 5 {
			return true
		}
	}

	if v := rec["ratingCount"]; v != nil {
		n, ok := asInt(v)
		if !ok || n < 0 {
			return true
		}
	}

	return false
}

// asFloat accepts the numeric shapes a JSON decode can produce.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// asInt accepts integers and floats with no fractional part, since JSON
// decoding surfaces every number as float64.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if math.Trunc(n) == n && !math.IsInf(n, 0) {
			return int(n), true
		}
		return 0, false
	case float32:
		f := float64(n)
		if math.Trunc(f) == f {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
