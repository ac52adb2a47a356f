package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/catalog-backend/internal/domain"
)

// DateLayout is the wire format for release dates and range bounds.
const DateLayout = "2006-01-02"

// ErrInvalidDate marks a caller-supplied range bound that failed to parse.
// It fails the whole call; a bad bound never yields a silent empty result.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// RangeOptions are the optional filters applied after cleaning. Empty
// strings mean "not supplied".
type RangeOptions struct {
	DateStart string
	DateEnd   string
	Brands    string // comma-separated exact brand names
}

// FilterByRange retains products inside the inclusive date window and, when
// a brand list is supplied, with an exactly matching brand name.
//
// Per-record date handling is deliberately asymmetric with the ingest-time
// shape check: a nil or empty release_date always passes, while a date that
// matched the shape regex but is not a real calendar date (2023-02-30) is
// silently dropped here.
func FilterByRange(products []domain.CanonicalProduct, opts RangeOptions) ([]domain.CanonicalProduct, error) {
	start, err := ParseBound(opts.DateStart)
	if err != nil {
		return nil, err
	}
	end, err := ParseBound(opts.DateEnd)
	if err != nil {
		return nil, err
	}
	allow := SplitBrands(opts.Brands)

	out := make([]domain.CanonicalProduct, 0, len(products))
	for _, p := range products {
		if rd, ok := asString(p.ReleaseDate); ok && rd != "" {
			d, err := time.Parse(DateLayout, rd)
			if err != nil {
				continue
			}
			if start != nil && d.Before(*start) {
				continue
			}
			if end != nil && d.After(*end) {
				continue
			}
		}
		if len(allow) > 0 && !brandAllowed(p.BrandName, allow) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// ParseBound parses an optional YYYY-MM-DD bound. Empty means unset.
func ParseBound(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return &t, nil
}

// SplitBrands turns a comma-separated brand list into trimmed, non-empty
// tokens. An all-whitespace input yields no tokens, which disables the
// brand filter.
func SplitBrands(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func brandAllowed(brandName any, allow []string) bool {
	name, ok := asString(brandName)
	if !ok {
		return false
	}
	for _, a := range allow {
		if name == a {
			return true
		}
	}
	return false
}
