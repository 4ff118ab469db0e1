package dashboard

import (
	"strings"

	"github.com/shopspring/decimal"

	"servicehub/internal/domain"
)

// ServiceFilter combines the four service predicates. Zero values mean
// "predicate unset": empty query, CategoryID 0, nil price bounds.
type ServiceFilter struct {
	Query      string
	CategoryID int64
	PriceMin   *decimal.Decimal
	PriceMax   *decimal.Decimal
}

func (f ServiceFilter) matches(s domain.Service) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(s.Title), q) &&
			!strings.Contains(strings.ToLower(s.Description), q) {
			return false
		}
	}
	if f.CategoryID != 0 && s.CategoryID != f.CategoryID {
		return false
	}
	if f.PriceMin != nil && s.Price.LessThan(*f.PriceMin) {
		return false
	}
	if f.PriceMax != nil && s.Price.GreaterThan(*f.PriceMax) {
		return false
	}
	return true
}

// FilterServices applies the filter, preserving input order. The predicates
// are independent, so the result does not depend on evaluation order.
func FilterServices(all []domain.Service, f ServiceFilter) []domain.Service {
	out := make([]domain.Service, 0, len(all))
	for _, s := range all {
		if f.matches(s) {
			out = append(out, s)
		}
	}
	return out
}
