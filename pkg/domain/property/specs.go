package property

import (
	"strings"
	"time"

	"github.com/diegorozoc/million/pkg/money"
	"github.com/diegorozoc/million/pkg/specification"
	"github.com/google/uuid"
)

// Relation names understood by the repositories' eager loaders.
const (
	IncludeOwner  = "Owner"
	IncludeImages = "Images"
)

// Filter carries the optional criteria for listing properties. Zero-valued
// fields are not applied.
type Filter struct {
	Country  string
	City     string
	MinPrice *money.Amount
	MaxPrice *money.Amount
	Year     *int
}

// FilterSpecification filters properties by any combination of country, city,
// price range, and year. It always eager-loads the owner.
type FilterSpecification struct {
	specification.Base[*Property]
}

// NewFilterSpecification builds the property filter specification. Each
// supplied filter contributes one predicate; the criteria list starts empty
// (match all) and predicates are ANDed by the evaluator.
func NewFilterSpecification(f Filter) *FilterSpecification {
	s := &FilterSpecification{}
	if strings.TrimSpace(f.Country) != "" {
		country := strings.ToLower(f.Country)
		s.Where(func(p *Property) bool {
			return strings.Contains(strings.ToLower(p.Address.Country()), country)
		})
	}
	if strings.TrimSpace(f.City) != "" {
		city := strings.ToLower(f.City)
		s.Where(func(p *Property) bool {
			return strings.Contains(strings.ToLower(p.Address.City()), city)
		})
	}
	if f.MinPrice != nil {
		floor := *f.MinPrice
		s.Where(func(p *Property) bool { return p.Price.Amount() >= floor })
	}
	if f.MaxPrice != nil {
		ceil := *f.MaxPrice
		s.Where(func(p *Property) bool { return p.Price.Amount() <= ceil })
	}
	if f.Year != nil {
		year := *f.Year
		s.Where(func(p *Property) bool { return p.Year == year })
	}
	s.AddInclude(IncludeOwner)
	return s
}

// ByCodeInternalSpecification matches the single property with the given
// internal code.
type ByCodeInternalSpecification struct {
	specification.Base[*Property]
}

// NewByCodeInternalSpecification builds a specification matching codeInternal exactly.
func NewByCodeInternalSpecification(codeInternal string) *ByCodeInternalSpecification {
	s := &ByCodeInternalSpecification{}
	s.Where(func(p *Property) bool { return p.CodeInternal == codeInternal })
	return s
}

// TracesByPropertySpecification selects a property's sale traces, newest first.
type TracesByPropertySpecification struct {
	specification.Base[*Trace]
}

// NewTracesByPropertySpecification builds the per-property trace specification.
func NewTracesByPropertySpecification(propertyID uuid.UUID) *TracesByPropertySpecification {
	s := &TracesByPropertySpecification{}
	s.Where(func(t *Trace) bool { return t.PropertyID == propertyID })
	s.ApplyOrderByDescending(func(a, b *Trace) bool { return a.DateSale.Before(b.DateSale) })
	return s
}

// TraceValueRangeSpecification selects traces whose sale value falls inside
// [minValue, maxValue], cheapest first.
type TraceValueRangeSpecification struct {
	specification.Base[*Trace]
}

// NewTraceValueRangeSpecification builds the value-range trace specification.
// Bounds are in the smallest currency unit.
func NewTraceValueRangeSpecification(minValue, maxValue money.Amount) *TraceValueRangeSpecification {
	s := &TraceValueRangeSpecification{}
	s.Where(func(t *Trace) bool {
		return t.Value.Amount() >= minValue && t.Value.Amount() <= maxValue
	})
	s.ApplyOrderBy(func(a, b *Trace) bool { return a.Value.Amount() < b.Value.Amount() })
	return s
}

// TraceDateRangeSpecification selects traces sold inside [start, end], newest first.
type TraceDateRangeSpecification struct {
	specification.Base[*Trace]
}

// NewTraceDateRangeSpecification builds the date-range trace specification.
func NewTraceDateRangeSpecification(start, end time.Time) *TraceDateRangeSpecification {
	s := &TraceDateRangeSpecification{}
	s.Where(func(t *Trace) bool {
		return !t.DateSale.Before(start) && !t.DateSale.After(end)
	})
	s.ApplyOrderByDescending(func(a, b *Trace) bool { return a.DateSale.Before(b.DateSale) })
	return s
}

// RecentTracesSpecification selects traces sold within the last given days,
// newest first.
type RecentTracesSpecification struct {
	specification.Base[*Trace]
}

// NewRecentTracesSpecification builds the recency trace specification.
func NewRecentTracesSpecification(days int) *RecentTracesSpecification {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	s := &RecentTracesSpecification{}
	s.Where(func(t *Trace) bool { return !t.DateSale.Before(cutoff) })
	s.ApplyOrderByDescending(func(a, b *Trace) bool { return a.DateSale.Before(b.DateSale) })
	return s
}

// HighTaxTracesSpecification selects traces taxed at or above a threshold,
// highest tax first.
type HighTaxTracesSpecification struct {
	specification.Base[*Trace]
}

// NewHighTaxTracesSpecification builds the high-tax trace specification.
func NewHighTaxTracesSpecification(taxThreshold float64) *HighTaxTracesSpecification {
	s := &HighTaxTracesSpecification{}
	s.Where(func(t *Trace) bool { return t.TaxPercentage >= taxThreshold })
	s.ApplyOrderByDescending(func(a, b *Trace) bool { return a.TaxPercentage < b.TaxPercentage })
	return s
}

// LatestTraceByPropertySpecification selects only the most recent sale trace
// of a property.
type LatestTraceByPropertySpecification struct {
	specification.Base[*Trace]
}

// NewLatestTraceByPropertySpecification builds the latest-trace specification.
func NewLatestTraceByPropertySpecification(propertyID uuid.UUID) *LatestTraceByPropertySpecification {
	s := &LatestTraceByPropertySpecification{}
	s.Where(func(t *Trace) bool { return t.PropertyID == propertyID })
	s.ApplyOrderByDescending(func(a, b *Trace) bool { return a.DateSale.Before(b.DateSale) })
	s.ApplyPaging(0, 1)
	return s
}
