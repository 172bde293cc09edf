package owner

import (
	"strings"

	"github.com/diegorozoc/million/pkg/specification"
)

// Filter carries the optional criteria for searching owners. Zero-valued
// fields are not applied.
type Filter struct {
	Name       string
	AdultsOnly bool
	MinAge     *int
	MaxAge     *int
}

// FilterSpecification filters owners by any combination of name, adulthood,
// and age range, ordered by name.
type FilterSpecification struct {
	specification.Base[*Owner]
}

// NewFilterSpecification builds the owner filter specification. Each supplied
// filter contributes one predicate; the criteria list starts empty (match
// all) and predicates are ANDed by the evaluator.
func NewFilterSpecification(f Filter) *FilterSpecification {
	s := &FilterSpecification{}
	if strings.TrimSpace(f.Name) != "" {
		name := strings.ToLower(f.Name)
		s.Where(func(o *Owner) bool {
			return strings.Contains(strings.ToLower(o.Name), name)
		})
	}
	if f.AdultsOnly {
		s.Where(func(o *Owner) bool { return o.DateOfBirth.IsAdult() })
	}
	if f.MinAge != nil {
		floor := *f.MinAge
		s.Where(func(o *Owner) bool { return o.DateOfBirth.Age() >= floor })
	}
	if f.MaxAge != nil {
		ceil := *f.MaxAge
		s.Where(func(o *Owner) bool { return o.DateOfBirth.Age() <= ceil })
	}
	s.ApplyOrderBy(func(a, b *Owner) bool { return a.Name < b.Name })
	return s
}
