// Package specification implements a composable, persistence-agnostic query
// description: a predicate list (ANDed together), eager-load directives, at
// most one effective ordering, and flag-gated paging.
package specification

// Predicate is a single filter over T. A specification's criteria are kept as
// an ordered list of independent predicates which the evaluator ANDs together;
// AND is commutative, so composition is order-independent.
type Predicate[T any] func(T) bool

// Less orders two values; the evaluator uses it for ascending sorts and its
// inverse for descending ones.
type Less[T any] func(a, b T) bool

// Specification describes a query over T without committing to a persistence
// engine. Implementations are immutable once constructed and safe to share
// across concurrent reads.
type Specification[T any] interface {
	// Criteria returns the filter predicates. An empty list matches everything.
	Criteria() []Predicate[T]
	// Includes returns the names of relations to eager-load.
	Includes() []string
	// OrderBy returns the ascending ordering, or nil.
	OrderBy() Less[T]
	// OrderByDescending returns the descending ordering, or nil.
	// When both orderings are set, ascending wins (evaluator precedence).
	OrderByDescending() Less[T]
	// Skip returns the number of leading results to drop when paging is enabled.
	Skip() int
	// Take returns the maximum number of results when paging is enabled;
	// zero means no limit.
	Take() int
	// IsPagingEnabled reports whether Skip/Take apply at all.
	IsPagingEnabled() bool
}

// Base is the embeddable building block for concrete specifications. Concrete
// types configure it during construction and expose it read-only afterwards.
type Base[T any] struct {
	criteria      []Predicate[T]
	includes      []string
	orderBy       Less[T]
	orderByDesc   Less[T]
	skip          int
	take          int
	pagingEnabled bool
}

// Where appends a predicate to the criteria list.
func (b *Base[T]) Where(p Predicate[T]) {
	b.criteria = append(b.criteria, p)
}

// AddInclude records a relation name for eager loading.
func (b *Base[T]) AddInclude(relation string) {
	b.includes = append(b.includes, relation)
}

// ApplyOrderBy sets the ascending ordering.
func (b *Base[T]) ApplyOrderBy(less Less[T]) {
	b.orderBy = less
}

// ApplyOrderByDescending sets the descending ordering.
func (b *Base[T]) ApplyOrderByDescending(less Less[T]) {
	b.orderByDesc = less
}

// ApplyPaging enables paging with the given skip and take.
func (b *Base[T]) ApplyPaging(skip, take int) {
	b.skip = skip
	b.take = take
	b.pagingEnabled = true
}

// Criteria returns the filter predicates in the order they were added.
func (b *Base[T]) Criteria() []Predicate[T] { return b.criteria }

// Includes returns the recorded eager-load relation names.
func (b *Base[T]) Includes() []string { return b.includes }

// OrderBy returns the ascending ordering, or nil.
func (b *Base[T]) OrderBy() Less[T] { return b.orderBy }

// OrderByDescending returns the descending ordering, or nil.
func (b *Base[T]) OrderByDescending() Less[T] { return b.orderByDesc }

// Skip returns the configured skip.
func (b *Base[T]) Skip() int { return b.skip }

// Take returns the configured take; zero means no limit.
func (b *Base[T]) Take() int { return b.take }

// IsPagingEnabled reports whether ApplyPaging was called.
func (b *Base[T]) IsPagingEnabled() bool { return b.pagingEnabled }

// Matches reports whether item satisfies every criterion of spec.
func Matches[T any](spec Specification[T], item T) bool {
	for _, p := range spec.Criteria() {
		if !p(item) {
			return false
		}
	}
	return true
}
