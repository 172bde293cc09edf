package specification

import "sort"

// Loader hydrates one named relation on a result set. Persistence adapters
// supply it so eager loading happens on filtered results only; in-memory
// callers can pass nil.
type Loader[T any] func(items []T, relation string) []T

// Evaluate applies spec to source without a relation loader.
func Evaluate[T any](source []T, spec Specification[T]) []T {
	return EvaluateWith(source, spec, nil)
}

// EvaluateWith applies spec to source with a fixed pipeline, in this order:
// filter by criteria, apply eager-load directives, apply ordering, apply
// paging. The pipeline never reorders and the specification is never mutated.
//
// Ordering prefers ascending when both orderings are set. Paging applies only
// when the spec's paging flag is enabled; skip then take, where a zero take
// means no limit. The source slice is not modified.
func EvaluateWith[T any](source []T, spec Specification[T], load Loader[T]) []T {
	// 1. Filter
	items := make([]T, 0, len(source))
	for _, item := range source {
		if Matches(spec, item) {
			items = append(items, item)
		}
	}

	// 2. Eager-load directives
	if load != nil {
		for _, relation := range spec.Includes() {
			items = load(items, relation)
		}
	}

	// 3. Ordering: ascending wins when both are set
	if less := spec.OrderBy(); less != nil {
		sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
	} else if less := spec.OrderByDescending(); less != nil {
		sort.SliceStable(items, func(i, j int) bool { return less(items[j], items[i]) })
	}

	// 4. Paging
	if spec.IsPagingEnabled() {
		skip := spec.Skip()
		if skip < 0 {
			skip = 0
		}
		if skip >= len(items) {
			return []T{}
		}
		items = items[skip:]
		if take := spec.Take(); take > 0 && take < len(items) {
			items = items[:take]
		}
	}
	return items
}

// Count returns how many items of source satisfy spec's criteria. Ordering
// and paging do not affect the count.
func Count[T any](source []T, spec Specification[T]) int {
	n := 0
	for _, item := range source {
		if Matches(spec, item) {
			n++
		}
	}
	return n
}
