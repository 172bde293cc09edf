package specification_test

import (
	"testing"

	"github.com/diegorozoc/million/pkg/specification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	id      int
	country string
	year    int
}

type recordSpec struct {
	specification.Base[record]
}

func byCountry(c string) specification.Predicate[record] {
	return func(r record) bool { return r.country == c }
}

func byYear(y int) specification.Predicate[record] {
	return func(r record) bool { return r.year == y }
}

var fixtures = []record{
	{1, "USA", 2020},
	{2, "USA", 2021},
	{3, "Canada", 2019},
}

func TestEmptyCriteriaMatchesEverything(t *testing.T) {
	t.Parallel()
	spec := &recordSpec{}
	got := specification.Evaluate(fixtures, spec)
	assert.Equal(t, fixtures, got)
}

func TestCriteriaAreANDedAndOrderIndependent(t *testing.T) {
	t.Parallel()
	filters := []specification.Predicate[record]{byCountry("USA"), byYear(2020)}

	// Both construction orders must yield the same result set.
	orders := [][]int{{0, 1}, {1, 0}}
	for _, order := range orders {
		spec := &recordSpec{}
		for _, i := range order {
			spec.Where(filters[i])
		}
		got := specification.Evaluate(fixtures, spec)
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].id)
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()
	spec := &recordSpec{}
	spec.Where(byCountry("Canada"))

	assert.True(t, specification.Matches[record](spec, fixtures[2]))
	assert.False(t, specification.Matches[record](spec, fixtures[0]))
}

func TestEvaluatorPipelineOrder(t *testing.T) {
	t.Parallel()
	var calls []string

	spec := &recordSpec{}
	spec.Where(func(r record) bool { return r.country == "USA" })
	spec.AddInclude("Owner")
	spec.ApplyOrderByDescending(func(a, b record) bool { return a.year < b.year })
	spec.ApplyPaging(0, 1)

	load := func(items []record, relation string) []record {
		calls = append(calls, relation)
		// The loader must see the already-filtered set.
		assert.Len(t, items, 2)
		return items
	}

	got := specification.EvaluateWith(fixtures, spec, load)
	assert.Equal(t, []string{"Owner"}, calls)
	require.Len(t, got, 1)
	assert.Equal(t, 2021, got[0].year, "descending order then take 1 keeps the newest")
}

func TestAscendingWinsWhenBothOrderingsSet(t *testing.T) {
	t.Parallel()
	spec := &recordSpec{}
	spec.ApplyOrderBy(func(a, b record) bool { return a.year < b.year })
	spec.ApplyOrderByDescending(func(a, b record) bool { return a.year < b.year })

	got := specification.Evaluate(fixtures, spec)
	require.Len(t, got, 3)
	assert.Equal(t, []int{2019, 2020, 2021}, []int{got[0].year, got[1].year, got[2].year})
}

func TestPagingIgnoredWhenFlagDisabled(t *testing.T) {
	t.Parallel()
	spec := &recordSpec{}
	// Skip/take only apply when ApplyPaging enabled the flag; setting them any
	// other way is impossible, so the disabled case is the zero-value Base.
	got := specification.Evaluate(fixtures, spec)
	assert.Len(t, got, 3)
}

func TestPagingSkipAndTake(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		skip int
		take int
		want []int
	}{
		{"skip one", 1, 0, []int{2, 3}},
		{"take two", 0, 2, []int{1, 2}},
		{"skip then take", 1, 1, []int{2}},
		{"skip past end", 5, 0, []int{}},
		{"zero take means no limit", 0, 0, []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := &recordSpec{}
			spec.ApplyPaging(tt.skip, tt.take)
			got := specification.Evaluate(fixtures, spec)
			ids := make([]int, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.id)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestEvaluateDoesNotMutateSource(t *testing.T) {
	t.Parallel()
	source := []record{{3, "USA", 2021}, {1, "USA", 2019}, {2, "USA", 2020}}
	spec := &recordSpec{}
	spec.ApplyOrderBy(func(a, b record) bool { return a.year < b.year })

	_ = specification.Evaluate(source, spec)
	assert.Equal(t, []record{{3, "USA", 2021}, {1, "USA", 2019}, {2, "USA", 2020}}, source)
}

func TestCount(t *testing.T) {
	t.Parallel()
	spec := &recordSpec{}
	spec.Where(byCountry("USA"))
	spec.ApplyPaging(0, 1) // paging must not affect counting

	assert.Equal(t, 2, specification.Count(fixtures, spec))
}
