package journal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-io/daybook-core/journal"
)

func sampleEntries() []entry {
	return []entry{
		{ID: "c", Title: "Water the ferns", Tags: []string{"plants"}, Status: "open", Day: day("2024-01-03")},
		{ID: "a", Title: "Morning pages", Note: "slept badly", Tags: []string{"writing", "habit"}, Status: "done", Favorite: true, Day: day("2024-01-01")},
		{ID: "b", Title: "Call grandma", Tags: []string{"family"}, Status: "done", Day: day("2024-01-02")},
		{ID: "d", Title: "morning run", Tags: []string{"habit"}, Status: "open", Day: day("2024-01-02")},
	}
}

func ids(recs []entry) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func TestEmptyQueryReturnsEverythingSorted(t *testing.T) {
	got := journal.Apply(entrySchema(), sampleEntries(), journal.Query{}, journal.SortDateAscending, nil, time.UTC)
	assert.Equal(t, []string{"a", "b", "d", "c"}, ids(got))
}

func TestEmptyLabelSetIsNoConstraint(t *testing.T) {
	s := entrySchema()

	// An explicitly empty selection must behave exactly like no selection.
	all := journal.Filter(s, sampleEntries(), journal.Query{Labels: []string{}}, time.UTC)
	assert.Len(t, all, 4)

	some := journal.Filter(s, sampleEntries(), journal.Query{Labels: []string{}, Statuses: []string{"done"}}, time.UTC)
	assert.ElementsMatch(t, []string{"a", "b"}, ids(some))
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	s := entrySchema()

	got := journal.Filter(s, sampleEntries(), journal.Query{Search: "MORNING"}, time.UTC)
	assert.ElementsMatch(t, []string{"a", "d"}, ids(got))

	// Matches note text too.
	got = journal.Filter(s, sampleEntries(), journal.Query{Search: "slept"}, time.UTC)
	assert.Equal(t, []string{"a"}, ids(got))

	// Whitespace-only search is no constraint.
	got = journal.Filter(s, sampleEntries(), journal.Query{Search: "   "}, time.UTC)
	assert.Len(t, got, 4)

	got = journal.Filter(s, sampleEntries(), journal.Query{Search: "no such text"}, time.UTC)
	assert.Empty(t, got)
}

func TestLabelsMatchByIntersection(t *testing.T) {
	got := journal.Filter(entrySchema(), sampleEntries(), journal.Query{Labels: []string{"habit", "family"}}, time.UTC)
	assert.ElementsMatch(t, []string{"a", "b", "d"}, ids(got))
}

func TestDimensionsCombineWithAnd(t *testing.T) {
	q := journal.Query{Labels: []string{"habit"}, Statuses: []string{"open"}}
	got := journal.Filter(entrySchema(), sampleEntries(), q, time.UTC)
	assert.Equal(t, []string{"d"}, ids(got))
}

func TestDateRangeInclusiveAndOpenEnded(t *testing.T) {
	s := entrySchema()
	from := journal.MustParseDate("2024-01-02")
	to := journal.MustParseDate("2024-01-02")

	got := journal.Filter(s, sampleEntries(), journal.Query{From: &from, To: &to}, time.UTC)
	assert.ElementsMatch(t, []string{"b", "d"}, ids(got))

	got = journal.Filter(s, sampleEntries(), journal.Query{From: &from}, time.UTC)
	assert.ElementsMatch(t, []string{"b", "d", "c"}, ids(got))

	got = journal.Filter(s, sampleEntries(), journal.Query{To: &to}, time.UTC)
	assert.ElementsMatch(t, []string{"a", "b", "d"}, ids(got))
}

func TestFavoriteOnly(t *testing.T) {
	got := journal.Filter(entrySchema(), sampleEntries(), journal.Query{FavoriteOnly: true}, time.UTC)
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestFilterNeverFails(t *testing.T) {
	got := journal.Filter(entrySchema(), nil, journal.Query{Search: "x"}, time.UTC)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSortOrders(t *testing.T) {
	s := entrySchema()
	recs := sampleEntries()

	asc := journal.Sort(s, recs, journal.SortDateAscending, nil)
	assert.Equal(t, []string{"a", "b", "d", "c"}, ids(asc))

	desc := journal.Sort(s, recs, journal.SortDateDescending, nil)
	assert.Equal(t, []string{"c", "b", "d", "a"}, ids(desc))

	alpha := journal.Sort(s, recs, journal.SortAlphabetical, nil)
	assert.Equal(t, []string{"b", "a", "d", "c"}, ids(alpha))

	status := journal.Sort(s, recs, journal.SortStatusOrder, []string{"open", "done"})
	assert.Equal(t, []string{"c", "d", "a", "b"}, ids(status))
}

func TestSortTiesBreakByID(t *testing.T) {
	s := entrySchema()
	recs := []entry{
		{ID: "z", Title: "same", Day: day("2024-01-01")},
		{ID: "a", Title: "same", Day: day("2024-01-01")},
		{ID: "m", Title: "same", Day: day("2024-01-01")},
	}

	first := journal.Sort(s, recs, journal.SortDateAscending, nil)
	second := journal.Sort(s, recs, journal.SortDateAscending, nil)

	assert.Equal(t, []string{"a", "m", "z"}, ids(first))
	assert.Equal(t, ids(first), ids(second))

	// Input order must not leak through on ties.
	reversed := []entry{recs[1], recs[2], recs[0]}
	third := journal.Sort(s, reversed, journal.SortDateAscending, nil)
	assert.Equal(t, ids(first), ids(third))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	recs := sampleEntries()
	require.Equal(t, "c", recs[0].ID)
	_ = journal.Sort(entrySchema(), recs, journal.SortDateAscending, nil)
	assert.Equal(t, "c", recs[0].ID)
}
