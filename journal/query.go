package journal

import (
	"sort"
	"strings"
	"time"
)

// Query narrows a collection along up to five independent dimensions.
// Every field is optional: a zero value means "no constraint on this
// dimension", never "match nothing". In particular an empty Labels or
// Statuses set does not filter — several of the apps this engine replaces
// conflated "nothing selected" with "select none", and the canonical rule
// here is that an empty selection selects everything.
type Query struct {
	// Search matches case-insensitively as a substring of the record's
	// searchable text.
	Search string

	// Labels passes a record whose label set intersects it.
	Labels []string

	// Statuses passes a record whose status is a member.
	Statuses []string

	// From and To bound the record's calendar day, inclusive on both ends;
	// nil leaves that end open.
	From *Date
	To   *Date

	// FavoriteOnly keeps only records with the favorite flag set.
	FavoriteOnly bool
}

// SortSpec selects the total order applied after filtering. Every order
// breaks ties by record id so repeated calls over identical input produce
// identical output.
type SortSpec int

const (
	SortDateAscending SortSpec = iota
	SortDateDescending
	SortAlphabetical
	SortStatusOrder
)

func (s SortSpec) String() string {
	switch s {
	case SortDateAscending:
		return "dateAscending"
	case SortDateDescending:
		return "dateDescending"
	case SortAlphabetical:
		return "alphabetical"
	case SortStatusOrder:
		return "statusOrder"
	default:
		return "unknown"
	}
}

// Filter returns the records passing every active dimension of q, in input
// order. Dimensions combine with AND; values inside one dimension with OR.
// Filter never fails: no records or no matches yields an empty slice.
func Filter[T any](s Schema[T], recs []T, q Query, loc *time.Location) []T {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		if matches(s, rec, q, loc) {
			out = append(out, rec)
		}
	}
	return out
}

func matches[T any](s Schema[T], rec T, q Query, loc *time.Location) bool {
	if t := strings.TrimSpace(q.Search); t != "" {
		if s.Text == nil {
			return false
		}
		if !strings.Contains(strings.ToLower(s.Text(rec)), strings.ToLower(t)) {
			return false
		}
	}
	if len(q.Labels) > 0 {
		if s.Labels == nil || !intersects(s.Labels(rec), q.Labels) {
			return false
		}
	}
	if len(q.Statuses) > 0 {
		if s.Status == nil || !contains(q.Statuses, s.Status(rec)) {
			return false
		}
	}
	if q.From != nil || q.To != nil {
		day := s.day(rec, loc)
		if q.From != nil && day.Before(*q.From) {
			return false
		}
		if q.To != nil && day.After(*q.To) {
			return false
		}
	}
	if q.FavoriteOnly {
		if s.Favorite == nil || !s.Favorite(rec) {
			return false
		}
	}
	return true
}

func intersects(have, want []string) bool {
	for _, w := range want {
		if contains(have, w) {
			return true
		}
	}
	return false
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Sort returns a sorted copy of recs under spec. statusOrder is the
// collection's declared status sequence and is only consulted for
// SortStatusOrder; statuses not in it sort after those that are.
func Sort[T any](s Schema[T], recs []T, spec SortSpec, statusOrder []string) []T {
	out := make([]T, len(recs))
	copy(out, recs)

	less := func(a, b T) bool {
		switch spec {
		case SortDateDescending:
			ta, tb := s.Timestamp(a), s.Timestamp(b)
			if !ta.Equal(tb) {
				return ta.After(tb)
			}
		case SortAlphabetical:
			var xa, xb string
			if s.Text != nil {
				xa, xb = strings.ToLower(s.Text(a)), strings.ToLower(s.Text(b))
			}
			if xa != xb {
				return xa < xb
			}
		case SortStatusOrder:
			ra, rb := statusRank(s, a, statusOrder), statusRank(s, b, statusOrder)
			if ra != rb {
				return ra < rb
			}
		default: // SortDateAscending
			ta, tb := s.Timestamp(a), s.Timestamp(b)
			if !ta.Equal(tb) {
				return ta.Before(tb)
			}
		}
		return s.ID(a) < s.ID(b)
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func statusRank[T any](s Schema[T], rec T, order []string) int {
	if s.Status == nil {
		return len(order)
	}
	st := s.Status(rec)
	for i, o := range order {
		if o == st {
			return i
		}
	}
	return len(order)
}

// Apply runs the full pipeline: filter first, then sort. The phases are
// never composed the other way around.
func Apply[T any](s Schema[T], recs []T, q Query, spec SortSpec, statusOrder []string, loc *time.Location) []T {
	return Sort(s, Filter(s, recs, q, loc), spec, statusOrder)
}
