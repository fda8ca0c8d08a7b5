package stats

import (
	"sort"
	"time"

	"github.com/daybook-io/daybook-core/journal"
)

// ByLabel counts records per label. A record carrying several labels counts
// once under each. Kinds without labels yield an empty map.
func ByLabel[T any](s journal.Schema[T], recs []T) map[string]int {
	counts := map[string]int{}
	if s.Labels == nil {
		return counts
	}
	for _, rec := range recs {
		for _, l := range s.Labels(rec) {
			counts[l]++
		}
	}
	return counts
}

// ByStatus counts records per status. Records with an empty status are
// skipped.
func ByStatus[T any](s journal.Schema[T], recs []T) map[string]int {
	counts := map[string]int{}
	if s.Status == nil {
		return counts
	}
	for _, rec := range recs {
		if st := s.Status(rec); st != "" {
			counts[st]++
		}
	}
	return counts
}

// ByWeekday counts records per day of the week, indexed by time.Weekday.
func ByWeekday[T any](s journal.Schema[T], recs []T, loc *time.Location) [7]int {
	var counts [7]int
	for _, rec := range recs {
		counts[journal.DateOf(s.Timestamp(rec), loc).Weekday()]++
	}
	return counts
}

// ByMonth counts records per calendar month, index 0 = January.
func ByMonth[T any](s journal.Schema[T], recs []T, loc *time.Location) [12]int {
	var counts [12]int
	for _, rec := range recs {
		counts[journal.DateOf(s.Timestamp(rec), loc).Month-1]++
	}
	return counts
}

// MostFrequent picks the key with the highest count. Ties go to the key
// appearing earliest in order (the dimension's declared sequence); keys not
// in order rank after those that are, lexicographically among themselves. A
// nil order makes the whole tie-break lexicographic. The choice is a total
// order, so repeated calls over the same counts always agree. Empty counts
// return ("", 0).
func MostFrequent(counts map[string]int, order []string) (string, int) {
	rank := make(map[string]int, len(order))
	for i, k := range order {
		rank[k] = i
	}
	pos := func(k string) int {
		if i, ok := rank[k]; ok {
			return i
		}
		return len(order)
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		if pa, pb := pos(a), pos(b); pa != pb {
			return pa < pb
		}
		return a < b
	})

	if len(keys) == 0 {
		return "", 0
	}
	return keys[0], counts[keys[0]]
}
