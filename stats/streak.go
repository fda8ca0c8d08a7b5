// Package stats computes streaks, distributions and period aggregates over a
// record collection or a pre-filtered subset. Every function is pure: no
// mutation, no I/O, calendar location and "today" passed in explicitly so
// results reproduce in tests.
package stats

import (
	"sort"
	"time"

	"github.com/daybook-io/daybook-core/journal"
)

// Days returns the distinct calendar days covered by recs, ascending.
func Days[T any](s journal.Schema[T], recs []T, loc *time.Location) []journal.Date {
	seen := make(map[journal.Date]struct{}, len(recs))
	for _, rec := range recs {
		seen[journal.DateOf(s.Timestamp(rec), loc)] = struct{}{}
	}
	days := make([]journal.Date, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// CurrentStreak counts consecutive calendar days with at least one record,
// walking backward from today. A record-less today does not break the
// streak: counting then starts from yesterday, so an entry made late enough
// to miss the day boundary still shows an unbroken run. Empty input is 0.
func CurrentStreak[T any](s journal.Schema[T], recs []T, today journal.Date, loc *time.Location) int {
	days := Days(s, recs, loc)
	if len(days) == 0 {
		return 0
	}
	have := make(map[journal.Date]struct{}, len(days))
	for _, d := range days {
		have[d] = struct{}{}
	}

	start := today
	if _, ok := have[start]; !ok {
		start = today.AddDays(-1)
		if _, ok := have[start]; !ok {
			return 0
		}
	}

	n := 0
	for d := start; ; d = d.AddDays(-1) {
		if _, ok := have[d]; !ok {
			break
		}
		n++
	}
	return n
}

// LongestStreak returns the length of the longest run of consecutive
// calendar days, each with at least one record, anywhere in the collection.
// Only the length is reported; equal-length runs are indistinguishable.
func LongestStreak[T any](s journal.Schema[T], recs []T, loc *time.Location) int {
	days := Days(s, recs, loc)
	if len(days) == 0 {
		return 0
	}
	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].DaysSince(days[i-1]) == 1 {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}
	return best
}
