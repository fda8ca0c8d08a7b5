package stats

import (
	"time"

	"github.com/daybook-io/daybook-core/journal"
)

// Summary aggregates a date-bounded slice of a collection.
type Summary struct {
	// Count is the number of records in range.
	Count int
	// ActiveDays is the number of distinct calendar days with a record.
	ActiveDays int
	// SpanDays is the inclusive length of the period in days. With an
	// open-ended bound it is measured from the earliest to the latest
	// record in range.
	SpanDays int
	// PerDay is Count / SpanDays.
	PerDay float64
	// PerWeek is PerDay scaled to a 7-day week.
	PerWeek float64
}

// Period computes totals and per-day/per-week averages for the records whose
// day falls in [from, to]; either bound may be nil for open-ended. The range
// is applied with the same filter the query pipeline uses, so a statistics
// panel and a filtered list view can never disagree about what is in range.
func Period[T any](s journal.Schema[T], recs []T, from, to *journal.Date, loc *time.Location) Summary {
	in := journal.Filter(s, recs, journal.Query{From: from, To: to}, loc)
	if len(in) == 0 {
		return Summary{}
	}

	days := Days(s, in, loc)

	var sum Summary
	sum.Count = len(in)
	sum.ActiveDays = len(days)

	lo, hi := days[0], days[len(days)-1]
	if from != nil {
		lo = *from
	}
	if to != nil {
		hi = *to
	}
	sum.SpanDays = hi.DaysSince(lo) + 1
	if sum.SpanDays > 0 {
		sum.PerDay = float64(sum.Count) / float64(sum.SpanDays)
		sum.PerWeek = sum.PerDay * 7
	}
	return sum
}
