package journal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-io/daybook-core/journal"
)

func TestDateOfRespectsLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 02:30 UTC on March 2nd is still March 1st in New York.
	instant := time.Date(2024, time.March, 2, 2, 30, 0, 0, time.UTC)

	assert.Equal(t, journal.MustParseDate("2024-03-02"), journal.DateOf(instant, time.UTC))
	assert.Equal(t, journal.MustParseDate("2024-03-01"), journal.DateOf(instant, ny))
}

func TestDateArithmetic(t *testing.T) {
	d := journal.MustParseDate("2024-01-31")

	assert.Equal(t, journal.MustParseDate("2024-02-01"), d.AddDays(1))
	assert.Equal(t, journal.MustParseDate("2024-01-28"), d.AddDays(-3))

	// Leap year boundary.
	assert.Equal(t, journal.MustParseDate("2024-03-01"), journal.MustParseDate("2024-02-29").AddDays(1))

	assert.Equal(t, 31, journal.MustParseDate("2024-02-01").DaysSince(journal.MustParseDate("2024-01-01")))
	assert.Equal(t, -1, journal.MustParseDate("2024-01-01").DaysSince(journal.MustParseDate("2024-01-02")))
}

func TestDateOrdering(t *testing.T) {
	a := journal.MustParseDate("2023-12-31")
	b := journal.MustParseDate("2024-01-01")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))

	assert.Equal(t, time.Monday, journal.MustParseDate("2024-01-01").Weekday())
	assert.Equal(t, "2024-01-05", journal.MustParseDate("2024-01-05").String())
	assert.True(t, journal.Date{}.IsZero())
}

func TestMustParseDatePanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { journal.MustParseDate("not-a-date") })
}
