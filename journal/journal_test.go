package journal_test

import (
	"time"

	"github.com/daybook-io/daybook-core/journal"
)

// entry is the concrete record type the engine tests run against. It is
// shaped like the diary/mood entries of the apps this module serves.
type entry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Note      string    `json:"note,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Status    string    `json:"status,omitempty"`
	Favorite  bool      `json:"favorite,omitempty"`
	Day       time.Time `json:"day"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func entrySchema() journal.Schema[entry] {
	return journal.Schema[entry]{
		ID:        func(e entry) string { return e.ID },
		Timestamp: func(e entry) time.Time { return e.Day },
		CreatedAt: func(e entry) time.Time { return e.CreatedAt },
		Stamp: func(e entry, id string, createdAt, updatedAt time.Time) entry {
			e.ID = id
			e.CreatedAt = createdAt
			e.UpdatedAt = updatedAt
			return e
		},
		Text:     func(e entry) string { return e.Title + " " + e.Note },
		Labels:   func(e entry) []string { return e.Tags },
		Status:   func(e entry) string { return e.Status },
		Favorite: func(e entry) bool { return e.Favorite },
	}
}

// day returns noon UTC of a YYYY-MM-DD day. Fixed instants keep time.Time
// comparable after a JSON round-trip (no monotonic clock reading).
func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.Add(12 * time.Hour)
}
