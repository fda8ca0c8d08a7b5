package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/daybook-io/daybook-core/kv"
)

// DatePolicy decides what an Add does when another record already occupies
// the same calendar day. Apps that model one entry per day (diary, mood,
// word-of-the-day) pick ReplaceSameDay or RejectSameDay; list-like apps
// (tasks, victories) pick AllowSameDay. The policy is always an explicit
// configuration choice, never inferred.
type DatePolicy int

const (
	// AllowSameDay permits any number of records per calendar day.
	AllowSameDay DatePolicy = iota
	// ReplaceSameDay makes Add silently replace an existing same-day record.
	ReplaceSameDay
	// RejectSameDay makes Add fail with DateTakenError on a same-day collision.
	RejectSameDay
)

func (p DatePolicy) String() string {
	switch p {
	case ReplaceSameDay:
		return "replaceSameDay"
	case RejectSameDay:
		return "rejectSameDay"
	default:
		return "allowSameDay"
	}
}

// Options configures one collection.
type Options struct {
	// Key is the key-value store key the collection persists under.
	Key string

	// Policy is the same-day Add behavior.
	Policy DatePolicy

	// StatusOrder is the declared status sequence, used by SortStatusOrder
	// and as the natural order for status distributions. Optional.
	StatusOrder []string

	// Location is the calendar used to collapse record timestamps onto
	// days. Defaults to time.UTC.
	Location *time.Location

	// Logger receives corrupt-load warnings and persist-failure errors.
	Logger zerolog.Logger

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// Repository is the single source of truth for one collection of records.
// After any mutating call returns, the persisted bytes and the in-memory
// collection agree, with one documented exception: when the store write
// itself fails, the in-memory mutation stands and the call reports
// PersistError, trading crash-safety for in-process consistency.
//
// A Repository performs no internal locking. The host owns one instance per
// collection key and must serialize calls to it; read-only calls (Query,
// All, Get, Stats inputs) only ever see complete states, since mutation is
// never concurrent with them under that obligation.
type Repository[T any] struct {
	schema Schema[T]
	opts   Options
	store  kv.Store
	codec  Codec[T]
	log    zerolog.Logger
	now    func() time.Time

	recs    []T
	byID    map[string]int
	corrupt bool
}

// NewRepository wires a repository for one collection. It does not touch the
// store; call Load before use.
func NewRepository[T any](schema Schema[T], store kv.Store, opts Options) (*Repository[T], error) {
	if err := schema.validate(); err != nil {
		return nil, err
	}
	if opts.Key == "" {
		return nil, fmt.Errorf("journal: collection key required")
	}
	if store == nil {
		return nil, fmt.Errorf("journal: kv store required")
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	log := opts.Logger.With().Str("collection", opts.Key).Logger()
	return &Repository[T]{
		schema: schema,
		opts:   opts,
		store:  store,
		log:    log,
		now:    now,
		recs:   []T{},
		byID:   map[string]int{},
	}, nil
}

// Policy reports the active same-day Add behavior.
func (r *Repository[T]) Policy() DatePolicy { return r.opts.Policy }

// Location reports the calendar the collection uses for day boundaries.
func (r *Repository[T]) Location() *time.Location { return r.opts.Location }

// CorruptData reports whether the last Load found undecodable bytes and
// degraded to an empty collection. It is a warning state, not an error: the
// repository is fully usable and the next successful persist clears it.
func (r *Repository[T]) CorruptData() bool { return r.corrupt }

// Load reads the persisted collection. A missing key is an empty collection,
// not an error. Undecodable bytes degrade to an empty collection with the
// corrupt-data flag set; Load never partially loads and never fails on bad
// data, only on a store read error.
func (r *Repository[T]) Load(ctx context.Context) error {
	data, err := r.store.Get(ctx, r.opts.Key)
	if err != nil {
		return PersistError{Key: r.opts.Key, Err: err}
	}
	r.reset()
	if data == nil {
		return nil
	}
	recs, err := r.codec.Decode(data)
	if err != nil {
		r.corrupt = true
		corruptLoadsTotal.WithLabelValues(r.opts.Key).Inc()
		r.log.Warn().Err(err).Msg("persisted collection is corrupt, starting empty")
		return nil
	}
	for i, rec := range recs {
		r.byID[r.schema.ID(rec)] = i
	}
	r.recs = recs
	return nil
}

func (r *Repository[T]) reset() {
	r.recs = []T{}
	r.byID = map[string]int{}
	r.corrupt = false
}

// Add inserts a record and persists. A record with an empty id gets a fresh
// uuid; a supplied id that is already present fails with DuplicateIDError.
// Same-day collisions follow the collection's DatePolicy. createdAt and
// updatedAt are stamped to the same instant. The stamped record is returned.
func (r *Repository[T]) Add(ctx context.Context, rec T) (T, error) {
	var zero T

	id := r.schema.ID(rec)
	if id == "" {
		id = uuid.NewString()
	} else if _, ok := r.byID[id]; ok {
		return zero, DuplicateIDError{ID: id}
	}

	now := r.now()
	rec = r.schema.Stamp(rec, id, now, now)

	if err := r.applyDatePolicy(rec, id); err != nil {
		return zero, err
	}

	r.byID[id] = len(r.recs)
	r.recs = append(r.recs, rec)
	mutationsTotal.WithLabelValues(r.opts.Key, "add").Inc()
	return rec, r.persist(ctx)
}

// Update replaces the record with rec's id wholesale, preserving createdAt
// and refreshing updatedAt, then persists. Absent id fails with
// NotFoundError and leaves the collection untouched. An update that moves
// the record onto another record's calendar day follows the collection's
// DatePolicy exactly like Add: RejectSameDay fails with DateTakenError,
// ReplaceSameDay evicts the occupant.
func (r *Repository[T]) Update(ctx context.Context, rec T) (T, error) {
	var zero T

	id := r.schema.ID(rec)
	i, ok := r.byID[id]
	if !ok {
		return zero, NotFoundError{ID: id}
	}

	created := r.schema.CreatedAt(r.recs[i])
	rec = r.schema.Stamp(rec, id, created, r.now())
	if err := r.applyDatePolicy(rec, id); err != nil {
		return zero, err
	}
	i = r.byID[id] // a ReplaceSameDay eviction may have shifted the slot
	r.recs[i] = rec
	mutationsTotal.WithLabelValues(r.opts.Key, "update").Inc()
	return rec, r.persist(ctx)
}

// Delete removes the record with the given id and persists. Deleting an
// absent id fails with NotFoundError; a second delete of the same id is
// therefore rejected without touching the collection.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return NotFoundError{ID: id}
	}
	r.removeByID(id)
	mutationsTotal.WithLabelValues(r.opts.Key, "delete").Inc()
	return r.persist(ctx)
}

// Toggle applies a narrow field flip (favorite, completion) to the record
// with the given id, refreshes updatedAt, and persists. The flip function
// receives and returns the record by value; identity and bookkeeping
// timestamps are re-stamped regardless of what it does, and a flip that
// moves the record's calendar day is subject to the collection's DatePolicy
// just like Update.
func (r *Repository[T]) Toggle(ctx context.Context, id string, flip func(T) T) (T, error) {
	var zero T

	i, ok := r.byID[id]
	if !ok {
		return zero, NotFoundError{ID: id}
	}
	rec := flip(r.recs[i])
	rec = r.schema.Stamp(rec, id, r.schema.CreatedAt(r.recs[i]), r.now())
	if err := r.applyDatePolicy(rec, id); err != nil {
		return zero, err
	}
	i = r.byID[id]
	r.recs[i] = rec
	mutationsTotal.WithLabelValues(r.opts.Key, "toggle").Inc()
	return rec, r.persist(ctx)
}

// Get returns the record with the given id.
func (r *Repository[T]) Get(id string) (T, bool) {
	if i, ok := r.byID[id]; ok {
		return r.recs[i], true
	}
	var zero T
	return zero, false
}

// All returns a copy of the collection in insertion order.
func (r *Repository[T]) All() []T {
	out := make([]T, len(r.recs))
	copy(out, r.recs)
	return out
}

// Len returns the number of records.
func (r *Repository[T]) Len() int { return len(r.recs) }

// Query runs the filter-then-sort pipeline over the current collection.
func (r *Repository[T]) Query(q Query, spec SortSpec) []T {
	return Apply(r.schema, r.recs, q, spec, r.opts.StatusOrder, r.opts.Location)
}

// Schema exposes the collection's schema for the statistics functions.
func (r *Repository[T]) Schema() Schema[T] { return r.schema }

// applyDatePolicy enforces the same-day rule for a record about to occupy
// its slot, ignoring the record's own id. Under RejectSameDay a collision
// fails before any mutation; under ReplaceSameDay the occupant is removed.
func (r *Repository[T]) applyDatePolicy(rec T, id string) error {
	if r.opts.Policy == AllowSameDay {
		return nil
	}
	day := r.schema.day(rec, r.opts.Location)
	prevID, ok := r.findByDay(day, id)
	if !ok {
		return nil
	}
	if r.opts.Policy == RejectSameDay {
		return DateTakenError{Day: day}
	}
	r.removeByID(prevID)
	return nil
}

func (r *Repository[T]) findByDay(day Date, excludeID string) (string, bool) {
	for _, rec := range r.recs {
		id := r.schema.ID(rec)
		if id == excludeID {
			continue
		}
		if r.schema.day(rec, r.opts.Location) == day {
			return id, true
		}
	}
	return "", false
}

func (r *Repository[T]) removeByID(id string) {
	i := r.byID[id]
	r.recs = append(r.recs[:i], r.recs[i+1:]...)
	delete(r.byID, id)
	for j := i; j < len(r.recs); j++ {
		r.byID[r.schema.ID(r.recs[j])] = j
	}
}

// persist writes the whole collection under the collection key. On store
// failure the in-memory state is kept and PersistError is returned.
func (r *Repository[T]) persist(ctx context.Context) error {
	data, err := r.codec.Encode(r.recs)
	if err != nil {
		persistFailuresTotal.WithLabelValues(r.opts.Key).Inc()
		r.log.Error().Err(err).Msg("encode collection failed")
		return PersistError{Key: r.opts.Key, Err: err}
	}
	if err := r.store.Set(ctx, r.opts.Key, data); err != nil {
		persistFailuresTotal.WithLabelValues(r.opts.Key).Inc()
		r.log.Error().Err(err).Msg("persist collection failed, in-memory state kept")
		return PersistError{Key: r.opts.Key, Err: err}
	}
	r.corrupt = false
	return nil
}
