// ABOUTME: In-memory domain store owning every dashboard collection
// ABOUTME: Mutations replace whole collections and publish a new snapshot to subscribers
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Subscriber receives the snapshot before and after a successful mutation.
type Subscriber func(prev, next Snapshot)

type subscription struct {
	id int
	fn Subscriber
}

// Store is the single source of truth for the dashboard data. It holds state
// in memory only; a Store built twice starts from the same seed.
type Store struct {
	mu      sync.RWMutex
	snap    Snapshot
	subs    []subscription
	nextSub int

	newID func() string
	log   logrus.FieldLogger
}

// Option configures a Store at construction.
type Option func(*options)

type options struct {
	now      func() time.Time
	newID    func() string
	log      logrus.FieldLogger
	restored *Snapshot
	seed     bool
}

// WithClock sets the clock used for seed dates.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces the uuid-based id generator.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

// WithLogger sets the logger for mutation debug lines. The default discards.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) { o.log = log }
}

// WithSnapshot starts the store from a previously captured snapshot instead of the seed.
func WithSnapshot(snap Snapshot) Option {
	return func(o *options) { o.restored = &snap }
}

// WithoutSeed starts the store with empty collections.
func WithoutSeed() Option {
	return func(o *options) { o.seed = false }
}

// New builds a store seeded with the bundled sample data.
func New(opts ...Option) *Store {
	o := options{
		now:   time.Now,
		newID: uuid.NewString,
		seed:  true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		discard := logrus.New()
		discard.SetLevel(logrus.PanicLevel)
		o.log = discard
	}

	s := &Store{
		newID: o.newID,
		log:   o.log,
	}

	switch {
	case o.restored != nil:
		s.snap = *o.restored
	case o.seed:
		s.snap = seedSnapshot(o.now())
	default:
		s.snap = Snapshot{UserProfile: defaultProfile()}
	}

	return s
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Subscribe registers fn for every future mutation and returns a function
// that removes it. Callbacks run synchronously on the mutating goroutine,
// after the store lock is released, in registration order.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			kept := make([]subscription, 0, len(s.subs))
			for _, sub := range s.subs {
				if sub.id != id {
					kept = append(kept, sub)
				}
			}
			s.subs = kept
		})
	}
}

// mutate applies fn to a copy of the current snapshot. When fn reports a
// change, the copy becomes current and subscribers are notified; otherwise the
// store is left exactly as it was.
func (s *Store) mutate(c Collection, op, id string, fn func(next *Snapshot) bool) bool {
	s.mu.Lock()
	prev := s.snap
	next := prev
	if !fn(&next) {
		s.mu.Unlock()
		s.log.WithFields(logrus.Fields{"collection": c, "op": op, "id": id}).Debug("no matching record")
		return false
	}
	next.Version++
	next.Revisions.bump(c)
	s.snap = next
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"collection": c,
		"op":         op,
		"id":         id,
		"version":    next.Version,
	}).Debug("store mutated")

	for _, sub := range subs {
		sub.fn(prev, next)
	}
	return true
}

// uniqueID draws ids until one is unused in the collection.
func uniqueID[T any](s *Store, list []T, idOf func(T) string) string {
	for {
		id := s.newID()
		if indexOf(list, id, idOf) < 0 {
			return id
		}
	}
}

func indexOf[T any](list []T, id string, idOf func(T) string) int {
	for i, rec := range list {
		if idOf(rec) == id {
			return i
		}
	}
	return -1
}

func appendRecord[T any](list []T, rec T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, rec)
}

func replaceRecord[T any](list []T, id string, idOf func(T) string, apply func(T) T) ([]T, bool) {
	i := indexOf(list, id, idOf)
	if i < 0 {
		return list, false
	}
	out := make([]T, len(list))
	copy(out, list)
	out[i] = apply(out[i])
	return out, true
}

func removeRecord[T any](list []T, id string, idOf func(T) string) ([]T, bool) {
	i := indexOf(list, id, idOf)
	if i < 0 {
		return list, false
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:i]...)
	out = append(out, list[i+1:]...)
	return out, true
}

func findRecord[T any](list []T, id string, idOf func(T) string) (T, bool) {
	if i := indexOf(list, id, idOf); i >= 0 {
		return list[i], true
	}
	var zero T
	return zero, false
}
