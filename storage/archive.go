// ABOUTME: Badger-backed archive of store snapshots
// ABOUTME: Writes changed collections as JSON values and restores them on startup
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/harperreed/gigdesk/store"
	"github.com/sirupsen/logrus"
)

const (
	collectionPrefix = "collection/"
	metaKey          = "meta"
)

// ErrNoArchive is returned by Load when nothing has been saved yet.
var ErrNoArchive = errors.New("no archived snapshot")

type meta struct {
	Version   uint64          `json:"version"`
	Revisions store.Revisions `json:"revisions"`
	SavedAt   time.Time       `json:"saved_at"`
}

// Archive persists snapshots in a badger database, one key per collection.
type Archive struct {
	db  *badger.DB
	log logrus.FieldLogger

	mu    sync.Mutex
	saved meta
	now   func() time.Time
}

// Open opens or creates the archive in dir. An empty dir keeps the archive in
// memory. Badger's own logging goes to log.
func Open(dir string, log logrus.FieldLogger) (*Archive, error) {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	opts := badger.DefaultOptions(dir).WithLogger(log)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive at %s: %w", dir, err)
	}
	return &Archive{db: db, log: log, now: time.Now}, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

// Load reads the archived snapshot, or returns ErrNoArchive.
func (a *Archive) Load() (store.Snapshot, error) {
	var snap store.Snapshot
	var m meta

	err := a.db.View(func(txn *badger.Txn) error {
		if err := getJSON(txn, metaKey, &m); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNoArchive
			}
			return err
		}
		for _, c := range store.Collections {
			target := collectionTarget(&snap, c)
			if err := getJSON(txn, collectionPrefix+string(c), target); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("failed to read %s: %w", c, err)
			}
		}
		return nil
	})
	if err != nil {
		return store.Snapshot{}, err
	}

	snap.Version = m.Version
	snap.Revisions = m.Revisions

	a.mu.Lock()
	a.saved = m
	a.mu.Unlock()
	return snap, nil
}

// Save writes every collection whose revision differs from the last saved
// snapshot. Snapshots no newer than the last save are ignored.
func (a *Archive) Save(snap store.Snapshot) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if snap.Version != 0 && snap.Version <= a.saved.Version {
		return nil
	}

	first := a.saved.SavedAt.IsZero()
	var written []store.Collection
	m := meta{Version: snap.Version, Revisions: snap.Revisions, SavedAt: a.now()}

	err := a.db.Update(func(txn *badger.Txn) error {
		for _, c := range store.Collections {
			if !first && snap.Revisions.Of(c) == a.saved.Revisions.Of(c) {
				continue
			}
			if err := setJSON(txn, collectionPrefix+string(c), collectionTarget(&snap, c)); err != nil {
				return fmt.Errorf("failed to write %s: %w", c, err)
			}
			written = append(written, c)
		}
		return setJSON(txn, metaKey, m)
	})
	if err != nil {
		return err
	}

	a.saved = m
	a.log.WithFields(logrus.Fields{
		"version":     snap.Version,
		"collections": written,
	}).Debug("snapshot archived")
	return nil
}

// Attach saves every snapshot the store publishes. Errors are logged and never
// reach the store. The returned function stops archiving.
func (a *Archive) Attach(s *store.Store) (detach func()) {
	return s.Subscribe(func(_, next store.Snapshot) {
		if err := a.Save(next); err != nil {
			a.log.WithError(err).WithField("version", next.Version).Error("failed to archive snapshot")
		}
	})
}

// Keys lists every stored key.
func (a *Archive) Keys() ([]string, error) {
	var keys []string
	err := a.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	return keys, err
}

// Reset wipes the archive.
func (a *Archive) Reset() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.db.DropAll(); err != nil {
		return fmt.Errorf("failed to reset archive: %w", err)
	}
	a.saved = meta{}
	return nil
}

func collectionTarget(snap *store.Snapshot, c store.Collection) any {
	switch c {
	case store.CollectionBids:
		return &snap.Bids
	case store.CollectionClients:
		return &snap.Clients
	case store.CollectionProjects:
		return &snap.Projects
	case store.CollectionDevelopers:
		return &snap.Developers
	case store.CollectionSnippets:
		return &snap.Snippets
	case store.CollectionTemplates:
		return &snap.Templates
	case store.CollectionExpenses:
		return &snap.Expenses
	case store.CollectionUserProfile:
		return &snap.UserProfile
	}
	return nil
}

func getJSON(txn *badger.Txn, key string, v any) error {
	item, err := txn.Get([]byte(key))
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func setJSON(txn *badger.Txn, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set([]byte(key), data)
}
