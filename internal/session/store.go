// Package session keeps each visitor's contact wizard between requests.
// Drafts live in memory only and disappear after a period of inactivity.
package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fusionprintdesign/fusionsite/internal/logging"
	"github.com/fusionprintdesign/fusionsite/internal/wizard"
)

// Store maps session IDs to wizards.
type Store interface {
	// Update runs fn on the session's wizard, creating a fresh one if the
	// session is unknown or expired. Calls for one ID are serialised.
	Update(id string, fn func(*wizard.Wizard) error) error
	// Lookup runs fn only when the session exists and reports whether it did.
	Lookup(id string, fn func(*wizard.Wizard) error) (bool, error)
	Delete(id string)
	Len() int
	Close() error
}

// Config controls expiry and capacity of a MemoryStore.
type Config struct {
	TTL             time.Duration
	CleanupInterval time.Duration
	MaxEntries      int
}

// entry holds one visitor's wizard. mu guards wizard and is held for a whole
// Update, including quote delivery; lastAccess is read without it.
type entry struct {
	mu         sync.Mutex
	wizard     *wizard.Wizard
	lastAccess atomic.Int64
}

func (e *entry) touch(t time.Time) { e.lastAccess.Store(t.UnixNano()) }

func (e *entry) lastUsed() time.Time { return time.Unix(0, e.lastAccess.Load()) }

// MemoryStore is an in-process Store with idle expiry.
type MemoryStore struct {
	entries   map[string]*entry
	mu        sync.RWMutex
	config    Config
	newWizard func() *wizard.Wizard
	logger    logging.Logger
	now       func() time.Time

	cleaner   *time.Ticker
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewMemoryStore creates a store and starts its janitor. Close stops it.
func NewMemoryStore(config Config, newWizard func() *wizard.Wizard, logger logging.Logger) *MemoryStore {
	if config.TTL <= 0 {
		config.TTL = 30 * time.Minute
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = 5 * time.Minute
	}
	if config.MaxEntries <= 0 {
		config.MaxEntries = 10000
	}
	if logger == nil {
		logger = logging.Nop()
	}

	s := &MemoryStore{
		entries:   make(map[string]*entry),
		config:    config,
		newWizard: newWizard,
		logger:    logger.WithComponent("session_store"),
		now:       time.Now,
		cleaner:   time.NewTicker(config.CleanupInterval),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}

	go s.cleanupExpired()

	return s
}

func (s *MemoryStore) expired(e *entry, now time.Time) bool {
	return now.Sub(e.lastUsed()) > s.config.TTL
}

// getOrCreate returns the entry for id with its mutex held.
func (s *MemoryStore) getOrCreate(id string) *entry {
	s.mu.Lock()
	e, ok := s.entries[id]
	if !ok {
		if len(s.entries) >= s.config.MaxEntries {
			s.evictOldestLocked()
		}
		e = &entry{wizard: s.newWizard()}
		e.touch(s.now())
		s.entries[id] = e
	}
	s.mu.Unlock()

	e.mu.Lock()
	now := s.now()
	if s.expired(e, now) {
		e.wizard = s.newWizard()
	}
	e.touch(now)

	return e
}

// Update implements Store.
func (s *MemoryStore) Update(id string, fn func(*wizard.Wizard) error) error {
	e := s.getOrCreate(id)
	defer e.mu.Unlock()

	return fn(e.wizard)
}

// Lookup implements Store.
func (s *MemoryStore) Lookup(id string, fn func(*wizard.Wizard) error) (bool, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := s.now()
	if s.expired(e, now) {
		return false, nil
	}
	e.touch(now)

	return true, fn(e.wizard)
}

// Delete implements Store.
func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Len implements Store.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// evictOldestLocked drops the least recently used idle entry. s.mu must be
// held. Entries with an Update in flight are skipped, never waited on.
func (s *MemoryStore) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, e := range s.entries {
		if !e.mu.TryLock() {
			continue
		}
		e.mu.Unlock()
		last := e.lastUsed()
		if oldestID == "" || last.Before(oldest) {
			oldestID, oldest = id, last
		}
	}
	if oldestID != "" {
		delete(s.entries, oldestID)
	}
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *MemoryStore) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, id)
			removed++
		}
	}

	return removed
}

func (s *MemoryStore) cleanupExpired() {
	defer close(s.done)

	for {
		select {
		case <-s.cleaner.C:
			if n := s.Sweep(); n > 0 {
				s.logger.Debug(context.Background(), "Expired sessions removed", "count", n)
			}
		case <-s.stop:
			return
		}
	}
}

// Close stops the janitor and waits for it to exit.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() {
		s.cleaner.Stop()
		close(s.stop)
	})
	<-s.done

	return nil
}
