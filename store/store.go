// ABOUTME: Local persistence store for the contact list
// ABOUTME: Owns the canonical in-memory list, mirrored wholesale into a Badger blob
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/harperreed/snapcard/models"
)

// contactsKey is the single key the whole list is serialized under. There
// is no schema version field; the blob is rewritten wholesale on every
// mutation.
var contactsKey = []byte("contacts")

// Store owns the canonical contact list. Mutations update the in-memory
// list first, then rewrite the persisted blob. When the underlying database
// could not be opened the store runs memory-only: loads yield empty and
// saves are no-ops.
type Store struct {
	mu       sync.Mutex
	db       *badger.DB
	contacts []models.Contact
}

// Open loads the previously persisted list from <dir>/contacts.db. A failed
// open is not fatal: the store degrades to memory-only and logs once.
// Opening never writes, so pre-existing data cannot be clobbered before it
// is loaded.
func Open(dir string) (*Store, error) {
	s := &Store{}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("warning: contact storage unavailable (%v), running memory-only", err)
		return s, nil
	}

	opts := badger.DefaultOptions(filepath.Join(dir, "contacts.db")).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Printf("warning: contact storage unavailable (%v), running memory-only", err)
		return s, nil
	}
	s.db = db

	if err := s.load(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}

	return s, nil
}

func (s *Store) load() error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(contactsKey)
		if err == badger.ErrKeyNotFound {
			return nil // first run, nothing stored yet
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &s.contacts)
		})
	})
}

// save rewrites the full list unconditionally. Callers hold s.mu.
func (s *Store) save() {
	if s.db == nil {
		return
	}

	data, err := json.Marshal(s.contacts)
	if err != nil {
		log.Printf("warning: failed to serialize contacts: %v", err)
		return
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(contactsKey, data)
	})
	if err != nil {
		log.Printf("warning: failed to persist contacts: %v", err)
	}
}

// List returns a copy of the list, newest first.
func (s *Store) List() []models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Get returns the contact with the given id, or nil if absent.
func (s *Store) Get(id string) *models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contacts {
		if s.contacts[i].ID == id {
			c := s.contacts[i]
			return &c
		}
	}
	return nil
}

// Add prepends the contact (newest first) and persists the updated list.
func (s *Store) Add(contact models.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contacts = append([]models.Contact{contact}, s.contacts...)
	s.save()
}

// Remove deletes the contact with the given id, preserving the relative
// order of the rest, and persists. It reports whether anything was removed.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			s.save()
			return true
		}
	}
	return false
}

// Len returns the number of stored contacts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contacts)
}

// Close releases the underlying database, if any.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
