// Package jsonfile implements the record store: one whole JSON document per
// collection, loaded and rewritten in full on every mutation. The document
// shape is {"<collection>": [record, ...]}, pretty-printed with four-space
// indent to stay byte-compatible with files produced by earlier versions of
// the service.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/dropDatabas3/userhabitat/internal/util/atomicwrite"
)

// Store owns the on-disk document for one collection. A mutex serializes
// load-mutate-save sequences so two requests cannot interleave on the same
// collection; the write itself is an atomic replace, so a failed save leaves
// the previous document untouched.
type Store[T any] struct {
	path string
	name string

	mu sync.Mutex
}

// New binds a store to a document path and its collection name (the single
// top-level key of the document, e.g. "users").
func New[T any](path, name string) *Store[T] {
	return &Store[T]{path: path, name: name}
}

// Path returns the backing document path.
func (s *Store[T]) Path() string { return s.path }

// LoadAll reads the entire document and returns the named array. A missing
// file is an empty collection (first boot); a malformed one is an error.
func (s *Store[T]) LoadAll() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// SaveAll rewrites the document with the given records.
func (s *Store[T]) SaveAll(records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(records)
}

// Update runs fn under the store lock with the freshly loaded collection and
// persists whatever fn returns. If fn fails nothing is written. This is the
// API the repositories use for every mutation so the read-modify-write is a
// single critical section.
func (s *Store[T]) Update(fn func(records []T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadLocked()
	if err != nil {
		return err
	}
	out, err := fn(records)
	if err != nil {
		return err
	}
	return s.saveLocked(out)
}

func (s *Store[T]) loadLocked() ([]T, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var doc map[string][]T
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	records, ok := doc[s.name]
	if !ok || records == nil {
		return []T{}, nil
	}
	return records, nil
}

func (s *Store[T]) saveLocked(records []T) error {
	if records == nil {
		records = []T{}
	}
	b, err := json.MarshalIndent(map[string][]T{s.name: records}, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", s.name, err)
	}
	if err := atomicwrite.AtomicWriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
