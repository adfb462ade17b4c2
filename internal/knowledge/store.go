package knowledge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is an in-memory mapping from source ID to Record, persisted
// write-through to a single JSON file. Records keep their insertion order so
// that search tie-breaking stays deterministic across restarts.
type Store struct {
	path string

	mu      sync.RWMutex
	records map[string]*Record
	order   []string
}

// NewStore creates a store backed by the given JSON file path.
// Call Load before use.
func NewStore(path string) *Store {
	return &Store{
		path:    path,
		records: make(map[string]*Record),
	}
}

// Load reads the persisted knowledge base into memory. A missing file is not
// an error: the store starts empty. Any other read or parse failure returns a
// PersistenceError; callers are expected to log it and continue with an empty
// store rather than fail startup.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]*Record)
	s.order = nil

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &PersistenceError{Op: "load", Path: s.path, Cause: err}
	}

	records, order, err := decodeOrdered(data)
	if err != nil {
		return &PersistenceError{Op: "load", Path: s.path, Cause: err}
	}

	s.records = records
	s.order = order
	return nil
}

// Upsert inserts or replaces the record keyed by its source ID and persists
// the whole mapping back to disk. Last write wins on source ID collision.
func (s *Store) Upsert(rec *Record) error {
	if rec == nil || rec.Source == "" {
		return &PersistenceError{Op: "save", Path: s.path, Cause: fmt.Errorf("record has no source ID")}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[rec.Source]; !exists {
		s.order = append(s.order, rec.Source)
	}
	s.records[rec.Source] = rec

	return s.persistLocked()
}

// Get returns the record for a source ID, or false if absent.
func (s *Store) Get(sourceID string) (*Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[sourceID]
	return rec, ok
}

// All returns the records in insertion order.
func (s *Store) All() []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Record, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.records[key])
	}
	return out
}

// Size returns the number of records in the store.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// persistLocked writes the whole mapping to disk atomically (temp file +
// rename). Caller must hold the write lock.
func (s *Store) persistLocked() error {
	data, err := s.encodeOrderedLocked()
	if err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Cause: err}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Cause: err}
	}

	tmp, err := os.CreateTemp(dir, ".knowledge-base-*.json")
	if err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Cause: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &PersistenceError{Op: "save", Path: s.path, Cause: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &PersistenceError{Op: "save", Path: s.path, Cause: err}
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &PersistenceError{Op: "save", Path: s.path, Cause: err}
	}
	return nil
}

// encodeOrderedLocked serializes the mapping as a JSON object whose keys
// appear in insertion order. encoding/json map marshaling sorts keys, which
// would lose the order the file needs to round-trip.
func (s *Store) encodeOrderedLocked() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, key := range s.order {
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		recJSON, err := json.MarshalIndent(s.records[key], "  ", "  ")
		if err != nil {
			return nil, err
		}
		buf.WriteString("  ")
		buf.Write(keyJSON)
		buf.WriteString(": ")
		buf.Write(recJSON)
		if i < len(s.order)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// decodeOrdered parses a JSON object of records, preserving key order.
func decodeOrdered(data []byte) (map[string]*Record, []string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse knowledge base: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("knowledge base file is not a JSON object")
	}

	records := make(map[string]*Record)
	var order []string

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse knowledge base key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected knowledge base key token: %v", keyTok)
		}

		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return nil, nil, fmt.Errorf("failed to parse record %q: %w", key, err)
		}

		if _, exists := records[key]; !exists {
			order = append(order, key)
		}
		records[key] = &rec
	}

	return records, order, nil
}
