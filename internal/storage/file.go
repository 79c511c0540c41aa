package storage

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"
)

// FileStore persists all keys in a single JSON file, written synchronously
// on every mutation the way local storage is. A file that fails to parse is
// discarded and logged; it never surfaces as an error to the caller.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// OpenFile loads the store at path, starting empty if the file is missing
// or corrupted.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		log.Printf("WARNING: discarding corrupted store file %s: %v", path, err)
		s.data = make(map[string]json.RawMessage)
	}
	return s, nil
}

func (s *FileStore) Get(key string, v any) error {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, v)
}

func (s *FileStore) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return s.save()
}

func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.save()
}

// save writes the full key set back to disk. Callers hold s.mu.
func (s *FileStore) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}
