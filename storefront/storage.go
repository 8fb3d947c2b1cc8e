// Package storefront is the client half of the shop: the session-local cart
// state machine, the derived checkout totals and the API client that talks to
// the server. State kept here (token, user, product and cart snapshots) is a
// cache only; the server copy is authoritative for everything but the cart,
// which the server never sees until checkout.
package storefront

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Storage persists small named JSON documents between sessions. It plays the
// role browser local storage plays for the web client.
type Storage interface {
	// Load unmarshals the value stored under key into v. The bool reports
	// whether the key existed.
	Load(key string, v any) (bool, error)
	Save(key string, v any) error
	Remove(key string) error
}

// FileStorage keeps each key as a JSON file in a directory.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStorage) Load(key string, v any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FileStorage) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), data, 0o600)
}

func (s *FileStorage) Remove(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryStorage is an in-process Storage, mainly for tests.
type MemoryStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (s *MemoryStorage) Load(key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemoryStorage) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = data
	return nil
}

func (s *MemoryStorage) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
