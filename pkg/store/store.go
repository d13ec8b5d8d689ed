// Package store provides the key/value persistence the album document and
// upload settings live in.
package store

import (
	"context"
	"errors"
	"sort"
	"sync"
)

const (
	// DocumentKey holds the album document.
	DocumentKey = "album-data-v2"
	// CloudinaryKey holds the upload credentials, kept apart from the document.
	CloudinaryKey = "cloudinary-config"
)

// ErrNotFound is returned by Backend.Get for a key that was never set.
var ErrNotFound = errors.New("store: key not found")

// Backend is the persistence contract: whole values by key.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Watcher is implemented by backends that can report changes made by other
// processes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Memory is an in-process Backend.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
	// FailGet, when non-nil, is returned by every Get.
	FailGet error
	// FailSet, when non-nil, is returned by every Set.
	FailSet error
}

// NewMemory returns an empty Memory backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGet != nil {
		return nil, m.FailGet
	}
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet != nil {
		return m.FailSet
	}
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

// Keys lists the stored keys in order.
func (m *Memory) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
