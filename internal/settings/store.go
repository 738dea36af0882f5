package settings

import (
	"context"
	"errors"
	"fmt"
	"sync"

	json "github.com/goccy/go-json"
)

// Store is a key/value option store holding one exclusion set per key.
// Get returns a nil set and no error when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) (Exclusions, error)
	Set(ctx context.Context, key string, ex Exclusions) error
	Delete(ctx context.Context, key string) error
}

// ErrCorrupt is returned when a stored value cannot be decoded.
var ErrCorrupt = errors.New("corrupt stored exclusions")

// Pinger is implemented by stores that can report their availability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// encode serialises a set for storage. Only hidden ids are kept.
func encode(ex Exclusions) ([]byte, error) {
	out := make(Exclusions, len(ex))
	for id, hidden := range ex {
		if hidden {
			out[id] = true
		}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode exclusions: %w", err)
	}
	return data, nil
}

func decode(data []byte) (Exclusions, error) {
	var ex Exclusions
	if err := json.Unmarshal(data, &ex); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return ex, nil
}

// MemoryStore keeps sets in process memory. It is safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (Exclusions, error) {
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return decode(raw)
}

func (m *MemoryStore) Set(_ context.Context, key string, ex Exclusions) error {
	raw, err := encode(ex)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = raw
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }
