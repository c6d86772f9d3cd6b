package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/smarttech/storefront/logging"
)

// MemoryStore is a Store that never touches disk. It backs tests and
// ephemeral sessions; semantics match SQLiteStore minus durability.
type MemoryStore struct {
	log logging.Logger

	mu   sync.Mutex
	data map[string]json.RawMessage
}

func NewMemoryStore(log logging.Logger) *MemoryStore {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &MemoryStore{log: log, data: make(map[string]json.RawMessage)}
}

func (s *MemoryStore) Get(ctx context.Context, key string, dest any) bool {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.Warn(ctx, "store payload does not decode, falling back to default", "key", key, "error", err)
		return false
	}
	return true
}

func (s *MemoryStore) Set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Error(ctx, "store value does not serialize, write dropped", "key", key, "error", err)
		return
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
}

func (s *MemoryStore) Remove(ctx context.Context, key string) {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
}

func (s *MemoryStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.data = make(map[string]json.RawMessage)
	s.mu.Unlock()
	return nil
}
