package storage

import (
	"context"
	"sync"

	"github.com/LavaJover/shvark-requisites-service/internal/domain"
)

// MemoryStore keeps the slot as encoded bytes so callers never share backing
// arrays with the store.
type MemoryStore struct {
	mu  sync.RWMutex
	raw []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreFromRaw is used to simulate a pre-existing (possibly
// corrupted) slot.
func NewMemoryStoreFromRaw(raw []byte) *MemoryStore {
	return &MemoryStore{raw: append([]byte(nil), raw...)}
}

func (s *MemoryStore) Load(_ context.Context) ([]domain.Requisite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return DecodeSlot(s.raw), nil
}

func (s *MemoryStore) Save(_ context.Context, list []domain.Requisite) error {
	raw, err := EncodeSlot(list)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.raw = raw
	s.mu.Unlock()
	return nil
}
