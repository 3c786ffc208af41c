package repository

import (
	"context"
	"sync"

	errorvalues "github.com/limbo/focusflow/internal/error_values"
)

// MemoryBlobRepository is a process-local repository used for ephemeral runs and tests.
type MemoryBlobRepository struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryBlobRepo() *MemoryBlobRepository {
	return &MemoryBlobRepository{
		blobs: make(map[string][]byte),
	}
}

func (mr *MemoryBlobRepository) Get(_ context.Context, key string) ([]byte, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	value, ok := mr.blobs[key]
	if !ok {
		return nil, errorvalues.ErrBlobNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (mr *MemoryBlobRepository) Put(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	mr.mu.Lock()
	mr.blobs[key] = stored
	mr.mu.Unlock()
	return nil
}

func (mr *MemoryBlobRepository) Delete(_ context.Context, key string) error {
	mr.mu.Lock()
	delete(mr.blobs, key)
	mr.mu.Unlock()
	return nil
}
