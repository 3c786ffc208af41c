package store

import (
	"context"

	errorvalues "github.com/limbo/focusflow/internal/error_values"
	"github.com/limbo/focusflow/pkg/entity"
)

// AppendBrainDump archives content with the current instant, newest first.
func (s *Store) AppendBrainDump(ctx context.Context, content string) entity.BrainDump {
	s.mu.Lock()
	defer s.mu.Unlock()
	dump := entity.BrainDump{
		ID:        s.newID(),
		Content:   content,
		Timestamp: entity.NewEpochMillis(s.now()),
	}
	s.brainDumps = append([]entity.BrainDump{dump}, s.brainDumps...)
	s.committedLocked(ctx)
	return dump
}

func (s *Store) BrainDumps() []entity.BrainDump {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.BrainDump(nil), s.brainDumps...)
}

func (s *Store) DeleteBrainDump(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.brainDumps {
		if s.brainDumps[i].ID == id {
			s.brainDumps = append(s.brainDumps[:i:i], s.brainDumps[i+1:]...)
			s.committedLocked(ctx)
			return nil
		}
	}
	return errorvalues.ErrBrainDumpNotFound
}
