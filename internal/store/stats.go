package store

import (
	"context"

	"github.com/limbo/focusflow/pkg/entity"
)

func (s *Store) Stats() entity.UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// UpdateStats applies fn to the singleton. Only the gamification engine calls it.
func (s *Store) UpdateStats(ctx context.Context, fn func(stats *entity.UserStats)) (entity.UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.stats
	fn(&next)
	s.stats = next
	s.committedLocked(ctx)
	return next, nil
}
