package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/focusflow/internal/error_values"
	"github.com/limbo/focusflow/internal/gamification"
	"github.com/limbo/focusflow/internal/repository"
	"github.com/limbo/focusflow/pkg/entity"
)

func (s *Store) writeBlob(ctx context.Context, key string, value any) error {
	data, err := sonic.ConfigStd.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.repo.Put(ctx, key, data); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// readBlob decodes key into dst. It reports false when the default should be used.
func (s *Store) readBlob(ctx context.Context, key string, dst any) bool {
	data, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBlobNotFound) {
			s.logger.Debug("collection not persisted yet, using default", slog.String("key", key))
			return false
		}
		s.logger.Warn("reading collection error, using default", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	if err := sonic.ConfigStd.Unmarshal(data, dst); err != nil {
		s.logger.Warn("malformed collection, using default", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

// load fills each collection independently; a bad blob only resets its own collection.
func (s *Store) load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tasks []entity.Task
	if s.readBlob(ctx, repository.TasksKey, &tasks) {
		s.tasks = nilIfEmpty(tasks)
	}
	var transactions []entity.Transaction
	if s.readBlob(ctx, repository.TransactionsKey, &transactions) {
		s.transactions = nilIfEmpty(transactions)
	}
	var brainDumps []entity.BrainDump
	if s.readBlob(ctx, repository.BrainDumpsKey, &brainDumps) {
		s.brainDumps = nilIfEmpty(brainDumps)
	}
	var journal []entity.JournalEntry
	if s.readBlob(ctx, repository.JournalKey, &journal) {
		s.journal = nilIfEmpty(journal)
	}

	s.stats = entity.DefaultStats(entity.FormatDate(s.now()))
	var stats entity.UserStats
	if s.readBlob(ctx, repository.StatsKey, &stats) {
		if gamification.ValidStats(stats) {
			s.stats = stats
		} else {
			s.logger.Warn("stats out of range, using default", slog.Int("xp", stats.XP), slog.Int("level", stats.Level))
		}
	}
}

func nilIfEmpty[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	return items
}
