// Package store owns every record collection and the stats singleton.
//
// Mutations are serialized by a mutex and run to completion before the next
// one starts. After each successful mutation all five collections are written
// back to the blob repository, each under its own key. Writes are best-effort
// and not transactional across keys: a failure is logged, the in-memory state
// stands, and the other blobs are still written.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/focusflow/internal/repository"
	"github.com/limbo/focusflow/pkg/entity"
)

type Store struct {
	mu      sync.Mutex
	repo    repository.BlobRepositoryI
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
	version uint64

	tasks        []entity.Task
	transactions []entity.Transaction
	journal      []entity.JournalEntry
	brainDumps   []entity.BrainDump
	stats        entity.UserStats
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// Open builds a store over repo and loads every collection from it.
// Loading never fails: unreadable blobs fall back to their defaults.
func Open(ctx context.Context, repo repository.BlobRepositoryI, opts ...Option) *Store {
	s := &Store{
		repo:   repo,
		logger: slog.Default(),
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(ctx)
	return s
}

func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) Today() string {
	return entity.FormatDate(s.now())
}

func (s *Store) NewID() string {
	return s.newID()
}

// Version grows by one with every applied mutation.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Snapshot returns deep copies of every collection.
func (s *Store) Snapshot() entity.Records {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entity.Records{
		Tasks:          cloneTasks(s.tasks),
		Transactions:   append([]entity.Transaction(nil), s.transactions...),
		JournalEntries: append([]entity.JournalEntry(nil), s.journal...),
		BrainDumps:     append([]entity.BrainDump(nil), s.brainDumps...),
		Stats:          s.stats,
	}
}

// Save writes all five blobs and reports every failed write.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(ctx)
}

// Reset drops every record, restores default stats and removes all five
// blobs, so the next load starts from defaults.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = nil
	s.transactions = nil
	s.journal = nil
	s.brainDumps = nil
	s.stats = entity.DefaultStats(entity.FormatDate(s.now()))
	s.version++
	ctx = context.WithoutCancel(ctx)
	for _, key := range repository.AllKeys {
		if err := s.repo.Delete(ctx, key); err != nil {
			s.logger.Error("deleting collection error", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
}

// committedLocked bumps the version and mirrors state to the repository.
// Persistence errors are already logged per blob and don't undo the mutation.
func (s *Store) committedLocked(ctx context.Context) {
	s.version++
	_ = s.persistLocked(ctx)
}

// persistLocked detaches from ctx cancellation: a mutation already applied in
// memory is written even if the caller has gone away.
func (s *Store) persistLocked(ctx context.Context) error {
	ctx = context.WithoutCancel(ctx)
	blobs := []struct {
		key   string
		value any
	}{
		{repository.TasksKey, orEmpty(s.tasks)},
		{repository.TransactionsKey, orEmpty(s.transactions)},
		{repository.BrainDumpsKey, orEmpty(s.brainDumps)},
		{repository.JournalKey, orEmpty(s.journal)},
		{repository.StatsKey, s.stats},
	}
	var errs []error
	for _, b := range blobs {
		if err := s.writeBlob(ctx, b.key, b.value); err != nil {
			s.logger.Error("persisting collection error", slog.String("key", b.key), slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func cloneTasks(tasks []entity.Task) []entity.Task {
	if len(tasks) == 0 {
		return nil
	}
	out := make([]entity.Task, len(tasks))
	for i := range tasks {
		out[i] = tasks[i].Clone()
	}
	return out
}
