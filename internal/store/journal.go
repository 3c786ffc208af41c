package store

import (
	"context"

	errorvalues "github.com/limbo/focusflow/internal/error_values"
	"github.com/limbo/focusflow/pkg/entity"
)

// UpsertJournal drops any entry sharing entry.Date and appends entry,
// so a date never holds two entries.
func (s *Store) UpsertJournal(ctx context.Context, entry entity.JournalEntry) entity.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]entity.JournalEntry, 0, len(s.journal)+1)
	for _, e := range s.journal {
		if e.Date != entry.Date {
			kept = append(kept, e)
		}
	}
	s.journal = append(kept, entry)
	s.committedLocked(ctx)
	return entry
}

func (s *Store) JournalEntries() []entity.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.JournalEntry(nil), s.journal...)
}

func (s *Store) DeleteJournal(ctx context.Context, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.journal {
		if s.journal[i].Date == date {
			s.journal = append(s.journal[:i:i], s.journal[i+1:]...)
			s.committedLocked(ctx)
			return nil
		}
	}
	return errorvalues.ErrJournalEntryNotFound
}
