package service

import (
	"context"
	"log"

	"github.com/limbo/focusflow/internal/projection"
	"github.com/limbo/focusflow/internal/store"
	"github.com/limbo/focusflow/pkg/entity"
)

type JournalService struct {
	store *store.Store
}

func NewJournalService(st *store.Store) *JournalService {
	if st == nil {
		log.Fatal("provided nil store")
	}
	return &JournalService{store: st}
}

func (js *JournalService) GetEntry(ctx context.Context, date string) (*entity.JournalEntry, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	entry := projection.JournalFor(js.store.JournalEntries(), date)
	return &entry, nil
}

func (js *JournalService) SaveEntry(ctx context.Context, date string, req SaveJournalRequest) (*entity.JournalEntry, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	entry := js.store.UpsertJournal(ctx, entity.JournalEntry{
		Date:     date,
		Grateful: req.Grateful,
		Thoughts: req.Thoughts,
	})
	return &entry, nil
}

func (js *JournalService) DeleteEntry(ctx context.Context, date string) error {
	if err := validateDate(date); err != nil {
		return err
	}
	return js.store.DeleteJournal(ctx, date)
}
