package service

import (
	"context"
	"log"
	"log/slog"

	errorvalues "github.com/limbo/focusflow/internal/error_values"
	"github.com/limbo/focusflow/internal/projection"
	"github.com/limbo/focusflow/internal/store"
	"github.com/limbo/focusflow/pkg/entity"
)

type ViewService struct {
	store *store.Store
}

func NewViewService(st *store.Store) *ViewService {
	if st == nil {
		log.Fatal("provided nil store")
	}
	return &ViewService{store: st}
}

func (vs *ViewService) Day(ctx context.Context, date string) (*projection.DayView, error) {
	if date == "" {
		date = vs.store.Today()
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}
	view := projection.Day(vs.store.Snapshot(), date)
	return &view, nil
}

func (vs *ViewService) Week(ctx context.Context, date string) ([]projection.DaySummary, error) {
	if date == "" {
		date = vs.store.Today()
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}
	return projection.Week(vs.store.Snapshot(), date), nil
}

func (vs *ViewService) Stats(ctx context.Context) entity.UserStats {
	return vs.store.Stats()
}

func (vs *ViewService) Reset(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return errorvalues.ErrConfirmationRequired
	}
	vs.store.Reset(ctx)
	slog.Default().Warn("all records were reset")
	return nil
}
