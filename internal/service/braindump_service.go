package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"
	"sync/atomic"

	errorvalues "github.com/limbo/focusflow/internal/error_values"
	"github.com/limbo/focusflow/internal/store"
	"github.com/limbo/focusflow/pkg/entity"
)

type BrainDumpService struct {
	store      *store.Store
	organizer  OrganizerI
	inProgress atomic.Bool
}

func NewBrainDumpService(st *store.Store, org OrganizerI) *BrainDumpService {
	if st == nil || org == nil {
		log.Fatal("provided nil store or organizer")
	}
	return &BrainDumpService{
		store:     st,
		organizer: org,
	}
}

// InProgress reports whether an organize call is waiting for the organizer.
func (bs *BrainDumpService) InProgress() bool {
	return bs.inProgress.Load()
}

// Organize sends the text to the organizer and, only when it succeeds, adds
// one todo task per draft dated today and archives the text. At most one call
// runs at a time; a second one fails with ErrOrganizeInProgress.
func (bs *BrainDumpService) Organize(ctx context.Context, req OrganizeRequest) (*OrganizeResult, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, errorvalues.ErrEmptyBrainDump
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if !bs.inProgress.CompareAndSwap(false, true) {
		return nil, errorvalues.ErrOrganizeInProgress
	}
	defer bs.inProgress.Store(false)

	result, err := bs.organizer.Organize(ctx, req.Content)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrOrganizeFailed) {
			err = errors.Join(errorvalues.ErrOrganizeFailed, err)
		}
		return nil, err
	}
	today := bs.store.Today()
	drafts := make([]entity.Task, 0, len(result.Tasks))
	for _, d := range result.Tasks {
		if strings.TrimSpace(d.Text) == "" {
			slog.Default().Debug("skipping blank draft")
			continue
		}
		drafts = append(drafts, entity.Task{
			Text:     d.Text,
			Status:   entity.StatusTodo,
			Date:     today,
			Category: entity.CategoryOrGeneral(d.Category),
		})
	}
	var created []entity.Task
	if len(drafts) > 0 {
		created = bs.store.CreateTasks(ctx, drafts)
	}
	dump := bs.store.AppendBrainDump(ctx, req.Content)
	return &OrganizeResult{
		Tasks:     created,
		Summary:   result.Summary,
		BrainDump: dump,
	}, nil
}

func (bs *BrainDumpService) ListBrainDumps(ctx context.Context) []entity.BrainDump {
	return bs.store.BrainDumps()
}

func (bs *BrainDumpService) DeleteBrainDump(ctx context.Context, id string) error {
	return bs.store.DeleteBrainDump(ctx, id)
}
