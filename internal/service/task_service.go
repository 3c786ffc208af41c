package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"

	errorvalues "github.com/limbo/focusflow/internal/error_values"
	"github.com/limbo/focusflow/internal/gamification"
	"github.com/limbo/focusflow/internal/projection"
	"github.com/limbo/focusflow/internal/store"
	"github.com/limbo/focusflow/pkg/entity"
)

type TaskService struct {
	store  *store.Store
	engine *gamification.Engine
}

func NewTaskService(st *store.Store, engine *gamification.Engine) *TaskService {
	if st == nil || engine == nil {
		log.Fatal("provided nil store or gamification engine")
	}
	return &TaskService{
		store:  st,
		engine: engine,
	}
}

func (ts *TaskService) CreateTask(ctx context.Context, req CreateTaskRequest) (*entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date := req.Date
	if date == "" {
		date = ts.store.Today()
	}
	t := ts.store.CreateTask(ctx, entity.Task{
		Text:     req.Text,
		Status:   entity.StatusTodo,
		Date:     date,
		Category: entity.CategoryOrGeneral(req.Category),
		Notes:    req.Notes,
	})
	return &t, nil
}

func (ts *TaskService) GetTask(ctx context.Context, id string) (*entity.Task, error) {
	t, err := ts.store.GetTask(id)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (ts *TaskService) ListTasks(ctx context.Context, date string) ([]entity.Task, error) {
	tasks := ts.store.Tasks()
	if date == "" {
		return tasks, nil
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}
	return projection.DayTasks(tasks, date), nil
}

func (ts *TaskService) CategoryTasks(ctx context.Context, category string) ([]entity.Task, error) {
	c := entity.TaskCategory(category)
	if !c.IsValid() {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("unknown category "+category))
	}
	return projection.CategoryTasks(ts.store.Tasks(), c), nil
}

func (ts *TaskService) UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) (*entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	t, err := ts.store.UpdateTask(ctx, id, func(t *entity.Task) error {
		if req.Text != nil {
			t.Text = *req.Text
		}
		if req.Date != nil {
			t.Date = *req.Date
		}
		if req.Category != nil {
			t.Category = entity.TaskCategory(*req.Category)
		}
		if req.Notes != nil {
			t.Notes = *req.Notes
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (ts *TaskService) ToggleTask(ctx context.Context, id string) (*ToggleResult, error) {
	var firstCompletion bool
	t, err := ts.store.UpdateTask(ctx, id, func(t *entity.Task) error {
		firstCompletion = gamification.ToggleCompletion(t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	res := &ToggleResult{Task: t}
	if !firstCompletion {
		return res, nil
	}
	award, err := ts.engine.Award(ctx, gamification.XPPerTask)
	if err != nil {
		return nil, errors.New("awarding experience error: " + err.Error())
	}
	res.Award = &award
	return res, nil
}

func (ts *TaskService) MigrateTask(ctx context.Context, id string, req MigrateTaskRequest) (*entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	original, err := ts.store.UpdateTask(ctx, id, func(t *entity.Task) error {
		if t.Status == entity.StatusMigrated {
			return errors.Join(errorvalues.ErrValidation, errors.New("task is already migrated"))
		}
		t.Status = entity.StatusMigrated
		return nil
	})
	if err != nil {
		return nil, err
	}
	copied := original.Clone()
	copied.ID = ""
	copied.Date = req.Date
	copied.Status = entity.StatusTodo
	copied.XPAwarded = false
	for i := range copied.Subtasks {
		copied.Subtasks[i].ID = ts.store.NewID()
	}
	t := ts.store.CreateTask(ctx, copied)
	slog.Default().Debug("task migrated", slog.String("from", id), slog.String("to", t.ID), slog.String("date", t.Date))
	return &t, nil
}

func (ts *TaskService) DeleteTask(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return errorvalues.ErrConfirmationRequired
	}
	return ts.store.DeleteTask(ctx, id)
}

func (ts *TaskService) AddSubtask(ctx context.Context, taskID string, req AddSubtaskRequest) (*entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	t, err := ts.store.UpdateTask(ctx, taskID, func(t *entity.Task) error {
		t.Subtasks = append(t.Subtasks, entity.Subtask{
			ID:   ts.store.NewID(),
			Text: strings.TrimSpace(req.Text),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (ts *TaskService) ToggleSubtask(ctx context.Context, taskID, subtaskID string) (*entity.Task, error) {
	return ts.updateSubtask(ctx, taskID, subtaskID, func(t *entity.Task, i int) {
		t.Subtasks[i].Completed = !t.Subtasks[i].Completed
	})
}

func (ts *TaskService) DeleteSubtask(ctx context.Context, taskID, subtaskID string) (*entity.Task, error) {
	return ts.updateSubtask(ctx, taskID, subtaskID, func(t *entity.Task, i int) {
		t.Subtasks = append(t.Subtasks[:i:i], t.Subtasks[i+1:]...)
	})
}

func (ts *TaskService) updateSubtask(ctx context.Context, taskID, subtaskID string, fn func(t *entity.Task, i int)) (*entity.Task, error) {
	t, err := ts.store.UpdateTask(ctx, taskID, func(t *entity.Task) error {
		for i := range t.Subtasks {
			if t.Subtasks[i].ID == subtaskID {
				fn(t, i)
				return nil
			}
		}
		return errorvalues.ErrSubtaskNotFound
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}
