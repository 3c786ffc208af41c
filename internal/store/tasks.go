package store

import (
	"context"

	errorvalues "github.com/limbo/focusflow/internal/error_values"
	"github.com/limbo/focusflow/pkg/entity"
)

// CreateTask prepends t, assigning an id when it has none.
func (s *Store) CreateTask(ctx context.Context, t entity.Task) entity.Task {
	created := s.CreateTasks(ctx, []entity.Task{t})
	return created[0]
}

// CreateTasks prepends every task in order, so the last one ends up first.
// The collections are persisted once for the whole batch.
func (s *Store) CreateTasks(ctx context.Context, tasks []entity.Task) []entity.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := make([]entity.Task, 0, len(tasks))
	for _, t := range tasks {
		t = t.Clone()
		if t.ID == "" {
			t.ID = s.newID()
		}
		s.tasks = append([]entity.Task{t}, s.tasks...)
		created = append(created, t.Clone())
	}
	s.committedLocked(ctx)
	return created
}

func (s *Store) Tasks() []entity.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.tasks)
}

func (s *Store) GetTask(id string) (entity.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.taskIndexLocked(id)
	if i < 0 {
		return entity.Task{}, errorvalues.ErrTaskNotFound
	}
	return s.tasks[i].Clone(), nil
}

// UpdateTask applies fn to a copy of the task. The copy replaces the stored
// task only when fn succeeds; an error from fn leaves the store untouched.
func (s *Store) UpdateTask(ctx context.Context, id string, fn func(t *entity.Task) error) (entity.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.taskIndexLocked(id)
	if i < 0 {
		return entity.Task{}, errorvalues.ErrTaskNotFound
	}
	updated := s.tasks[i].Clone()
	if err := fn(&updated); err != nil {
		return entity.Task{}, err
	}
	updated.ID = id
	s.tasks[i] = updated
	s.committedLocked(ctx)
	return updated.Clone(), nil
}

func (s *Store) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.taskIndexLocked(id)
	if i < 0 {
		return errorvalues.ErrTaskNotFound
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	s.committedLocked(ctx)
	return nil
}

func (s *Store) taskIndexLocked(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
