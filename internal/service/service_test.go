package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/focusflow/internal/error_values"
	"github.com/limbo/focusflow/internal/gamification"
	"github.com/limbo/focusflow/internal/organizer"
	"github.com/limbo/focusflow/internal/repository"
	"github.com/limbo/focusflow/internal/service"
	"github.com/limbo/focusflow/internal/service/mocks"
	"github.com/limbo/focusflow/internal/store"
	"github.com/limbo/focusflow/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var testNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.Local)

type testEnv struct {
	store        *store.Store
	tasks        *service.TaskService
	transactions *service.TransactionService
	journal      *service.JournalService
	views        *service.ViewService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st := store.Open(context.Background(), repository.NewMemoryBlobRepo(), store.WithClock(func() time.Time { return testNow }))
	return &testEnv{
		store:        st,
		tasks:        service.NewTaskService(st, gamification.NewEngine(st)),
		transactions: service.NewTransactionService(st),
		journal:      service.NewJournalService(st),
		views:        service.NewViewService(st),
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestCreateTask(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	testCases := []struct {
		Desc         string
		Req          service.CreateTaskRequest
		WantErr      error
		WantDate     string
		WantCategory entity.TaskCategory
	}{
		{
			Desc:         "explicit date and category",
			Req:          service.CreateTaskRequest{Text: "Buy milk", Date: "2025-06-01", Category: "General"},
			WantDate:     "2025-06-01",
			WantCategory: entity.CategoryGeneral,
		},
		{
			Desc:         "defaults to today and General",
			Req:          service.CreateTaskRequest{Text: "Read"},
			WantDate:     "2025-06-01",
			WantCategory: entity.CategoryGeneral,
		},
		{
			Desc:         "school task",
			Req:          service.CreateTaskRequest{Text: "Essay", Date: "2025-06-03", Category: "School"},
			WantDate:     "2025-06-03",
			WantCategory: entity.CategorySchool,
		},
		{Desc: "blank text", Req: service.CreateTaskRequest{Text: "   "}, WantErr: errorvalues.ErrValidation},
		{Desc: "unknown category", Req: service.CreateTaskRequest{Text: "x", Category: "Chores"}, WantErr: errorvalues.ErrValidation},
		{Desc: "bad date", Req: service.CreateTaskRequest{Text: "x", Date: "06/01/2025"}, WantErr: errorvalues.ErrValidation},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			task, err := env.tasks.CreateTask(ctx, tc.Req)
			if tc.WantErr != nil {
				assert.ErrorIs(t, err, tc.WantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, task.ID)
			assert.Equal(t, tc.Req.Text, task.Text)
			assert.Equal(t, entity.StatusTodo, task.Status)
			assert.False(t, task.XPAwarded)
			assert.Equal(t, tc.WantDate, task.Date)
			assert.Equal(t, tc.WantCategory, task.Category)
		})
	}
	assert.Len(t, env.store.Tasks(), 3)
}

func TestBuyMilkScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task, err := env.tasks.CreateTask(ctx, service.CreateTaskRequest{Text: "Buy milk", Date: "2025-06-01", Category: "General"})
	require.NoError(t, err)
	require.Len(t, env.store.Tasks(), 1)
	assert.Equal(t, entity.StatusTodo, task.Status)
	assert.False(t, task.XPAwarded)

	res, err := env.tasks.ToggleTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDone, res.Task.Status)
	assert.True(t, res.Task.XPAwarded)
	require.NotNil(t, res.Award)
	assert.Equal(t, 10, env.views.Stats(ctx).XP)

	res, err = env.tasks.ToggleTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusTodo, res.Task.Status)
	assert.True(t, res.Task.XPAwarded)
	assert.Nil(t, res.Award)

	res, err = env.tasks.ToggleTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDone, res.Task.Status)
	assert.Nil(t, res.Award)
	assert.Equal(t, 10, env.views.Stats(ctx).XP)

	_, err = env.tasks.ToggleTask(ctx, "missing")
	assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
}

func TestTenCompletionsLevelUp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	var last *service.ToggleResult
	for i := 0; i < 10; i++ {
		task, err := env.tasks.CreateTask(ctx, service.CreateTaskRequest{Text: "chore"})
		require.NoError(t, err)
		last, err = env.tasks.ToggleTask(ctx, task.ID)
		require.NoError(t, err)
	}
	require.NotNil(t, last.Award)
	assert.True(t, last.Award.LeveledUp)
	stats := env.views.Stats(ctx)
	assert.Equal(t, 0, stats.XP)
	assert.Equal(t, 2, stats.Level)
}

func TestUpdateTask(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	task, err := env.tasks.CreateTask(ctx, service.CreateTaskRequest{Text: "draft"})
	require.NoError(t, err)

	updated, err := env.tasks.UpdateTask(ctx, task.ID, service.UpdateTaskRequest{
		Text:     ptr("final"),
		Category: ptr("Work"),
		Notes:    ptr("after lunch"),
	})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Text)
	assert.Equal(t, entity.CategoryWork, updated.Category)
	assert.Equal(t, "after lunch", updated.Notes)
	assert.Equal(t, task.Date, updated.Date)

	_, err = env.tasks.UpdateTask(ctx, task.ID, service.UpdateTaskRequest{Text: ptr(" ")})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
	_, err = env.tasks.UpdateTask(ctx, "missing", service.UpdateTaskRequest{})
	assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)

	got, err := env.tasks.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Text)
}

func TestMigrateTask(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	task, err := env.tasks.CreateTask(ctx, service.CreateTaskRequest{Text: "Call bank", Category: "Work"})
	require.NoError(t, err)
	_, err = env.tasks.AddSubtask(ctx, task.ID, service.AddSubtaskRequest{Text: "find card"})
	require.NoError(t, err)

	moved, err := env.tasks.MigrateTask(ctx, task.ID, service.MigrateTaskRequest{Date: "2025-06-02"})
	require.NoError(t, err)
	assert.NotEqual(t, task.ID, moved.ID)
	assert.Equal(t, "2025-06-02", moved.Date)
	assert.Equal(t, entity.StatusTodo, moved.Status)
	assert.Equal(t, entity.CategoryWork, moved.Category)
	require.Len(t, moved.Subtasks, 1)

	original, err := env.tasks.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusMigrated, original.Status)
	assert.NotEqual(t, original.Subtasks[0].ID, moved.Subtasks[0].ID)

	_, err = env.tasks.MigrateTask(ctx, task.ID, service.MigrateTaskRequest{Date: "2025-06-03"})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
	_, err = env.tasks.MigrateTask(ctx, moved.ID, service.MigrateTaskRequest{Date: "tomorrow"})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)

	day, err := env.tasks.ListTasks(ctx, "2025-06-02")
	require.NoError(t, err)
	assert.Len(t, day, 1)
}

func TestDeleteTaskRequiresConfirmation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	task, err := env.tasks.CreateTask(ctx, service.CreateTaskRequest{Text: "temp"})
	require.NoError(t, err)

	assert.ErrorIs(t, env.tasks.DeleteTask(ctx, task.ID, false), errorvalues.ErrConfirmationRequired)
	assert.Len(t, env.store.Tasks(), 1)
	require.NoError(t, env.tasks.DeleteTask(ctx, task.ID, true))
	assert.Empty(t, env.store.Tasks())
	assert.ErrorIs(t, env.tasks.DeleteTask(ctx, task.ID, true), errorvalues.ErrTaskNotFound)
}

func TestSubtasks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	task, err := env.tasks.CreateTask(ctx, service.CreateTaskRequest{Text: "Trip"})
	require.NoError(t, err)

	task, err = env.tasks.AddSubtask(ctx, task.ID, service.AddSubtaskRequest{Text: "tickets"})
	require.NoError(t, err)
	task, err = env.tasks.AddSubtask(ctx, task.ID, service.AddSubtaskRequest{Text: "hotel"})
	require.NoError(t, err)
	require.Len(t, task.Subtasks, 2)

	first := task.Subtasks[0].ID
	task, err = env.tasks.ToggleSubtask(ctx, task.ID, first)
	require.NoError(t, err)
	assert.True(t, task.Subtasks[0].Completed)

	task, err = env.tasks.DeleteSubtask(ctx, task.ID, first)
	require.NoError(t, err)
	require.Len(t, task.Subtasks, 1)
	assert.Equal(t, "hotel", task.Subtasks[0].Text)

	_, err = env.tasks.ToggleSubtask(ctx, task.ID, first)
	assert.ErrorIs(t, err, errorvalues.ErrSubtaskNotFound)
	_, err = env.tasks.AddSubtask(ctx, task.ID, service.AddSubtaskRequest{Text: ""})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
}

func TestCategoryTasks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	for _, req := range []service.CreateTaskRequest{
		{Text: "a", Category: "Work", Date: "2025-05-01"},
		{Text: "b", Category: "School"},
		{Text: "c", Category: "Work", Date: "2025-07-01"},
	} {
		_, err := env.tasks.CreateTask(ctx, req)
		require.NoError(t, err)
	}
	work, err := env.tasks.CategoryTasks(ctx, "Work")
	require.NoError(t, err)
	require.Len(t, work, 2)
	assert.Equal(t, "c", work[0].Text)
	assert.Equal(t, "a", work[1].Text)

	_, err = env.tasks.CategoryTasks(ctx, "work")
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
}

func TestTransactions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	income, err := env.transactions.CreateTransaction(ctx, service.CreateTransactionRequest{
		Amount: "50", Description: "gig", Type: "income", Date: "2025-06-01",
	})
	require.NoError(t, err)
	_, err = env.transactions.CreateTransaction(ctx, service.CreateTransactionRequest{
		Amount: "20", Description: "groceries", Type: "expense", Date: "2025-06-01",
	})
	require.NoError(t, err)

	day, err := env.views.Day(ctx, "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, "30", day.Balance.String())
	assert.Equal(t, "30", env.transactions.Balance(ctx).String())

	_, err = env.transactions.CreateTransaction(ctx, service.CreateTransactionRequest{
		Amount: "12.5", Type: "expense", Date: "2025-06-02",
	})
	require.NoError(t, err)
	assert.Equal(t, "17.5", env.transactions.Balance(ctx).String())

	list, err := env.transactions.ListTransactions(ctx, "2025-06-02")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	updated, err := env.transactions.UpdateTransaction(ctx, income.ID, service.UpdateTransactionRequest{Amount: ptr("60.25")})
	require.NoError(t, err)
	assert.Equal(t, "60.25", updated.Amount.String())
	assert.Equal(t, "27.75", env.transactions.Balance(ctx).String())

	require.NoError(t, env.transactions.DeleteTransaction(ctx, income.ID))
	assert.ErrorIs(t, env.transactions.DeleteTransaction(ctx, income.ID), errorvalues.ErrTransactionNotFound)

	for _, req := range []service.CreateTransactionRequest{
		{Amount: "-1", Type: "income"},
		{Amount: "abc", Type: "income"},
		{Amount: "1", Type: "refund"},
		{Amount: "", Type: "expense"},
	} {
		_, err := env.transactions.CreateTransaction(ctx, req)
		assert.ErrorIs(t, err, errorvalues.ErrValidation, "amount %q type %q", req.Amount, req.Type)
	}
}

func TestJournal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	empty, err := env.journal.GetEntry(ctx, "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, [3]string{"", "", ""}, empty.Grateful)

	_, err = env.journal.SaveEntry(ctx, "2025-06-01", service.SaveJournalRequest{Grateful: [3]string{"sun"}, Thoughts: "first"})
	require.NoError(t, err)
	_, err = env.journal.SaveEntry(ctx, "2025-06-01", service.SaveJournalRequest{Grateful: [3]string{"rain", "tea"}, Thoughts: "second"})
	require.NoError(t, err)
	require.Len(t, env.store.JournalEntries(), 1)

	got, err := env.journal.GetEntry(ctx, "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Thoughts)
	assert.Equal(t, [3]string{"rain", "tea", ""}, got.Grateful)

	require.NoError(t, env.journal.DeleteEntry(ctx, "2025-06-01"))
	assert.ErrorIs(t, env.journal.DeleteEntry(ctx, "2025-06-01"), errorvalues.ErrJournalEntryNotFound)
	_, err = env.journal.GetEntry(ctx, "June 1")
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
}

func TestOrganizeBrainDump(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	testCases := []struct {
		Desc          string
		Content       string
		MockPrepFunc  func(m *mocks.MockOrganizerI)
		WantErr       error
		WantTasks     []entity.Task
		WantBrainDump bool
	}{
		{
			Desc:    "drafts become todo tasks dated today",
			Content: "call mom, finish essay, fix bike",
			MockPrepFunc: func(m *mocks.MockOrganizerI) {
				m.EXPECT().Organize(gomock.Any(), "call mom, finish essay, fix bike").Return(&organizer.Result{
					Tasks: []organizer.Draft{
						{Text: "Call mom", Category: "Personal"},
						{Text: "Finish essay", Category: "School"},
						{Text: "Fix bike", Category: "Work"},
					},
					Summary: "three things",
				}, nil)
			},
			WantTasks: []entity.Task{
				{Text: "Fix bike", Category: entity.CategoryWork},
				{Text: "Finish essay", Category: entity.CategorySchool},
				{Text: "Call mom", Category: entity.CategoryGeneral},
			},
			WantBrainDump: true,
		},
		{
			Desc:    "blank drafts are skipped",
			Content: "milk, ",
			MockPrepFunc: func(m *mocks.MockOrganizerI) {
				m.EXPECT().Organize(gomock.Any(), "milk, ").Return(&organizer.Result{
					Tasks: []organizer.Draft{
						{Text: "Buy milk", Category: "General"},
						{Text: "   ", Category: "Work"},
					},
					Summary: "one errand",
				}, nil)
			},
			WantTasks: []entity.Task{
				{Text: "Buy milk", Category: entity.CategoryGeneral},
			},
			WantBrainDump: true,
		},
		{
			Desc:    "empty result still archives",
			Content: "nothing really",
			MockPrepFunc: func(m *mocks.MockOrganizerI) {
				m.EXPECT().Organize(gomock.Any(), gomock.Any()).Return(&organizer.Result{Tasks: []organizer.Draft{}, Summary: "none"}, nil)
			},
			WantBrainDump: true,
		},
		{
			Desc:    "network failure changes nothing",
			Content: "buy stamps",
			MockPrepFunc: func(m *mocks.MockOrganizerI) {
				m.EXPECT().Organize(gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))
			},
			WantErr: errorvalues.ErrOrganizeFailed,
		},
		{
			Desc:    "malformed reply changes nothing",
			Content: "buy stamps",
			MockPrepFunc: func(m *mocks.MockOrganizerI) {
				m.EXPECT().Organize(gomock.Any(), gomock.Any()).Return(nil, errors.Join(errorvalues.ErrOrganizeFailed, errorvalues.ErrMalformedResponse))
			},
			WantErr: errorvalues.ErrOrganizeFailed,
		},
		{
			Desc:         "blank input is rejected before calling out",
			Content:      "  \n ",
			MockPrepFunc: func(m *mocks.MockOrganizerI) {},
			WantErr:      errorvalues.ErrEmptyBrainDump,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			env := newTestEnv(t)
			_, err := env.tasks.CreateTask(ctx, service.CreateTaskRequest{Text: "existing", Date: "2025-05-30"})
			require.NoError(t, err)
			before := env.store.Snapshot()

			org := mocks.NewMockOrganizerI(ctrl)
			tc.MockPrepFunc(org)
			bs := service.NewBrainDumpService(env.store, org)

			res, err := bs.Organize(ctx, service.OrganizeRequest{Content: tc.Content})
			if tc.WantErr != nil {
				assert.ErrorIs(t, err, tc.WantErr)
				assert.Nil(t, res)
				after := env.store.Snapshot()
				assert.Equal(t, before.Tasks, after.Tasks)
				assert.Equal(t, before.BrainDumps, after.BrainDumps)
				assert.False(t, bs.InProgress())
				return
			}
			require.NoError(t, err)
			tasks := env.store.Tasks()
			require.Len(t, tasks, len(tc.WantTasks)+1)
			for i, want := range tc.WantTasks {
				assert.Equal(t, want.Text, tasks[i].Text)
				assert.Equal(t, want.Category, tasks[i].Category)
				assert.Equal(t, entity.StatusTodo, tasks[i].Status)
				assert.False(t, tasks[i].XPAwarded)
				assert.Equal(t, "2025-06-01", tasks[i].Date)
			}
			assert.Len(t, res.Tasks, len(tc.WantTasks))
			dumps := bs.ListBrainDumps(ctx)
			if tc.WantBrainDump {
				require.Len(t, dumps, 1)
				assert.Equal(t, tc.Content, dumps[0].Content)
				assert.Equal(t, res.BrainDump.ID, dumps[0].ID)
			}
		})
	}
}

func TestOrganizeAtMostOneInFlight(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	env := newTestEnv(t)
	org := mocks.NewMockOrganizerI(ctrl)
	bs := service.NewBrainDumpService(env.store, org)

	started := make(chan struct{})
	release := make(chan struct{})
	org.EXPECT().Organize(gomock.Any(), "first").DoAndReturn(func(ctx context.Context, raw string) (*organizer.Result, error) {
		close(started)
		<-release
		return &organizer.Result{Tasks: []organizer.Draft{{Text: "one", Category: "General"}}, Summary: "s"}, nil
	})

	done := make(chan error, 1)
	go func() {
		_, err := bs.Organize(ctx, service.OrganizeRequest{Content: "first"})
		done <- err
	}()
	<-started
	assert.True(t, bs.InProgress())
	_, err := bs.Organize(ctx, service.OrganizeRequest{Content: "second"})
	assert.ErrorIs(t, err, errorvalues.ErrOrganizeInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, bs.InProgress())
	assert.Len(t, env.store.Tasks(), 1)
	assert.Len(t, bs.ListBrainDumps(ctx), 1)
}

func TestViewsAndReset(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	task, err := env.tasks.CreateTask(ctx, service.CreateTaskRequest{Text: "walk"})
	require.NoError(t, err)
	_, err = env.tasks.ToggleTask(ctx, task.ID)
	require.NoError(t, err)

	day, err := env.views.Day(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", day.Date)
	assert.Equal(t, 1, day.Completed)
	assert.Equal(t, 0, day.Open)

	week, err := env.views.Week(ctx, "2025-06-01")
	require.NoError(t, err)
	require.Len(t, week, 7)
	assert.Equal(t, 1, week[3].Tasks)

	_, err = env.views.Day(ctx, "2025-13-01")
	assert.ErrorIs(t, err, errorvalues.ErrValidation)

	assert.ErrorIs(t, env.views.Reset(ctx, false), errorvalues.ErrConfirmationRequired)
	assert.Len(t, env.store.Tasks(), 1)
	require.NoError(t, env.views.Reset(ctx, true))
	assert.Empty(t, env.store.Tasks())
	assert.Equal(t, entity.DefaultStats("2025-06-01"), env.views.Stats(ctx))
}
