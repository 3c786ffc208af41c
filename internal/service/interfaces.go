package service

import (
	"context"

	"github.com/limbo/focusflow/internal/gamification"
	"github.com/limbo/focusflow/internal/organizer"
	"github.com/limbo/focusflow/internal/projection"
	"github.com/limbo/focusflow/pkg/entity"
	"github.com/shopspring/decimal"
)

type CreateTaskRequest struct {
	Text string `validate:"notblank_text,max=500"`
	// Empty means today
	Date     string `validate:"omitempty,calendar_date"`
	Category string `validate:"omitempty,oneof=General Work School"`
	Notes    string `validate:"max=5000"`
}

// Nil fields are left as they are
type UpdateTaskRequest struct {
	Text     *string `validate:"omitempty,notblank_text,max=500"`
	Date     *string `validate:"omitempty,calendar_date"`
	Category *string `validate:"omitempty,oneof=General Work School"`
	Notes    *string `validate:"omitempty,max=5000"`
}

type MigrateTaskRequest struct {
	Date string `validate:"required,calendar_date"`
}

type AddSubtaskRequest struct {
	Text string `validate:"notblank_text,max=500"`
}

type ToggleResult struct {
	Task  entity.Task         `json:"task"`
	Award *gamification.Award `json:"award,omitempty"`
}

type CreateTransactionRequest struct {
	Amount      string `validate:"required,nonneg_decimal"`
	Description string `validate:"max=500"`
	Type        string `validate:"required,oneof=income expense"`
	// Empty means today
	Date     string `validate:"omitempty,calendar_date"`
	Category string `validate:"max=100"`
	Notes    string `validate:"max=5000"`
}

type UpdateTransactionRequest struct {
	Amount      *string `validate:"omitempty,nonneg_decimal"`
	Description *string `validate:"omitempty,max=500"`
	Type        *string `validate:"omitempty,oneof=income expense"`
	Date        *string `validate:"omitempty,calendar_date"`
	Category    *string `validate:"omitempty,max=100"`
	Notes       *string `validate:"omitempty,max=5000"`
}

type SaveJournalRequest struct {
	Grateful [3]string `validate:"dive,max=500"`
	Thoughts string    `validate:"max=20000"`
}

type OrganizeRequest struct {
	Content string `validate:"max=20000"`
}

type OrganizeResult struct {
	Tasks     []entity.Task    `json:"tasks"`
	Summary   string           `json:"summary"`
	BrainDump entity.BrainDump `json:"brainDump"`
}

type OrganizerI interface {
	// Makes one request to the organizing service. Fails with ErrOrganizeFailed
	Organize(ctx context.Context, raw string) (*organizer.Result, error)
}

type TaskServiceI interface {
	CreateTask(ctx context.Context, req CreateTaskRequest) (*entity.Task, error)
	GetTask(ctx context.Context, id string) (*entity.Task, error)
	// Lists tasks of one day or every task when date is empty
	ListTasks(ctx context.Context, date string) ([]entity.Task, error)
	CategoryTasks(ctx context.Context, category string) ([]entity.Task, error)
	UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) (*entity.Task, error)
	// Flips completion and grants experience on the first completion only
	ToggleTask(ctx context.Context, id string) (*ToggleResult, error)
	// Marks the task migrated and copies it as a fresh todo onto another day
	MigrateTask(ctx context.Context, id string, req MigrateTaskRequest) (*entity.Task, error)
	DeleteTask(ctx context.Context, id string, confirmed bool) error
	AddSubtask(ctx context.Context, taskID string, req AddSubtaskRequest) (*entity.Task, error)
	ToggleSubtask(ctx context.Context, taskID, subtaskID string) (*entity.Task, error)
	DeleteSubtask(ctx context.Context, taskID, subtaskID string) (*entity.Task, error)
}

type TransactionServiceI interface {
	CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*entity.Transaction, error)
	// Lists transactions of one day or every transaction when date is empty
	ListTransactions(ctx context.Context, date string) ([]entity.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, req UpdateTransactionRequest) (*entity.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	Balance(ctx context.Context) decimal.Decimal
}

type JournalServiceI interface {
	// Returns the stored entry or an empty one for date
	GetEntry(ctx context.Context, date string) (*entity.JournalEntry, error)
	SaveEntry(ctx context.Context, date string, req SaveJournalRequest) (*entity.JournalEntry, error)
	DeleteEntry(ctx context.Context, date string) error
}

type BrainDumpServiceI interface {
	Organize(ctx context.Context, req OrganizeRequest) (*OrganizeResult, error)
	ListBrainDumps(ctx context.Context) []entity.BrainDump
	DeleteBrainDump(ctx context.Context, id string) error
	InProgress() bool
}

type ViewServiceI interface {
	Day(ctx context.Context, date string) (*projection.DayView, error)
	Week(ctx context.Context, date string) ([]projection.DaySummary, error)
	Stats(ctx context.Context) entity.UserStats
	// Drops every record and restores default stats
	Reset(ctx context.Context, confirmed bool) error
}
