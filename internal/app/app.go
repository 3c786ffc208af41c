// Package app wires configuration, storage, the organizer and the services
// together. Both binaries start from Build.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/limbo/focusflow/internal/gamification"
	"github.com/limbo/focusflow/internal/organizer"
	"github.com/limbo/focusflow/internal/repository"
	"github.com/limbo/focusflow/internal/service"
	"github.com/limbo/focusflow/internal/store"
	"github.com/limbo/focusflow/pkg/config"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	APIKey           string
	GeminiModel      string
	OrganizerTimeout time.Duration
	APIAddress       string
	StorageDriver    string
	SQLitePath       string
	Postgres         repository.PGCfg
	LogLevel         string
}

func LoadConfig(cfg *config.Config) Config {
	return Config{
		APIKey:           cfg.GetString("API_KEY"),
		GeminiModel:      cfg.GetStringOr("GEMINI_MODEL", organizer.DefaultModel),
		OrganizerTimeout: cfg.GetDuration("ORGANIZER_TIMEOUT", 0),
		APIAddress:       cfg.GetStringOr("API_ADDRESS", ":8080"),
		StorageDriver:    strings.ToLower(cfg.GetStringOr("STORAGE_DRIVER", DriverSQLite)),
		SQLitePath:       cfg.GetStringOr("SQLITE_PATH", "./focusflow.db"),
		Postgres: repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
			SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
		},
		LogLevel: cfg.GetStringOr("LOG_LEVEL", "INFO"),
	}
}

type App struct {
	Store        *store.Store
	Tasks        *service.TaskService
	Transactions *service.TransactionService
	Journal      *service.JournalService
	BrainDumps   *service.BrainDumpService
	Views        *service.ViewService
}

// Build opens the configured repository and loads the store from it. Only a
// repository that can't be opened is an error; a missing API key leaves the
// organizer unavailable.
func Build(ctx context.Context, cfg Config) (*App, error) {
	repo, err := OpenRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return BuildWithRepository(ctx, cfg, repo), nil
}

func BuildWithRepository(ctx context.Context, cfg Config, repo repository.BlobRepositoryI) *App {
	service.InitValidator()
	st := store.Open(ctx, repo)
	return &App{
		Store:        st,
		Tasks:        service.NewTaskService(st, gamification.NewEngine(st)),
		Transactions: service.NewTransactionService(st),
		Journal:      service.NewJournalService(st),
		BrainDumps:   service.NewBrainDumpService(st, NewOrganizer(ctx, cfg)),
		Views:        service.NewViewService(st),
	}
}

func NewOrganizer(ctx context.Context, cfg Config) *organizer.Organizer {
	opts := []organizer.Option{organizer.WithTimeout(cfg.OrganizerTimeout)}
	gen, err := organizer.NewGeminiGenerator(ctx, cfg.APIKey, cfg.GeminiModel)
	if err != nil {
		slog.Warn("organizer is unavailable", slog.String("error", err.Error()))
		return organizer.New(organizer.Unavailable{Err: err}, opts...)
	}
	return organizer.New(gen, opts...)
}

func OpenRepository(ctx context.Context, cfg Config) (repository.BlobRepositoryI, error) {
	switch cfg.StorageDriver {
	case DriverMemory:
		slog.Info("using in-memory storage, records won't survive a restart")
		return repository.NewMemoryBlobRepo(), nil
	case DriverSQLite, "":
		repo, err := repository.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, errors.New("opening sqlite storage error: " + err.Error())
		}
		return repo, nil
	case DriverPostgres:
		if err := repository.MigratePostgres(ctx, &cfg.Postgres); err != nil {
			return nil, errors.New("migrating postgres error: " + err.Error())
		}
		repo, err := repository.NewPgBlobRepo(ctx, &cfg.Postgres)
		if err != nil {
			return nil, errors.New("opening postgres storage error: " + err.Error())
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
