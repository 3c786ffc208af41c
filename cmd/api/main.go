// @title FocusFlow API
// @description API for productivity app "FocusFlow": tasks, finances, journal and brain dumps
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/focusflow/internal/api"
	"github.com/limbo/focusflow/internal/app"
	"github.com/limbo/focusflow/pkg/cleanup"
	"github.com/limbo/focusflow/pkg/config"
	"github.com/limbo/focusflow/pkg/logger"
)

func main() {
	cfg := app.LoadConfig(config.New())
	logger.Setup(cfg.LogLevel)
	defer cleanup.CleanUp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx, cfg)
	if err != nil {
		slog.Error("startup error", slog.String("error", err.Error()))
		cleanup.CleanUp()
		os.Exit(1)
	}
	serv := api.New(&api.ServicesList{
		TaskService:        a.Tasks,
		TransactionService: a.Transactions,
		JournalService:     a.Journal,
		BrainDumpService:   a.BrainDumps,
		ViewService:        a.Views,
	})
	if err := serv.Run(ctx, cfg.APIAddress); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}
