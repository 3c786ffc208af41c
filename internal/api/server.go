package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/focusflow/internal/service"
)

type Server struct {
	mx                 *chi.Mux
	taskService        service.TaskServiceI
	transactionService service.TransactionServiceI
	journalService     service.JournalServiceI
	brainDumpService   service.BrainDumpServiceI
	viewService        service.ViewServiceI
}

type ServicesList struct {
	TaskService        service.TaskServiceI
	TransactionService service.TransactionServiceI
	JournalService     service.JournalServiceI
	BrainDumpService   service.BrainDumpServiceI
	ViewService        service.ViewServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		taskService:        servicesOptions.TaskService,
		transactionService: servicesOptions.TransactionService,
		journalService:     servicesOptions.JournalService,
		brainDumpService:   servicesOptions.BrainDumpService,
		viewService:        servicesOptions.ViewService,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthz", s.Healthz)

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", s.CreateTask)
			r.Get("/", s.ListTasks)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.GetTask)
				r.Patch("/", s.UpdateTask)
				r.Delete("/", s.DeleteTask)
				r.Post("/toggle", s.ToggleTask)
				r.Post("/migrate", s.MigrateTask)
				r.Post("/subtasks", s.AddSubtask)
				r.Post("/subtasks/{subtaskID}/toggle", s.ToggleSubtask)
				r.Delete("/subtasks/{subtaskID}", s.DeleteSubtask)
			})
		})
		r.Get("/categories/{category}/tasks", s.CategoryTasks)

		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", s.CreateTransaction)
			r.Get("/", s.ListTransactions)
			r.Patch("/{id}", s.UpdateTransaction)
			r.Delete("/{id}", s.DeleteTransaction)
		})
		r.Get("/balance", s.GetBalance)

		r.Route("/journal/{date}", func(r chi.Router) {
			r.Get("/", s.GetJournal)
			r.Put("/", s.SaveJournal)
			r.Delete("/", s.DeleteJournal)
		})

		r.Get("/days/{date}", s.GetDay)
		r.Get("/weeks/{date}", s.GetWeek)

		r.Route("/braindumps", func(r chi.Router) {
			r.Post("/organize", s.OrganizeBrainDump)
			r.Get("/", s.ListBrainDumps)
			r.Get("/status", s.BrainDumpStatus)
			r.Delete("/{id}", s.DeleteBrainDump)
		})

		r.Get("/stats", s.GetStats)
		r.Post("/reset", s.Reset)
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Default().Info("server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		slog.Default().Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	}
}
