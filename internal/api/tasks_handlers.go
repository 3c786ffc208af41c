package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/focusflow/internal/service"
	"github.com/limbo/focusflow/pkg/entity"
	"github.com/limbo/focusflow/pkg/httputil"
)

const requestTimeout = 10 * time.Second

type CreateTaskRequest struct {
	Text     string `json:"text"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Notes    string `json:"notes"`
}

type UpdateTaskRequest struct {
	Text     *string `json:"text"`
	Date     *string `json:"date"`
	Category *string `json:"category"`
	Notes    *string `json:"notes"`
}

type MigrateTaskRequest struct {
	Date string `json:"date"`
}

type AddSubtaskRequest struct {
	Text string `json:"text"`
}

type TasksResponse struct {
	Date  string        `json:"date,omitempty"`
	Tasks []entity.Task `json:"tasks"`
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateTaskRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		writeInvalidBody(w, logger, "create task", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, err := s.taskService.CreateTask(ctx, service.CreateTaskRequest{
		Text:     req.Text,
		Date:     req.Date,
		Category: req.Category,
		Notes:    req.Notes,
	})
	if err != nil {
		writeServiceError(w, logger, "create task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, task)
	logger.Info("task created")
}

func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date := r.URL.Query().Get("date")
	tasks, err := s.taskService.ListTasks(r.Context(), date)
	if err != nil {
		writeServiceError(w, logger, "list tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TasksResponse{Date: date, Tasks: orEmpty(tasks)})
}

func (s *Server) GetTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	task, err := s.taskService.GetTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, logger, "get task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
}

func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req UpdateTaskRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		writeInvalidBody(w, logger, "update task", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, err := s.taskService.UpdateTask(ctx, chi.URLParam(r, "id"), service.UpdateTaskRequest{
		Text:     req.Text,
		Date:     req.Date,
		Category: req.Category,
		Notes:    req.Notes,
	})
	if err != nil {
		writeServiceError(w, logger, "update task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
}

func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	// Anything but an explicit true leaves the task in place
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.taskService.DeleteTask(ctx, chi.URLParam(r, "id"), confirmed); err != nil {
		writeServiceError(w, logger, "delete task", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("task deleted")
}

func (s *Server) ToggleTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	res, err := s.taskService.ToggleTask(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, logger, "toggle task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
}

func (s *Server) MigrateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req MigrateTaskRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		writeInvalidBody(w, logger, "migrate task", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, err := s.taskService.MigrateTask(ctx, chi.URLParam(r, "id"), service.MigrateTaskRequest{Date: req.Date})
	if err != nil {
		writeServiceError(w, logger, "migrate task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, task)
}

func (s *Server) AddSubtask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req AddSubtaskRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		writeInvalidBody(w, logger, "add subtask", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, err := s.taskService.AddSubtask(ctx, chi.URLParam(r, "id"), service.AddSubtaskRequest{Text: req.Text})
	if err != nil {
		writeServiceError(w, logger, "add subtask", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, task)
}

func (s *Server) ToggleSubtask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, err := s.taskService.ToggleSubtask(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "subtaskID"))
	if err != nil {
		writeServiceError(w, logger, "toggle subtask", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
}

func (s *Server) DeleteSubtask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, err := s.taskService.DeleteSubtask(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "subtaskID"))
	if err != nil {
		writeServiceError(w, logger, "delete subtask", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
}

func (s *Server) CategoryTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	tasks, err := s.taskService.CategoryTasks(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		writeServiceError(w, logger, "category tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TasksResponse{Tasks: orEmpty(tasks)})
}

// orEmpty keeps empty lists encoded as [] rather than null.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
