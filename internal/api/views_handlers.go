package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/focusflow/internal/projection"
	"github.com/limbo/focusflow/pkg/httputil"
)

type ResetRequest struct {
	Confirm bool `json:"confirm"`
}

type WeekResponse struct {
	Days []projection.DaySummary `json:"days"`
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"status": "ok",
	})
}

func (s *Server) GetDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	view, err := s.viewService.Day(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		writeServiceError(w, logger, "get day", err)
		return
	}
	view.Tasks = orEmpty(view.Tasks)
	view.Transactions = orEmpty(view.Transactions)
	httputil.WriteJSONResponse(w, http.StatusOK, view)
}

func (s *Server) GetWeek(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	days, err := s.viewService.Week(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		writeServiceError(w, logger, "get week", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, WeekResponse{Days: days})
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.viewService.Stats(r.Context()))
}

func (s *Server) Reset(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req ResetRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		writeInvalidBody(w, logger, "reset", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.viewService.Reset(ctx, req.Confirm); err != nil {
		writeServiceError(w, logger, "reset", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Warn("all records reset")
}
