package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/focusflow/internal/service"
	"github.com/limbo/focusflow/pkg/httputil"
)

type SaveJournalRequest struct {
	Grateful [3]string `json:"grateful"`
	Thoughts string    `json:"thoughts"`
}

func (s *Server) GetJournal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	entry, err := s.journalService.GetEntry(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		writeServiceError(w, logger, "get journal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
}

func (s *Server) SaveJournal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SaveJournalRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		writeInvalidBody(w, logger, "save journal", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	entry, err := s.journalService.SaveEntry(ctx, chi.URLParam(r, "date"), service.SaveJournalRequest{
		Grateful: req.Grateful,
		Thoughts: req.Thoughts,
	})
	if err != nil {
		writeServiceError(w, logger, "save journal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
}

func (s *Server) DeleteJournal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.journalService.DeleteEntry(ctx, chi.URLParam(r, "date")); err != nil {
		writeServiceError(w, logger, "delete journal", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
