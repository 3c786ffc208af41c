package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/focusflow/internal/service"
	"github.com/limbo/focusflow/pkg/entity"
	"github.com/limbo/focusflow/pkg/httputil"
)

type OrganizeRequest struct {
	Content string `json:"content"`
}

type BrainDumpsResponse struct {
	BrainDumps []entity.BrainDump `json:"brainDumps"`
}

type OrganizeStatusResponse struct {
	InProgress bool `json:"inProgress"`
}

// OrganizeBrainDump waits for the organizer as long as the client does.
func (s *Server) OrganizeBrainDump(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req OrganizeRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		writeInvalidBody(w, logger, "organize brain dump", err)
		return
	}
	res, err := s.brainDumpService.Organize(r.Context(), service.OrganizeRequest{Content: req.Content})
	if err != nil {
		writeServiceError(w, logger, "organize brain dump", err)
		return
	}
	res.Tasks = orEmpty(res.Tasks)
	httputil.WriteJSONResponse(w, http.StatusCreated, res)
	logger.Info("brain dump organized")
}

func (s *Server) ListBrainDumps(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, BrainDumpsResponse{
		BrainDumps: orEmpty(s.brainDumpService.ListBrainDumps(r.Context())),
	})
}

func (s *Server) BrainDumpStatus(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, OrganizeStatusResponse{InProgress: s.brainDumpService.InProgress()})
}

func (s *Server) DeleteBrainDump(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.brainDumpService.DeleteBrainDump(ctx, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, logger, "delete brain dump", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
