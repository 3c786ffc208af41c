package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/focusflow/internal/error_values"
	"github.com/limbo/focusflow/pkg/httputil"
)

var notFoundErrors = []error{
	errorvalues.ErrTaskNotFound,
	errorvalues.ErrSubtaskNotFound,
	errorvalues.ErrTransactionNotFound,
	errorvalues.ErrJournalEntryNotFound,
	errorvalues.ErrBrainDumpNotFound,
}

// writeServiceError maps service sentinels to status codes. op prefixes the log line.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			logger.Info(op+" error: not found", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusNotFound, target.Error(), nil)
			return
		}
	}
	switch {
	case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrEmptyBrainDump):
		logger.Info(op+" error: invalid input", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid input", err)
	case errors.Is(err, errorvalues.ErrConfirmationRequired):
		logger.Info(op + " error: not confirmed")
		httputil.WriteErrorResponse(w, http.StatusPreconditionFailed, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrOrganizeInProgress):
		logger.Info(op + " error: organizing in progress")
		httputil.WriteErrorResponse(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrOrganizeFailed):
		logger.Error(op+" error: organizer failed", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadGateway, errorvalues.ErrOrganizeFailed.Error(), nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}

func writeInvalidBody(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	logger.Info(op + " error: invalid body")
	httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
}
