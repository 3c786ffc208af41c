package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/focusflow/internal/service"
	"github.com/limbo/focusflow/pkg/entity"
	"github.com/limbo/focusflow/pkg/httputil"
	"github.com/shopspring/decimal"
)

// Amounts are accepted both as JSON numbers and as strings.
type CreateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description"`
	Type        string           `json:"type"`
	Date        string           `json:"date"`
	Category    string           `json:"category"`
	Notes       string           `json:"notes"`
}

type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	Type        *string          `json:"type"`
	Date        *string          `json:"date"`
	Category    *string          `json:"category"`
	Notes       *string          `json:"notes"`
}

type TransactionsResponse struct {
	Date         string               `json:"date,omitempty"`
	Transactions []entity.Transaction `json:"transactions"`
}

type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

func amountString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func (s *Server) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateTransactionRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		writeInvalidBody(w, logger, "create transaction", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	txn, err := s.transactionService.CreateTransaction(ctx, service.CreateTransactionRequest{
		Amount:      amountString(req.Amount),
		Description: req.Description,
		Type:        req.Type,
		Date:        req.Date,
		Category:    req.Category,
		Notes:       req.Notes,
	})
	if err != nil {
		writeServiceError(w, logger, "create transaction", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, txn)
	logger.Info("transaction created")
}

func (s *Server) ListTransactions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date := r.URL.Query().Get("date")
	transactions, err := s.transactionService.ListTransactions(r.Context(), date)
	if err != nil {
		writeServiceError(w, logger, "list transactions", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TransactionsResponse{Date: date, Transactions: orEmpty(transactions)})
}

func (s *Server) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req UpdateTransactionRequest
	if err := httputil.ReadJSON(r, &req); err != nil {
		writeInvalidBody(w, logger, "update transaction", err)
		return
	}
	upd := service.UpdateTransactionRequest{
		Description: req.Description,
		Type:        req.Type,
		Date:        req.Date,
		Category:    req.Category,
		Notes:       req.Notes,
	}
	if req.Amount != nil {
		amount := req.Amount.String()
		upd.Amount = &amount
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	txn, err := s.transactionService.UpdateTransaction(ctx, chi.URLParam(r, "id"), upd)
	if err != nil {
		writeServiceError(w, logger, "update transaction", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, txn)
}

func (s *Server) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.transactionService.DeleteTransaction(ctx, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, logger, "delete transaction", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) GetBalance(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, BalanceResponse{Balance: s.transactionService.Balance(r.Context())})
}
