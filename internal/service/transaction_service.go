package service

import (
	"context"
	"log"
	"strings"

	"github.com/limbo/focusflow/internal/projection"
	"github.com/limbo/focusflow/internal/store"
	"github.com/limbo/focusflow/pkg/entity"
	"github.com/shopspring/decimal"
)

type TransactionService struct {
	store *store.Store
}

func NewTransactionService(st *store.Store) *TransactionService {
	if st == nil {
		log.Fatal("provided nil store")
	}
	return &TransactionService{store: st}
}

func (trs *TransactionService) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*entity.Transaction, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	// Already checked by nonneg_decimal
	amount := decimal.RequireFromString(strings.TrimSpace(req.Amount))
	date := req.Date
	if date == "" {
		date = trs.store.Today()
	}
	txn := trs.store.CreateTransaction(ctx, entity.Transaction{
		Amount:      amount,
		Description: req.Description,
		Type:        entity.TransactionType(req.Type),
		Date:        date,
		Category:    req.Category,
		Notes:       req.Notes,
	})
	return &txn, nil
}

func (trs *TransactionService) ListTransactions(ctx context.Context, date string) ([]entity.Transaction, error) {
	transactions := trs.store.Transactions()
	if date == "" {
		return transactions, nil
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}
	return projection.DayTransactions(transactions, date), nil
}

func (trs *TransactionService) UpdateTransaction(ctx context.Context, id string, req UpdateTransactionRequest) (*entity.Transaction, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	txn, err := trs.store.UpdateTransaction(ctx, id, func(txn *entity.Transaction) error {
		if req.Amount != nil {
			txn.Amount = decimal.RequireFromString(strings.TrimSpace(*req.Amount))
		}
		if req.Description != nil {
			txn.Description = *req.Description
		}
		if req.Type != nil {
			txn.Type = entity.TransactionType(*req.Type)
		}
		if req.Date != nil {
			txn.Date = *req.Date
		}
		if req.Category != nil {
			txn.Category = *req.Category
		}
		if req.Notes != nil {
			txn.Notes = *req.Notes
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (trs *TransactionService) DeleteTransaction(ctx context.Context, id string) error {
	return trs.store.DeleteTransaction(ctx, id)
}

func (trs *TransactionService) Balance(ctx context.Context) decimal.Decimal {
	return projection.GlobalBalance(trs.store.Transactions())
}
