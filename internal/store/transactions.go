package store

import (
	"context"

	errorvalues "github.com/limbo/focusflow/internal/error_values"
	"github.com/limbo/focusflow/pkg/entity"
)

func (s *Store) CreateTransaction(ctx context.Context, txn entity.Transaction) entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	if txn.ID == "" {
		txn.ID = s.newID()
	}
	s.transactions = append([]entity.Transaction{txn}, s.transactions...)
	s.committedLocked(ctx)
	return txn
}

func (s *Store) Transactions() []entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Transaction(nil), s.transactions...)
}

func (s *Store) UpdateTransaction(ctx context.Context, id string, fn func(txn *entity.Transaction) error) (entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.transactionIndexLocked(id)
	if i < 0 {
		return entity.Transaction{}, errorvalues.ErrTransactionNotFound
	}
	updated := s.transactions[i]
	if err := fn(&updated); err != nil {
		return entity.Transaction{}, err
	}
	updated.ID = id
	s.transactions[i] = updated
	s.committedLocked(ctx)
	return updated, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.transactionIndexLocked(id)
	if i < 0 {
		return errorvalues.ErrTransactionNotFound
	}
	s.transactions = append(s.transactions[:i:i], s.transactions[i+1:]...)
	s.committedLocked(ctx)
	return nil
}

func (s *Store) transactionIndexLocked(id string) int {
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			return i
		}
	}
	return -1
}
