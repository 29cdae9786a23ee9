package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/storage"
)

// TransactionService handles transaction reads.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns the owner's transactions ordered by date
// descending, each with its category resolved.
func (s *TransactionService) ListTransactions(ctx context.Context, ownerID uuid.UUID) ([]Transaction, error) {
	rows, err := s.storage.Transactions.ListForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = transactionFromStorage(row)
	}

	if err := s.resolveCategories(ctx, convertedTransactions); err != nil {
		return nil, err
	}
	return convertedTransactions, nil
}

// GetTransaction fetches one of the owner's transactions with its category
// resolved. Rows outside the owner scope surface as ErrNotFound.
func (s *TransactionService) GetTransaction(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByIDForOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperrors.ErrNotFound
	}

	converted := transactionFromStorage(row)
	single := []Transaction{converted}
	if err := s.resolveCategories(ctx, single); err != nil {
		return nil, err
	}
	return &single[0], nil
}

// resolveCategories attaches categories to the given transactions in one
// batched lookup.
func (s *TransactionService) resolveCategories(ctx context.Context, transactions []Transaction) error {
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	for i := range transactions {
		if transactions[i].CategoryID != nil && !seen[*transactions[i].CategoryID] {
			seen[*transactions[i].CategoryID] = true
			ids = append(ids, *transactions[i].CategoryID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	rows, err := s.storage.Categories.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}

	byID := make(map[uuid.UUID]Category, len(rows))
	for _, row := range rows {
		byID[row.ID] = categoryFromStorage(row)
	}
	for i := range transactions {
		if transactions[i].CategoryID == nil {
			continue
		}
		if resolved, ok := byID[*transactions[i].CategoryID]; ok {
			resolvedCopy := resolved
			transactions[i].Category = &resolvedCopy
		}
	}
	return nil
}
