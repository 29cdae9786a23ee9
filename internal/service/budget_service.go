package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/storage"
)

// BudgetService handles budget reads.
type BudgetService struct {
	storage *storage.Storage
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage) *BudgetService {
	return &BudgetService{storage: store}
}

// ListBudgets returns the owner's budgets, most recent start date first.
func (s *BudgetService) ListBudgets(ctx context.Context, ownerID uuid.UUID) ([]Budget, error) {
	rows, err := s.storage.Budgets.ListForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	convertedBudgets := make([]Budget, len(rows))
	for i, row := range rows {
		convertedBudgets[i] = budgetFromStorage(row)
	}
	return convertedBudgets, nil
}

// GetBudget fetches one of the owner's budgets. Rows outside the owner scope
// surface as ErrNotFound.
func (s *BudgetService) GetBudget(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*Budget, error) {
	row, err := s.storage.Budgets.FindByIDForOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperrors.ErrNotFound
	}
	converted := budgetFromStorage(row)
	return &converted, nil
}
