package service

import (
	"github.com/carson-networks/finance-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	User        *UserService
	Category    *CategoryService
	Transaction *TransactionService
	Budget      *BudgetService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		User:        NewUserService(store),
		Category:    NewCategoryService(store),
		Transaction: NewTransactionService(store),
		Budget:      NewBudgetService(store),
	}
}
