package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/storage"
)

// CategoryService handles category reads.
type CategoryService struct {
	storage *storage.Storage
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// ListCategories returns the categories visible to the user: their own plus
// the global ones.
func (s *CategoryService) ListCategories(ctx context.Context, ownerID uuid.UUID) ([]Category, error) {
	rows, err := s.storage.Categories.ListVisible(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	convertedCategories := make([]Category, len(rows))
	for i, row := range rows {
		convertedCategories[i] = categoryFromStorage(row)
	}
	return convertedCategories, nil
}
