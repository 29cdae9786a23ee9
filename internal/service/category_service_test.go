package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/category"
)

func TestListCategories_MapsOwnership(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	ownedID := uuid.Must(uuid.NewV4())
	globalID := uuid.Must(uuid.NewV4())

	mockCategories := new(mockCategoryTable)
	mockCategories.On("ListVisible", mock.Anything, ownerID).Return([]*category.Category{
		{ID: globalID, Name: "Groceries"},
		{ID: ownedID, Name: "Climbing", OwnerID: uuid.NullUUID{UUID: ownerID, Valid: true}},
	}, nil)

	svc := NewCategoryService(&storage.Storage{Categories: mockCategories})
	listed, err := svc.ListCategories(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.Len(t, listed, 2)
	assert.Nil(t, listed[0].OwnerID)
	assert.NotNil(t, listed[1].OwnerID)
	assert.Equal(t, ownerID, *listed[1].OwnerID)
}
