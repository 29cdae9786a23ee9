package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) FindByIDForOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, id, ownerID)
	row, _ := args.Get(0).(*transaction.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionTable) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, ownerID)
	rows, _ := args.Get(0).([]*transaction.Transaction)
	return rows, args.Error(1)
}

type mockCategoryTable struct {
	mock.Mock
}

func (m *mockCategoryTable) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*category.Category)
	return row, args.Error(1)
}

func (m *mockCategoryTable) FindVisibleByName(ctx context.Context, name string, ownerID uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, name, ownerID)
	row, _ := args.Get(0).(*category.Category)
	return row, args.Error(1)
}

func (m *mockCategoryTable) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*category.Category, error) {
	args := m.Called(ctx, ids)
	rows, _ := args.Get(0).([]*category.Category)
	return rows, args.Error(1)
}

func (m *mockCategoryTable) ListVisible(ctx context.Context, ownerID uuid.UUID) ([]*category.Category, error) {
	args := m.Called(ctx, ownerID)
	rows, _ := args.Get(0).([]*category.Category)
	return rows, args.Error(1)
}

func testTransactionRow(ownerID uuid.UUID, categoryID *uuid.UUID) *transaction.Transaction {
	row := &transaction.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		Amount:      decimal.RequireFromString("42.50"),
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Description: sql.NullString{String: "groceries run", Valid: true},
		OwnerID:     ownerID,
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	if categoryID != nil {
		row.CategoryID = uuid.NullUUID{UUID: *categoryID, Valid: true}
	}
	return row
}

// -- ListTransactions --

func TestListTransactions_ResolvesCategoriesInOneLookup(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	mockTxs := new(mockTransactionTable)
	mockTxs.On("ListForOwner", mock.Anything, ownerID).Return([]*transaction.Transaction{
		testTransactionRow(ownerID, &categoryID),
		testTransactionRow(ownerID, &categoryID),
		testTransactionRow(ownerID, nil),
	}, nil)

	mockCategories := new(mockCategoryTable)
	mockCategories.On("FindByIDs", mock.Anything, []uuid.UUID{categoryID}).Return([]*category.Category{
		{ID: categoryID, Name: "Groceries"},
	}, nil)

	svc := NewTransactionService(&storage.Storage{
		Transactions: mockTxs,
		Categories:   mockCategories,
	})
	listed, err := svc.ListTransactions(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.Len(t, listed, 3)
	assert.NotNil(t, listed[0].Category)
	assert.Equal(t, "Groceries", listed[0].Category.Name)
	assert.NotNil(t, listed[1].Category)
	assert.Nil(t, listed[2].Category)
	assert.Nil(t, listed[2].CategoryID)
	// The duplicate category id must be fetched once.
	mockCategories.AssertNumberOfCalls(t, "FindByIDs", 1)
}

func TestListTransactions_NoCategoriesSkipsLookup(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())

	mockTxs := new(mockTransactionTable)
	mockTxs.On("ListForOwner", mock.Anything, ownerID).Return([]*transaction.Transaction{
		testTransactionRow(ownerID, nil),
	}, nil)

	mockCategories := new(mockCategoryTable)

	svc := NewTransactionService(&storage.Storage{
		Transactions: mockTxs,
		Categories:   mockCategories,
	})
	listed, err := svc.ListTransactions(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.Len(t, listed, 1)
	mockCategories.AssertNotCalled(t, "FindByIDs")
}

// -- GetTransaction --

func TestGetTransaction_Success(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	row := testTransactionRow(ownerID, &categoryID)

	mockTxs := new(mockTransactionTable)
	mockTxs.On("FindByIDForOwner", mock.Anything, row.ID, ownerID).Return(row, nil)

	mockCategories := new(mockCategoryTable)
	mockCategories.On("FindByIDs", mock.Anything, []uuid.UUID{categoryID}).Return([]*category.Category{
		{ID: categoryID, Name: "Groceries"},
	}, nil)

	svc := NewTransactionService(&storage.Storage{
		Transactions: mockTxs,
		Categories:   mockCategories,
	})
	found, err := svc.GetTransaction(context.Background(), ownerID, row.ID)

	assert.NoError(t, err)
	assert.Equal(t, row.ID, found.ID)
	assert.True(t, found.Amount.Equal(decimal.RequireFromString("42.50")))
	assert.NotNil(t, found.Description)
	assert.Equal(t, "groceries run", *found.Description)
	assert.NotNil(t, found.Category)
	assert.Equal(t, "Groceries", found.Category.Name)
}

func TestGetTransaction_NotFound(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())

	mockTxs := new(mockTransactionTable)
	mockTxs.On("FindByIDForOwner", mock.Anything, id, ownerID).Return(nil, nil)

	svc := NewTransactionService(&storage.Storage{Transactions: mockTxs})
	found, err := svc.GetTransaction(context.Background(), ownerID, id)

	assert.Nil(t, found)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
