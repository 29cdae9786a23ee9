package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/budget"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
	"github.com/carson-networks/finance-server/internal/storage/user"
)

type mockUserWriter struct {
	mock.Mock
}

func (m *mockUserWriter) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*user.User)
	return row, args.Error(1)
}

func (m *mockUserWriter) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	row, _ := args.Get(0).(*user.User)
	return row, args.Error(1)
}

func (m *mockUserWriter) List(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*user.User)
	return rows, args.Error(1)
}

func (m *mockUserWriter) Insert(ctx context.Context, create *user.UserCreate) (*user.User, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*user.User)
	return row, args.Error(1)
}

func (m *mockUserWriter) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockCategoryWriter struct {
	mock.Mock
}

func (m *mockCategoryWriter) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*category.Category)
	return row, args.Error(1)
}

func (m *mockCategoryWriter) FindVisibleByName(ctx context.Context, name string, ownerID uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, name, ownerID)
	row, _ := args.Get(0).(*category.Category)
	return row, args.Error(1)
}

func (m *mockCategoryWriter) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*category.Category, error) {
	args := m.Called(ctx, ids)
	rows, _ := args.Get(0).([]*category.Category)
	return rows, args.Error(1)
}

func (m *mockCategoryWriter) ListVisible(ctx context.Context, ownerID uuid.UUID) ([]*category.Category, error) {
	args := m.Called(ctx, ownerID)
	rows, _ := args.Get(0).([]*category.Category)
	return rows, args.Error(1)
}

func (m *mockCategoryWriter) Insert(ctx context.Context, name string, ownerID uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, name, ownerID)
	row, _ := args.Get(0).(*category.Category)
	return row, args.Error(1)
}

func (m *mockCategoryWriter) Update(ctx context.Context, id uuid.UUID, patch *category.CategoryPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *mockCategoryWriter) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Bool(0), args.Error(1)
}

func (m *mockCategoryWriter) DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

type mockTransactionWriter struct {
	mock.Mock
}

func (m *mockTransactionWriter) FindByIDForOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, id, ownerID)
	row, _ := args.Get(0).(*transaction.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionWriter) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, ownerID)
	rows, _ := args.Get(0).([]*transaction.Transaction)
	return rows, args.Error(1)
}

func (m *mockTransactionWriter) Insert(ctx context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*transaction.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionWriter) Update(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, patch *transaction.TransactionPatch) error {
	args := m.Called(ctx, id, ownerID, patch)
	return args.Error(0)
}

func (m *mockTransactionWriter) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Bool(0), args.Error(1)
}

func (m *mockTransactionWriter) DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

type mockBudgetWriter struct {
	mock.Mock
}

func (m *mockBudgetWriter) FindByIDForOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*budget.Budget, error) {
	args := m.Called(ctx, id, ownerID)
	row, _ := args.Get(0).(*budget.Budget)
	return row, args.Error(1)
}

func (m *mockBudgetWriter) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*budget.Budget, error) {
	args := m.Called(ctx, ownerID)
	rows, _ := args.Get(0).([]*budget.Budget)
	return rows, args.Error(1)
}

func (m *mockBudgetWriter) Insert(ctx context.Context, create *budget.BudgetCreate) (*budget.Budget, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*budget.Budget)
	return row, args.Error(1)
}

func (m *mockBudgetWriter) Update(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, patch *budget.BudgetPatch) error {
	args := m.Called(ctx, id, ownerID, patch)
	return args.Error(0)
}

func (m *mockBudgetWriter) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Bool(0), args.Error(1)
}

func (m *mockBudgetWriter) DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

// testWriter assembles a Writer from whichever mocks a test needs. Nil fields
// stay nil; touching one fails the test loudly.
func testWriter(u *mockUserWriter, c *mockCategoryWriter, tr *mockTransactionWriter, b *mockBudgetWriter) *storage.Writer {
	w := &storage.Writer{}
	if u != nil {
		w.User = u
	}
	if c != nil {
		w.Category = c
	}
	if tr != nil {
		w.Transaction = tr
	}
	if b != nil {
		w.Budget = b
	}
	return w
}
