package budget

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a budget record covering a category over a date range.
type Budget struct {
	ID         uuid.UUID       `db:"id"`
	Amount     decimal.Decimal `db:"amount"`
	StartDate  time.Time       `db:"start_date"`
	EndDate    time.Time       `db:"end_date"`
	OwnerID    uuid.UUID       `db:"owner_id"`
	CategoryID uuid.NullUUID   `db:"category_id"`
	CreatedAt  time.Time       `db:"created_at"`
}

// BudgetCreate is the input for creating a new budget. OwnerID is always
// taken from the authenticated user.
type BudgetCreate struct {
	Amount     decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
	OwnerID    uuid.UUID
	CategoryID *uuid.UUID
}

// BudgetPatch carries a partial update. Nil fields are left untouched.
type BudgetPatch struct {
	Amount     *decimal.Decimal
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
}

// IBudgetTable defines the read-side interface for budget storage operations.
// Lookups return (nil, nil) when no row matches the owner scope.
//
//go:generate mockery --name IBudgetTable --output mock_IBudgetTable.go
type IBudgetTable interface {
	FindByIDForOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Budget, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*Budget, error)
}

// IBudgetWriter adds the write-side operations on top of the reads. Satisfied
// by the tx-scoped Writer.
//
//go:generate mockery --name IBudgetWriter --output mock_IBudgetWriter.go
type IBudgetWriter interface {
	IBudgetTable
	Insert(ctx context.Context, create *BudgetCreate) (*Budget, error)
	Update(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, patch *BudgetPatch) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (bool, error)
	DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) error
}
