package transaction

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record. Every transaction is privately
// owned; there are no global transactions.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	Amount      decimal.Decimal `db:"amount"`
	Date        time.Time       `db:"date"`
	Description sql.NullString  `db:"description"`
	IsIncome    bool            `db:"is_income"`
	OwnerID     uuid.UUID       `db:"owner_id"`
	CategoryID  uuid.NullUUID   `db:"category_id"`
	CreatedAt   time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction. OwnerID is
// always taken from the authenticated user, never from the request body.
type TransactionCreate struct {
	Amount      decimal.Decimal
	Date        time.Time
	Description *string
	IsIncome    bool
	OwnerID     uuid.UUID
	CategoryID  *uuid.UUID
}

// TransactionPatch carries a partial update. Nil fields are left untouched,
// which also means a field cannot be reset to null through a patch.
type TransactionPatch struct {
	Amount      *decimal.Decimal
	Date        *time.Time
	Description *string
	IsIncome    *bool
	CategoryID  *uuid.UUID
}

// ITransactionTable defines the read-side interface for transaction storage
// operations. Lookups return (nil, nil) when no row matches the owner scope.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByIDForOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Transaction, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*Transaction, error)
}

// ITransactionWriter adds the write-side operations on top of the reads.
// Satisfied by the tx-scoped Writer.
//
//go:generate mockery --name ITransactionWriter --output mock_ITransactionWriter.go
type ITransactionWriter interface {
	ITransactionTable
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, patch *TransactionPatch) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (bool, error)
	DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) error
}
