package category

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// Category represents a category record. A row with no owner is a global
// category visible to every user.
type Category struct {
	ID      uuid.UUID     `db:"id"`
	Name    string        `db:"name"`
	OwnerID uuid.NullUUID `db:"owner_id"`
}

// CategoryPatch carries a partial update. Nil fields are left untouched.
type CategoryPatch struct {
	Name *string
}

// ICategoryTable defines the read-side interface for category storage
// operations. Lookups return (nil, nil) when no row matches.
//
//go:generate mockery --name ICategoryTable --output mock_ICategoryTable.go
type ICategoryTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindVisibleByName(ctx context.Context, name string, ownerID uuid.UUID) (*Category, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Category, error)
	ListVisible(ctx context.Context, ownerID uuid.UUID) ([]*Category, error)
}

// ICategoryWriter adds the write-side operations on top of the reads.
// Satisfied by the tx-scoped Writer.
//
//go:generate mockery --name ICategoryWriter --output mock_ICategoryWriter.go
type ICategoryWriter interface {
	ICategoryTable
	Insert(ctx context.Context, name string, ownerID uuid.UUID) (*Category, error)
	Update(ctx context.Context, id uuid.UUID, patch *CategoryPatch) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (bool, error)
	DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) error
}
