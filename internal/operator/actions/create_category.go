package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/category"
)

// CreateCategory inserts a privately owned category after checking that no
// category with the same name is already visible to the owner, whether their
// own or global. The check and insert share one transaction, and the unique
// indexes on categories back it up under contention.
type CreateCategory struct {
	Name    string
	OwnerID uuid.UUID

	// Created is populated on success.
	Created *category.Category

	IAction
}

func (a *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Category.FindVisibleByName(ctx, a.Name, a.OwnerID)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperrors.ErrConflict
	}

	created, err := writer.Category.Insert(ctx, a.Name, a.OwnerID)
	if err != nil {
		return err
	}

	a.Created = created
	return nil
}
