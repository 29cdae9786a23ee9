package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/storage"
)

// DeleteCategory removes a category owned by the caller. The single
// owner-filtered delete cannot tell "absent" from "exists but not yours", so
// both answer NotFound and nothing leaks about foreign rows. Referencing
// transactions and budgets keep their rows; the store nulls their category
// on delete.
type DeleteCategory struct {
	ID      uuid.UUID
	OwnerID uuid.UUID

	IAction
}

func (a *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Category.Delete(ctx, a.ID, a.OwnerID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}
