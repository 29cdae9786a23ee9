package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/storage"
)

// DeleteTransaction removes one of the caller's transactions. Deleting the
// same row twice answers NotFound the second time.
type DeleteTransaction struct {
	ID      uuid.UUID
	OwnerID uuid.UUID

	IAction
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Transaction.Delete(ctx, a.ID, a.OwnerID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}
