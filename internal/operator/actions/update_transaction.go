package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// UpdateTransaction applies a partial update to one of the caller's
// transactions. The owner-filtered fetch answers NotFound for absent and
// foreign rows alike; no separate ownership check is needed afterwards.
type UpdateTransaction struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Patch   transaction.TransactionPatch

	// Updated is populated on success.
	Updated *transaction.Transaction

	IAction
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transaction.FindByIDForOwner(ctx, a.ID, a.OwnerID)
	if err != nil {
		return err
	}
	if row == nil {
		return apperrors.ErrNotFound
	}

	if err := writer.Transaction.Update(ctx, a.ID, a.OwnerID, &a.Patch); err != nil {
		return err
	}

	updated, err := writer.Transaction.FindByIDForOwner(ctx, a.ID, a.OwnerID)
	if err != nil {
		return err
	}
	a.Updated = updated
	return nil
}
