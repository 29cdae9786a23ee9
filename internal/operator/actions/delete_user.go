package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/storage"
)

// DeleteUser removes a user and everything they own in one transaction.
// Global categories are never touched by the cascade.
type DeleteUser struct {
	ID uuid.UUID

	IAction
}

func (a *DeleteUser) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Transaction.DeleteAllForOwner(ctx, a.ID); err != nil {
		return err
	}
	if err := writer.Budget.DeleteAllForOwner(ctx, a.ID); err != nil {
		return err
	}
	if err := writer.Category.DeleteAllForOwner(ctx, a.ID); err != nil {
		return err
	}

	deleted, err := writer.User.Delete(ctx, a.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}
