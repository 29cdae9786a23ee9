package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/storage"
)

// DeleteBudget removes one of the caller's budgets.
type DeleteBudget struct {
	ID      uuid.UUID
	OwnerID uuid.UUID

	IAction
}

func (a *DeleteBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Budget.Delete(ctx, a.ID, a.OwnerID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	return nil
}
