package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/budget"
)

// UpdateBudget applies a partial update to one of the caller's budgets,
// following the transaction update pattern: owner-filtered fetch, NotFound
// for absent and foreign rows alike.
type UpdateBudget struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Patch   budget.BudgetPatch

	// Updated is populated on success.
	Updated *budget.Budget

	IAction
}

func (a *UpdateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Budget.FindByIDForOwner(ctx, a.ID, a.OwnerID)
	if err != nil {
		return err
	}
	if row == nil {
		return apperrors.ErrNotFound
	}

	if err := writer.Budget.Update(ctx, a.ID, a.OwnerID, &a.Patch); err != nil {
		return err
	}

	updated, err := writer.Budget.FindByIDForOwner(ctx, a.ID, a.OwnerID)
	if err != nil {
		return err
	}
	a.Updated = updated
	return nil
}
