package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/category"
)

// UpdateCategory applies a partial update to a category. The fetch is
// unscoped: an existing row owned by someone else, and the global rows,
// answer Forbidden rather than NotFound.
type UpdateCategory struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Patch   category.CategoryPatch

	// Updated is populated on success.
	Updated *category.Category

	IAction
}

func (a *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Category.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if row == nil {
		return apperrors.ErrNotFound
	}
	if !row.OwnerID.Valid || row.OwnerID.UUID != a.OwnerID {
		return apperrors.ErrForbidden
	}

	if err := writer.Category.Update(ctx, a.ID, &a.Patch); err != nil {
		return err
	}

	updated, err := writer.Category.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}
	a.Updated = updated
	return nil
}
