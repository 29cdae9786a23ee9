package category

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-server/internal/apperrors"
)

const uniqueViolation = "23505"

var _ ICategoryWriter = (*Writer)(nil)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert creates a privately owned category. Global categories are seeded by
// migration, never through this path. A name taken by another of the owner's
// categories trips the unique index and surfaces as apperrors.ErrConflict.
func (w *Writer) Insert(ctx context.Context, name string, ownerID uuid.UUID) (*Category, error) {
	q := psql.Insert(
		im.Into("categories", "name", "owner_id"),
		im.Values(psql.Arg(name, ownerID)),
		im.Returning("id", "name", "owner_id"),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[Category]())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return &row, nil
}

// Update applies the non-nil patch fields to the given row. A patch with no
// set fields is a no-op. A rename onto a name the owner already uses trips
// the unique index and surfaces as apperrors.ErrConflict.
func (w *Writer) Update(ctx context.Context, id uuid.UUID, patch *CategoryPatch) error {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("categories"),
	}
	changed := false
	if patch.Name != nil {
		queryMods = append(queryMods, um.SetCol("name").ToArg(*patch.Name))
		changed = true
	}
	if !changed {
		return nil
	}
	queryMods = append(queryMods, um.Where(psql.Quote("id").EQ(psql.Arg(id))))

	_, err := bob.Exec(ctx, w.tx, psql.Update(queryMods...))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}

// Delete removes a category owned by ownerID. Global and foreign rows are not
// matched, so the affected count distinguishes "deleted" from "absent or not
// yours".
func (w *Writer) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (bool, error) {
	q := psql.Delete(
		dm.From("categories"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	res, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteAllForOwner removes every category owned by ownerID. Used by the
// user-deletion cascade; global categories are untouched.
func (w *Writer) DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) error {
	q := psql.Delete(
		dm.From("categories"),
		dm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}
