package budget

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IBudgetWriter = (*Writer)(nil)

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

func (w *Writer) Insert(ctx context.Context, create *BudgetCreate) (*Budget, error) {
	q := psql.Insert(
		im.Into("budgets", "amount", "start_date", "end_date", "owner_id", "category_id"),
		im.Values(psql.Arg(
			create.Amount,
			create.StartDate,
			create.EndDate,
			create.OwnerID,
			create.CategoryID,
		)),
		im.Returning("id", "amount", "start_date", "end_date", "owner_id", "category_id", "created_at"),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[Budget]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update applies the non-nil patch fields to the owner's row.
func (w *Writer) Update(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, patch *BudgetPatch) error {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("budgets"),
	}
	changed := false
	if patch.Amount != nil {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(*patch.Amount))
		changed = true
	}
	if patch.StartDate != nil {
		queryMods = append(queryMods, um.SetCol("start_date").ToArg(*patch.StartDate))
		changed = true
	}
	if patch.EndDate != nil {
		queryMods = append(queryMods, um.SetCol("end_date").ToArg(*patch.EndDate))
		changed = true
	}
	if patch.CategoryID != nil {
		queryMods = append(queryMods, um.SetCol("category_id").ToArg(*patch.CategoryID))
		changed = true
	}
	if !changed {
		return nil
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)

	_, err := bob.Exec(ctx, w.tx, psql.Update(queryMods...))
	return err
}

func (w *Writer) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (bool, error) {
	q := psql.Delete(
		dm.From("budgets"),
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

// DeleteAllForOwner removes every budget owned by ownerID. Used by the
// user-deletion cascade.
func (w *Writer) DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) error {
	q := psql.Delete(
		dm.From("budgets"),
		dm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	_, err := bob.Exec(ctx, w.tx, q)
	return err
}
