package transaction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

var _ ITransactionTable = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByIDForOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns("id", "amount", "date", "description", "is_income", "owner_id", "category_id", "created_at"),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// ListForOwner returns the owner's transactions, most recent date first.
func (r *Reader) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*Transaction, error) {
	q := psql.Select(
		sm.Columns("id", "amount", "date", "description", "is_income", "owner_id", "category_id", "created_at"),
		sm.From("transactions"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy("date").Desc(),
		sm.OrderBy("id").Desc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
