package budget

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

var _ IBudgetTable = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByIDForOwner(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Budget, error) {
	q := psql.Select(
		sm.Columns("id", "amount", "start_date", "end_date", "owner_id", "category_id", "created_at"),
		sm.From("budgets"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Budget]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// ListForOwner returns the owner's budgets, most recent start date first.
func (r *Reader) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*Budget, error) {
	q := psql.Select(
		sm.Columns("id", "amount", "start_date", "end_date", "owner_id", "category_id", "created_at"),
		sm.From("budgets"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy("start_date").Desc(),
		sm.OrderBy("id").Desc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Budget]())
	if err != nil {
		return nil, err
	}
	result := make([]*Budget, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
