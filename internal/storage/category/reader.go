package category

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

var _ ICategoryTable = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	q := psql.Select(
		sm.Columns("id", "name", "owner_id"),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Category]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// FindVisibleByName looks for a category with the given name among the rows
// visible to ownerID, meaning the user's own categories plus the global ones.
func (r *Reader) FindVisibleByName(ctx context.Context, name string, ownerID uuid.UUID) (*Category, error) {
	q := psql.Select(
		sm.Columns("id", "name", "owner_id"),
		sm.From("categories"),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
		sm.Where(psql.Raw("(owner_id = ? OR owner_id IS NULL)", ownerID)),
		sm.Limit(1),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[Category]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *Reader) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	q := psql.Select(
		sm.Columns("id", "name", "owner_id"),
		sm.From("categories"),
		sm.Where(psql.Quote("id").In(psql.Arg(args...))),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	result := make([]*Category, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// ListVisible returns the user's categories plus the global ones.
func (r *Reader) ListVisible(ctx context.Context, ownerID uuid.UUID) ([]*Category, error) {
	q := psql.Select(
		sm.Columns("id", "name", "owner_id"),
		sm.From("categories"),
		sm.Where(psql.Raw("(owner_id = ? OR owner_id IS NULL)", ownerID)),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	result := make([]*Category, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
