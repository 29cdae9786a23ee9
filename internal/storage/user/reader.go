package user

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

var _ IUserTable = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	q := psql.Select(
		sm.Columns("id", "username", "email", "password", "created_at"),
		sm.From("users"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[User]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *Reader) FindByEmail(ctx context.Context, email string) (*User, error) {
	q := psql.Select(
		sm.Columns("id", "username", "email", "password", "created_at"),
		sm.From("users"),
		sm.Where(psql.Quote("email").EQ(psql.Arg(email))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[User]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *Reader) List(ctx context.Context) ([]*User, error) {
	q := psql.Select(
		sm.Columns("id", "username", "email", "password", "created_at"),
		sm.From("users"),
		sm.OrderBy("created_at").Asc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[User]())
	if err != nil {
		return nil, err
	}
	result := make([]*User, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
