package user

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-server/internal/apperrors"
)

var _ IUserWriter = (*Writer)(nil)

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

const uniqueViolation = "23505"

// Insert creates a new user. A duplicate username or email surfaces as
// apperrors.ErrConflict.
func (w *Writer) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	q := psql.Insert(
		im.Into("users", "username", "email", "password"),
		im.Values(psql.Arg(create.Username, create.Email, create.PasswordHash)),
		im.Returning("id", "username", "email", "password", "created_at"),
	)
	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[User]())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return &row, nil
}

// Delete removes a user row. Owned entities must already have been removed by
// the caller within the same transaction.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	q := psql.Delete(
		dm.From("users"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
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
