package actions

import (
	"context"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/user"
)

// CreateUser inserts a new user. PasswordHash must already be hashed; the
// storage layer maps duplicate username or email to apperrors.ErrConflict.
type CreateUser struct {
	Username     string
	Email        string
	PasswordHash string

	// Created is populated on success.
	Created *user.User

	IAction
}

func (a *CreateUser) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.User.Insert(ctx, &user.UserCreate{
		Username:     a.Username,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
	})
	if err != nil {
		return err
	}

	a.Created = created
	return nil
}
