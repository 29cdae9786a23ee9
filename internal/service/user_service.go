package service

import (
	"context"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/storage"
)

// UserService handles identity reads and credential validation.
type UserService struct {
	storage *storage.Storage
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage) *UserService {
	return &UserService{storage: store}
}

// Authenticate validates email and password against the identity store.
// Both a missing user and a wrong password surface as ErrUnauthenticated so
// the caller cannot tell which accounts exist.
func (s *UserService) Authenticate(ctx context.Context, email string, password string) (*User, error) {
	row, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if row == nil || !auth.VerifyPassword(row.Password, password) {
		return nil, apperrors.ErrUnauthenticated
	}
	converted := userFromStorage(row)
	return &converted, nil
}

// ListUsers returns all users.
func (s *UserService) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.storage.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	convertedUsers := make([]User, len(rows))
	for i, row := range rows {
		convertedUsers[i] = userFromStorage(row)
	}
	return convertedUsers, nil
}
