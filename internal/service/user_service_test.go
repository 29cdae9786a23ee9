package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/user"
)

type mockUserTable struct {
	mock.Mock
}

func (m *mockUserTable) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*user.User)
	return row, args.Error(1)
}

func (m *mockUserTable) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	row, _ := args.Get(0).(*user.User)
	return row, args.Error(1)
}

func (m *mockUserTable) List(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*user.User)
	return rows, args.Error(1)
}

func testUserRow(t *testing.T, email string, password string) *user.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	assert.NoError(t, err)
	return &user.User{
		ID:        uuid.Must(uuid.NewV4()),
		Username:  "alice",
		Email:     email,
		Password:  hash,
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

// -- Authenticate --

func TestAuthenticate_Success(t *testing.T) {
	row := testUserRow(t, "alice@example.com", "s3cret")

	mockUsers := new(mockUserTable)
	mockUsers.On("FindByEmail", mock.Anything, "alice@example.com").Return(row, nil)

	svc := NewUserService(&storage.Storage{Users: mockUsers})
	authenticated, err := svc.Authenticate(context.Background(), "alice@example.com", "s3cret")

	assert.NoError(t, err)
	assert.Equal(t, row.ID, authenticated.ID)
	assert.Equal(t, row.Email, authenticated.Email)
	mockUsers.AssertExpectations(t)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	row := testUserRow(t, "alice@example.com", "s3cret")

	mockUsers := new(mockUserTable)
	mockUsers.On("FindByEmail", mock.Anything, "alice@example.com").Return(row, nil)

	svc := NewUserService(&storage.Storage{Users: mockUsers})
	authenticated, err := svc.Authenticate(context.Background(), "alice@example.com", "wrong")

	assert.Nil(t, authenticated)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	mockUsers := new(mockUserTable)
	mockUsers.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	svc := NewUserService(&storage.Storage{Users: mockUsers})
	authenticated, err := svc.Authenticate(context.Background(), "nobody@example.com", "s3cret")

	// Missing user and wrong password are indistinguishable to the caller.
	assert.Nil(t, authenticated)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestAuthenticate_StoreError(t *testing.T) {
	mockUsers := new(mockUserTable)
	mockUsers.On("FindByEmail", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	svc := NewUserService(&storage.Storage{Users: mockUsers})
	_, err := svc.Authenticate(context.Background(), "alice@example.com", "s3cret")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrUnauthenticated)
}

// -- ListUsers --

func TestListUsers_MapsRows(t *testing.T) {
	first := testUserRow(t, "alice@example.com", "pw-one")
	second := testUserRow(t, "bob@example.com", "pw-two")

	mockUsers := new(mockUserTable)
	mockUsers.On("List", mock.Anything).Return([]*user.User{first, second}, nil)

	svc := NewUserService(&storage.Storage{Users: mockUsers})
	listed, err := svc.ListUsers(context.Background())

	assert.NoError(t, err)
	assert.Len(t, listed, 2)
	assert.Equal(t, first.Email, listed[0].Email)
	assert.Equal(t, second.Email, listed[1].Email)
}

func TestListUsers_Empty(t *testing.T) {
	mockUsers := new(mockUserTable)
	mockUsers.On("List", mock.Anything).Return(([]*user.User)(nil), nil)

	svc := NewUserService(&storage.Storage{Users: mockUsers})
	listed, err := svc.ListUsers(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, listed)
}
