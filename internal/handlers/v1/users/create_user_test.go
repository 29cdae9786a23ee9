package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage/user"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newCreateTestAPI(t *testing.T, op *mockProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateUserHandler(op).Register(api)
	return api
}

// -- HTTP integration tests --

func TestHTTP_CreateUser_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	createdAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.CreateUser) bool {
		// The handler must hash the password before queueing the action.
		return a.Username == "alice" &&
			a.Email == "alice@example.com" &&
			a.PasswordHash != "s3cret" &&
			auth.VerifyPassword(a.PasswordHash, "s3cret")
	})).Run(func(args mock.Arguments) {
		a := args.Get(1).(*actions.CreateUser)
		a.Created = &user.User{
			ID:        userID,
			Username:  a.Username,
			Email:     a.Email,
			Password:  a.PasswordHash,
			CreatedAt: createdAt,
		}
	}).Return(nil)

	resp := newCreateTestAPI(t, mockOp).Post("/v1/users", CreateUserBody{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, userID.String(), body.ID)
	assert.Equal(t, "alice", body.Username)
	assert.NotContains(t, resp.Body.String(), "password")
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateUser_Duplicate(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(apperrors.ErrConflict)

	resp := newCreateTestAPI(t, mockOp).Post("/v1/users", CreateUserBody{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "already registered")
}

func TestHTTP_CreateUser_MissingFields(t *testing.T) {
	mockOp := new(mockProcessor)

	resp := newCreateTestAPI(t, mockOp).Post("/v1/users", CreateUserBody{
		Username: "alice",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateUser_InvalidEmail(t *testing.T) {
	mockOp := new(mockProcessor)

	resp := newCreateTestAPI(t, mockOp).Post("/v1/users", CreateUserBody{
		Username: "alice",
		Email:    "not-an-email",
		Password: "s3cret",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateUser_StoreError(t *testing.T) {
	mockOp := new(mockProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(errors.New("database unavailable"))

	resp := newCreateTestAPI(t, mockOp).Post("/v1/users", CreateUserBody{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
