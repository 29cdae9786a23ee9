package authn

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
	"github.com/carson-networks/finance-server/internal/service"
)

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, email string, password string) (*service.User, error) {
	args := m.Called(ctx, email, password)
	resolved, _ := args.Get(0).(*service.User)
	return resolved, args.Error(1)
}

func newLoginTestAPI(t *testing.T, svc authenticator, tokens *auth.TokenService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewLoginHandler(svc, tokens).Register(api)
	return api
}

// -- HTTP integration tests --

func TestHTTP_Login_Success(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	resolved := &service.User{
		ID:    uuid.Must(uuid.NewV4()),
		Email: "alice@example.com",
	}

	mockSvc := new(mockAuthenticator)
	mockSvc.On("Authenticate", mock.Anything, "alice@example.com", "s3cret").Return(resolved, nil)

	resp := newLoginTestAPI(t, mockSvc, tokens).Post("/v1/auth/login", LoginBody{
		Email:    "alice@example.com",
		Password: "s3cret",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body LoginResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "bearer", body.TokenType)

	// The issued token must verify back to the account email.
	subject, err := tokens.Verify(body.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", subject)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Login_BadCredentials(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	mockSvc := new(mockAuthenticator)
	mockSvc.On("Authenticate", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrUnauthenticated)

	resp := newLoginTestAPI(t, mockSvc, tokens).Post("/v1/auth/login", LoginBody{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHTTP_Login_MissingFields(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	mockSvc := new(mockAuthenticator)

	// Schema validation rejects the request before the handler runs.
	resp := newLoginTestAPI(t, mockSvc, tokens).Post("/v1/auth/login", LoginBody{
		Email: "alice@example.com",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Authenticate")
}

func TestHTTP_Login_ServiceError(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	mockSvc := new(mockAuthenticator)
	mockSvc.On("Authenticate", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newLoginTestAPI(t, mockSvc, tokens).Post("/v1/auth/login", LoginBody{
		Email:    "alice@example.com",
		Password: "s3cret",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
