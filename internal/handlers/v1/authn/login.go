package authn

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// LoginBody is the request body for logging in.
type LoginBody struct {
	Email    string `json:"email" required:"true" format:"email" doc:"Account email"`
	Password string `json:"password" required:"true" minLength:"1" doc:"Account password"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginResponse is the response body for a successful login. Field names
// follow the OAuth2 token response convention.
type LoginResponse struct {
	AccessToken string `json:"access_token" doc:"Signed bearer token"`
	TokenType   string `json:"token_type" doc:"Always \"bearer\""`
}

// LoginOutput is the Huma output for logging in.
type LoginOutput struct {
	Body LoginResponse
}

// authenticator is the interface for validating credentials.
type authenticator interface {
	Authenticate(ctx context.Context, email string, password string) (*service.User, error)
}

// LoginHandler handles POST /v1/auth/login.
type LoginHandler struct {
	UserService authenticator
	Tokens      *auth.TokenService
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc authenticator, tokens *auth.TokenService) *LoginHandler {
	return &LoginHandler{UserService: svc, Tokens: tokens}
}

// Register registers the login endpoint with the Huma API. Login is the one
// route that never requires a token.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Log in",
		Description: "Validates credentials and issues a bearer token.",
		Tags:        []string{"Authentication"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	logData := logging.GetLogData(ctx)

	resolved, err := h.UserService.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthenticated) {
			return nil, huma.Error401Unauthorized("Incorrect email or password")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to log in", err)
	}

	token, err := h.Tokens.Issue(resolved.Email)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to log in", err)
	}

	if logData != nil {
		logData.AddData("userID", resolved.ID.String())
	}

	return &LoginOutput{Body: LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}}, nil
}
