package users

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/operator/actions"
)

// CreateUserBody is the request body for registering a user.
type CreateUserBody struct {
	Username string `json:"username" required:"true" minLength:"1" doc:"Unique username"`
	Email    string `json:"email" required:"true" format:"email" doc:"Unique email"`
	Password string `json:"password" required:"true" minLength:"1" doc:"Plaintext password, stored only as a bcrypt hash"`
}

// CreateUserInput is the Huma input for registering a user.
type CreateUserInput struct {
	Body CreateUserBody
}

// CreateUserOutput is the Huma output for registering a user.
type CreateUserOutput struct {
	Body User
}

// CreateUserHandler handles POST /v1/users. Registration is open; it is one
// of the two routes that never require a token.
type CreateUserHandler struct {
	Operator operator.Processor
}

// NewCreateUserHandler creates a new CreateUserHandler.
func NewCreateUserHandler(op operator.Processor) *CreateUserHandler {
	return &CreateUserHandler{Operator: op}
}

// Register registers the create user endpoint with the Huma API.
func (h *CreateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-user",
		Method:      http.MethodPost,
		Path:        "/v1/users",
		Summary:     "Register user",
		Description: "Creates a new user account.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *CreateUserHandler) handle(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error) {
	logData := logging.GetLogData(ctx)

	passwordHash, err := auth.HashPassword(input.Body.Password)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create user", err)
	}

	action := &actions.CreateUser{
		Username:     input.Body.Username,
		Email:        input.Body.Email,
		PasswordHash: passwordHash,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, huma.Error400BadRequest("Username or email already registered")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create user", err)
	}

	if logData != nil {
		logData.AddData("userID", action.Created.ID.String())
	}

	return &CreateUserOutput{Body: User{
		ID:        action.Created.ID.String(),
		Username:  action.Created.Username,
		Email:     action.Created.Email,
		CreatedAt: action.Created.CreatedAt.Format(time.RFC3339),
	}}, nil
}
