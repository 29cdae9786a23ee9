package authn

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/auth"
)

// UserOut is the API response model for the authenticated user. The password
// hash is never serialized.
type UserOut struct {
	ID        string `json:"id" doc:"User UUID"`
	Username  string `json:"username" doc:"Unique username"`
	Email     string `json:"email" doc:"Unique email"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

// MeOutput is the Huma output for the current-user endpoint.
type MeOutput struct {
	Body UserOut
}

// MeHandler handles GET /v1/auth/me.
type MeHandler struct{}

// NewMeHandler creates a new MeHandler.
func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// Register registers the current-user endpoint with the Huma API.
func (h *MeHandler) Register(api huma.API, middlewares ...func(huma.Context, func(huma.Context))) {
	huma.Register(api, huma.Operation{
		OperationID: "get-current-user",
		Method:      http.MethodGet,
		Path:        "/v1/auth/me",
		Summary:     "Get current user",
		Description: "Returns the user resolved from the bearer token.",
		Tags:        []string{"Authentication"},
		Middlewares: middlewares,
	}, h.handle)
}

func (h *MeHandler) handle(ctx context.Context, _ *struct{}) (*MeOutput, error) {
	current, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Invalid authentication credentials")
	}

	return &MeOutput{Body: UserOut{
		ID:        current.ID.String(),
		Username:  current.Username,
		Email:     current.Email,
		CreatedAt: current.CreatedAt.Format(time.RFC3339),
	}}, nil
}
