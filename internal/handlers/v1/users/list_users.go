package users

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// ListUsersOutput is the Huma output for listing users.
type ListUsersOutput struct {
	Body []User
}

// userLister is the interface for listing users.
type userLister interface {
	ListUsers(ctx context.Context) ([]service.User, error)
}

// ListUsersHandler handles GET /v1/users.
type ListUsersHandler struct {
	UserService userLister
}

// NewListUsersHandler creates a new ListUsersHandler.
func NewListUsersHandler(svc userLister) *ListUsersHandler {
	return &ListUsersHandler{UserService: svc}
}

// Register registers the list users endpoint with the Huma API.
func (h *ListUsersHandler) Register(api huma.API, middlewares ...func(huma.Context, func(huma.Context))) {
	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/v1/users",
		Summary:     "List users",
		Description: "Returns all registered users.",
		Tags:        []string{"Users"},
		Middlewares: middlewares,
	}, h.handle)
}

func (h *ListUsersHandler) handle(ctx context.Context, _ *struct{}) (*ListUsersOutput, error) {
	logData := logging.GetLogData(ctx)

	listed, err := h.UserService.ListUsers(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list users", err)
	}

	if logData != nil {
		logData.AddData("userCount", len(listed))
	}

	resp := make([]User, len(listed))
	for i, u := range listed {
		resp[i] = userToResponse(u)
	}
	return &ListUsersOutput{Body: resp}, nil
}
