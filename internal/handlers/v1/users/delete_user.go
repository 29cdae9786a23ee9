package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/operator/actions"
)

// DeleteUserOutput is the Huma output for deleting the current user.
type DeleteUserOutput struct{}

// DeleteUserHandler handles DELETE /v1/users/me. Deleting an account removes
// every transaction, budget, and category it owns in the same transaction;
// outstanding tokens for the account stop resolving immediately.
type DeleteUserHandler struct {
	Operator operator.Processor
}

// NewDeleteUserHandler creates a new DeleteUserHandler.
func NewDeleteUserHandler(op operator.Processor) *DeleteUserHandler {
	return &DeleteUserHandler{Operator: op}
}

// Register registers the delete user endpoint with the Huma API.
func (h *DeleteUserHandler) Register(api huma.API, middlewares ...func(huma.Context, func(huma.Context))) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-current-user",
		Method:        http.MethodDelete,
		Path:          "/v1/users/me",
		Summary:       "Delete current user",
		Description:   "Deletes the authenticated user and everything they own.",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   middlewares,
	}, h.handle)
}

func (h *DeleteUserHandler) handle(ctx context.Context, _ *struct{}) (*DeleteUserOutput, error) {
	current, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Invalid authentication credentials")
	}

	action := &actions.DeleteUser{ID: current.ID}
	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, huma.Error404NotFound("User not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete user", err)
	}

	return &DeleteUserOutput{}, nil
}
