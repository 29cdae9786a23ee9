package budgets

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

// DeleteBudgetInput is the Huma input for deleting a budget.
type DeleteBudgetInput struct {
	ID string `path:"id" doc:"Budget UUID"`
}

// DeleteBudgetOutput is the Huma output for deleting a budget.
type DeleteBudgetOutput struct{}

// DeleteBudgetHandler handles DELETE /v1/budgets/{id}.
type DeleteBudgetHandler struct {
	Operator operator.Processor
}

// NewDeleteBudgetHandler creates a new DeleteBudgetHandler.
func NewDeleteBudgetHandler(op operator.Processor) *DeleteBudgetHandler {
	return &DeleteBudgetHandler{Operator: op}
}

// Register registers the delete budget endpoint with the Huma API.
func (h *DeleteBudgetHandler) Register(api huma.API, middlewares ...func(huma.Context, func(huma.Context))) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-budget",
		Method:        http.MethodDelete,
		Path:          "/v1/budgets/{id}",
		Summary:       "Delete budget",
		Description:   "Deletes one of the caller's budgets. A repeated delete answers 404.",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   middlewares,
	}, h.handle)
}

func (h *DeleteBudgetHandler) handle(ctx context.Context, input *DeleteBudgetInput) (*DeleteBudgetOutput, error) {
	current, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Invalid authentication credentials")
	}

	id, err := parseBudgetID(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("Budget not found")
	}

	action := &actions.DeleteBudget{
		ID:      id,
		OwnerID: current.ID,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, huma.Error404NotFound("Budget not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete budget", err)
	}

	return &DeleteBudgetOutput{}, nil
}
