package budgets

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/service"
)

// GetBudgetInput is the Huma input for fetching a budget.
type GetBudgetInput struct {
	ID string `path:"id" doc:"Budget UUID"`
}

// GetBudgetOutput is the Huma output for fetching a budget.
type GetBudgetOutput struct {
	Body Budget
}

// budgetGetter fetches one owner-scoped budget.
type budgetGetter interface {
	GetBudget(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*service.Budget, error)
}

// GetBudgetHandler handles GET /v1/budgets/{id}.
type GetBudgetHandler struct {
	BudgetService budgetGetter
}

// NewGetBudgetHandler creates a new GetBudgetHandler.
func NewGetBudgetHandler(svc budgetGetter) *GetBudgetHandler {
	return &GetBudgetHandler{BudgetService: svc}
}

// Register registers the get budget endpoint with the Huma API.
func (h *GetBudgetHandler) Register(api huma.API, middlewares ...func(huma.Context, func(huma.Context))) {
	huma.Register(api, huma.Operation{
		OperationID: "get-budget",
		Method:      http.MethodGet,
		Path:        "/v1/budgets/{id}",
		Summary:     "Get budget",
		Description: "Returns one of the caller's budgets. Rows owned by other users answer 404.",
		Tags:        []string{"Budgets"},
		Middlewares: middlewares,
	}, h.handle)
}

func (h *GetBudgetHandler) handle(ctx context.Context, input *GetBudgetInput) (*GetBudgetOutput, error) {
	current, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Invalid authentication credentials")
	}

	id, err := parseBudgetID(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("Budget not found")
	}

	found, err := h.BudgetService.GetBudget(ctx, current.ID, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, huma.Error404NotFound("Budget not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load budget", err)
	}

	return &GetBudgetOutput{Body: budgetToResponse(*found)}, nil
}
