package budgets

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage/budget"
)

// UpdateBudgetBody is the request body for a partial budget update. Every
// field is optional; omitted and null fields are left unchanged.
type UpdateBudgetBody struct {
	Amount     *string `json:"amount,omitempty" doc:"Decimal amount"`
	StartDate  *string `json:"startDate,omitempty" doc:"Period start, YYYY-MM-DD"`
	EndDate    *string `json:"endDate,omitempty" doc:"Period end, YYYY-MM-DD"`
	CategoryID *string `json:"categoryID,omitempty" doc:"Category UUID"`
}

// UpdateBudgetInput is the Huma input for updating a budget.
type UpdateBudgetInput struct {
	ID   string `path:"id" doc:"Budget UUID"`
	Body UpdateBudgetBody
}

// UpdateBudgetOutput is the Huma output for updating a budget.
type UpdateBudgetOutput struct {
	Body Budget
}

// UpdateBudgetHandler handles PUT /v1/budgets/{id}.
type UpdateBudgetHandler struct {
	Operator operator.Processor
}

// NewUpdateBudgetHandler creates a new UpdateBudgetHandler.
func NewUpdateBudgetHandler(op operator.Processor) *UpdateBudgetHandler {
	return &UpdateBudgetHandler{Operator: op}
}

// Register registers the update budget endpoint with the Huma API.
func (h *UpdateBudgetHandler) Register(api huma.API, middlewares ...func(huma.Context, func(huma.Context))) {
	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPut,
		Path:        "/v1/budgets/{id}",
		Summary:     "Update budget",
		Description: "Partially updates one of the caller's budgets. Rows owned by other users answer 404.",
		Tags:        []string{"Budgets"},
		Middlewares: middlewares,
	}, h.handle)
}

func (h *UpdateBudgetHandler) handle(ctx context.Context, input *UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	current, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Invalid authentication credentials")
	}

	id, err := parseBudgetID(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("Budget not found")
	}

	var patch budget.BudgetPatch
	if input.Body.Amount != nil {
		amount, err := decimal.NewFromString(*input.Body.Amount)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("Invalid amount")
		}
		patch.Amount = &amount
	}
	if input.Body.StartDate != nil {
		startDate, err := time.Parse(dateLayout, *input.Body.StartDate)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("Invalid startDate, expected YYYY-MM-DD")
		}
		patch.StartDate = &startDate
	}
	if input.Body.EndDate != nil {
		endDate, err := time.Parse(dateLayout, *input.Body.EndDate)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("Invalid endDate, expected YYYY-MM-DD")
		}
		patch.EndDate = &endDate
	}
	if input.Body.CategoryID != nil {
		categoryID, err := uuid.FromString(*input.Body.CategoryID)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("Invalid categoryID")
		}
		patch.CategoryID = &categoryID
	}

	action := &actions.UpdateBudget{
		ID:      id,
		OwnerID: current.ID,
		Patch:   patch,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, huma.Error404NotFound("Budget not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update budget", err)
	}

	return &UpdateBudgetOutput{Body: storageBudgetToResponse(action.Updated)}, nil
}
