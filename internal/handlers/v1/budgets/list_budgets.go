package budgets

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// ListBudgetsOutput is the Huma output for listing budgets.
type ListBudgetsOutput struct {
	Body []Budget
}

// budgetLister lists the owner's budgets, newest period first.
type budgetLister interface {
	ListBudgets(ctx context.Context, ownerID uuid.UUID) ([]service.Budget, error)
}

// ListBudgetsHandler handles GET /v1/budgets.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

// NewListBudgetsHandler creates a new ListBudgetsHandler.
func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

// Register registers the list budgets endpoint with the Huma API.
func (h *ListBudgetsHandler) Register(api huma.API, middlewares ...func(huma.Context, func(huma.Context))) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/budgets",
		Summary:     "List budgets",
		Description: "Returns the caller's budgets ordered by start date descending.",
		Tags:        []string{"Budgets"},
		Middlewares: middlewares,
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, _ *struct{}) (*ListBudgetsOutput, error) {
	logData := logging.GetLogData(ctx)

	current, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Invalid authentication credentials")
	}

	listed, err := h.BudgetService.ListBudgets(ctx, current.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list budgets", err)
	}

	if logData != nil {
		logData.AddData("budgetCount", len(listed))
	}

	resp := make([]Budget, len(listed))
	for i, b := range listed {
		resp[i] = budgetToResponse(b)
	}
	return &ListBudgetsOutput{Body: resp}, nil
}
