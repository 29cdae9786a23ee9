package budgets

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/operator/actions"
)

// CreateBudgetBody is the request body for creating a budget.
type CreateBudgetBody struct {
	Amount     string  `json:"amount" required:"true" doc:"Decimal amount"`
	StartDate  string  `json:"startDate" required:"true" doc:"Period start, YYYY-MM-DD"`
	EndDate    string  `json:"endDate" required:"true" doc:"Period end, YYYY-MM-DD"`
	CategoryID *string `json:"categoryID,omitempty" doc:"Category UUID"`
}

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	Body CreateBudgetBody
}

// CreateBudgetOutput is the Huma output for creating a budget.
type CreateBudgetOutput struct {
	Body Budget
}

// CreateBudgetHandler handles POST /v1/budgets.
type CreateBudgetHandler struct {
	Operator operator.Processor
}

// NewCreateBudgetHandler creates a new CreateBudgetHandler.
func NewCreateBudgetHandler(op operator.Processor) *CreateBudgetHandler {
	return &CreateBudgetHandler{Operator: op}
}

// Register registers the create budget endpoint with the Huma API.
func (h *CreateBudgetHandler) Register(api huma.API, middlewares ...func(huma.Context, func(huma.Context))) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-budget",
		Method:        http.MethodPost,
		Path:          "/v1/budgets",
		Summary:       "Create budget",
		Description:   "Creates a budget owned by the caller.",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   middlewares,
	}, h.handle)
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	current, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Invalid authentication credentials")
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("Invalid amount")
	}

	startDate, err := time.Parse(dateLayout, input.Body.StartDate)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("Invalid startDate, expected YYYY-MM-DD")
	}

	endDate, err := time.Parse(dateLayout, input.Body.EndDate)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("Invalid endDate, expected YYYY-MM-DD")
	}

	var categoryID *uuid.UUID
	if input.Body.CategoryID != nil {
		parsed, err := uuid.FromString(*input.Body.CategoryID)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("Invalid categoryID")
		}
		categoryID = &parsed
	}

	action := &actions.CreateBudget{
		Amount:     amount,
		StartDate:  startDate,
		EndDate:    endDate,
		OwnerID:    current.ID,
		CategoryID: categoryID,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create budget", err)
	}

	if logData != nil {
		logData.AddData("budgetID", action.Created.ID.String())
	}

	return &CreateBudgetOutput{Body: storageBudgetToResponse(action.Created)}, nil
}
