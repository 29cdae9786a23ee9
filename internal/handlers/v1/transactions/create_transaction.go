package transactions

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

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Amount      string  `json:"amount" required:"true" doc:"Decimal amount"`
	Date        string  `json:"date" required:"true" doc:"Transaction date, YYYY-MM-DD"`
	Description *string `json:"description,omitempty" doc:"Free-form note"`
	IsIncome    bool    `json:"isIncome" doc:"True for income, false for expense"`
	CategoryID  *string `json:"categoryID,omitempty" doc:"Category UUID"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body Transaction
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	Operator           operator.Processor
	TransactionService transactionGetter
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op operator.Processor, svc transactionGetter) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op, TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API, middlewares ...func(huma.Context, func(huma.Context))) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions",
		Summary:       "Create transaction",
		Description:   "Creates a transaction owned by the caller.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   middlewares,
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	current, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Invalid authentication credentials")
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("Invalid amount")
	}

	date, err := time.Parse(dateLayout, input.Body.Date)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("Invalid date, expected YYYY-MM-DD")
	}

	var categoryID *uuid.UUID
	if input.Body.CategoryID != nil {
		parsed, err := uuid.FromString(*input.Body.CategoryID)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("Invalid categoryID")
		}
		categoryID = &parsed
	}

	action := &actions.CreateTransaction{
		Amount:      amount,
		Date:        date,
		Description: input.Body.Description,
		IsIncome:    input.Body.IsIncome,
		OwnerID:     current.ID,
		CategoryID:  categoryID,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", action.Created.ID.String())
	}

	created, err := h.TransactionService.GetTransaction(ctx, current.ID, action.Created.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load created transaction", err)
	}

	return &CreateTransactionOutput{Body: transactionToResponse(*created)}, nil
}
