package transactions

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
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// UpdateTransactionBody is the request body for a partial transaction update.
// Every field is optional; omitted and null fields are left unchanged.
type UpdateTransactionBody struct {
	Amount      *string `json:"amount,omitempty" doc:"Decimal amount"`
	Date        *string `json:"date,omitempty" doc:"Transaction date, YYYY-MM-DD"`
	Description *string `json:"description,omitempty" doc:"Free-form note"`
	IsIncome    *bool   `json:"isIncome,omitempty" doc:"True for income, false for expense"`
	CategoryID  *string `json:"categoryID,omitempty" doc:"Category UUID"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Body Transaction
}

// UpdateTransactionHandler handles PUT /v1/transactions/{id}.
type UpdateTransactionHandler struct {
	Operator           operator.Processor
	TransactionService transactionGetter
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(op operator.Processor, svc transactionGetter) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{Operator: op, TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API, middlewares ...func(huma.Context, func(huma.Context))) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Partially updates one of the caller's transactions. Rows owned by other users answer 404.",
		Tags:        []string{"Transactions"},
		Middlewares: middlewares,
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	current, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Invalid authentication credentials")
	}

	id, err := parseTransactionID(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("Transaction not found")
	}

	var patch transaction.TransactionPatch
	if input.Body.Amount != nil {
		amount, err := decimal.NewFromString(*input.Body.Amount)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("Invalid amount")
		}
		patch.Amount = &amount
	}
	if input.Body.Date != nil {
		date, err := time.Parse(dateLayout, *input.Body.Date)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("Invalid date, expected YYYY-MM-DD")
		}
		patch.Date = &date
	}
	if input.Body.Description != nil {
		patch.Description = input.Body.Description
	}
	if input.Body.IsIncome != nil {
		patch.IsIncome = input.Body.IsIncome
	}
	if input.Body.CategoryID != nil {
		categoryID, err := uuid.FromString(*input.Body.CategoryID)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("Invalid categoryID")
		}
		patch.CategoryID = &categoryID
	}

	action := &actions.UpdateTransaction{
		ID:      id,
		OwnerID: current.ID,
		Patch:   patch,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, huma.Error404NotFound("Transaction not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update transaction", err)
	}

	updated, err := h.TransactionService.GetTransaction(ctx, current.ID, id)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load updated transaction", err)
	}

	return &UpdateTransactionOutput{Body: transactionToResponse(*updated)}, nil
}
