package transactions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/service"
)

const dateLayout = "2006-01-02"

// Category is the resolved category nested in a transaction response.
type Category struct {
	ID      string  `json:"id" doc:"Category UUID"`
	Name    string  `json:"name" doc:"Category name"`
	OwnerID *string `json:"ownerID,omitempty" doc:"Owning user UUID, absent for global categories"`
}

// Transaction is the API response model for a transaction. Amount is a
// decimal string so precision survives the wire.
type Transaction struct {
	ID          string    `json:"id" doc:"Transaction UUID"`
	Amount      string    `json:"amount" doc:"Decimal amount"`
	Date        string    `json:"date" doc:"Transaction date, YYYY-MM-DD"`
	Description *string   `json:"description,omitempty" doc:"Free-form note"`
	IsIncome    bool      `json:"isIncome" doc:"True for income, false for expense"`
	OwnerID     string    `json:"ownerID" doc:"Owning user UUID"`
	CategoryID  *string   `json:"categoryID,omitempty" doc:"Category UUID"`
	Category    *Category `json:"category,omitempty" doc:"Resolved category"`
	CreatedAt   string    `json:"createdAt" doc:"RFC3339 creation time"`
}

func transactionToResponse(t service.Transaction) Transaction {
	resp := Transaction{
		ID:        t.ID.String(),
		Amount:    t.Amount.String(),
		Date:      t.Date.Format(dateLayout),
		IsIncome:  t.IsIncome,
		OwnerID:   t.OwnerID.String(),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
	if t.Description != nil {
		description := *t.Description
		resp.Description = &description
	}
	if t.CategoryID != nil {
		categoryID := t.CategoryID.String()
		resp.CategoryID = &categoryID
	}
	if t.Category != nil {
		nested := Category{
			ID:   t.Category.ID.String(),
			Name: t.Category.Name,
		}
		if t.Category.OwnerID != nil {
			ownerID := t.Category.OwnerID.String()
			nested.OwnerID = &ownerID
		}
		resp.Category = &nested
	}
	return resp
}

// transactionGetter fetches one owner-scoped transaction with its category
// resolved. Create and update handlers re-read through it so their responses
// match what a subsequent GET would return.
type transactionGetter interface {
	GetTransaction(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*service.Transaction, error)
}

func parseTransactionID(raw string) (uuid.UUID, error) {
	return uuid.FromString(raw)
}
