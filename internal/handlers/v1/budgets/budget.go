package budgets

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/service"
	storagebudget "github.com/carson-networks/finance-server/internal/storage/budget"
)

const dateLayout = "2006-01-02"

// Budget is the API response model for a budget. Amount is a decimal string
// so precision survives the wire.
type Budget struct {
	ID         string  `json:"id" doc:"Budget UUID"`
	Amount     string  `json:"amount" doc:"Decimal amount"`
	StartDate  string  `json:"startDate" doc:"Period start, YYYY-MM-DD"`
	EndDate    string  `json:"endDate" doc:"Period end, YYYY-MM-DD"`
	OwnerID    string  `json:"ownerID" doc:"Owning user UUID"`
	CategoryID *string `json:"categoryID,omitempty" doc:"Category UUID"`
	CreatedAt  string  `json:"createdAt" doc:"RFC3339 creation time"`
}

func budgetToResponse(b service.Budget) Budget {
	resp := Budget{
		ID:        b.ID.String(),
		Amount:    b.Amount.String(),
		StartDate: b.StartDate.Format(dateLayout),
		EndDate:   b.EndDate.Format(dateLayout),
		OwnerID:   b.OwnerID.String(),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
	if b.CategoryID != nil {
		categoryID := b.CategoryID.String()
		resp.CategoryID = &categoryID
	}
	return resp
}

func storageBudgetToResponse(row *storagebudget.Budget) Budget {
	resp := Budget{
		ID:        row.ID.String(),
		Amount:    row.Amount.String(),
		StartDate: row.StartDate.Format(dateLayout),
		EndDate:   row.EndDate.Format(dateLayout),
		OwnerID:   row.OwnerID.String(),
		CreatedAt: row.CreatedAt.Format(time.RFC3339),
	}
	if row.CategoryID.Valid {
		categoryID := row.CategoryID.UUID.String()
		resp.CategoryID = &categoryID
	}
	return resp
}

func parseBudgetID(raw string) (uuid.UUID, error) {
	return uuid.FromString(raw)
}
