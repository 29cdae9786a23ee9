package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage/budget"
)

// Budget represents a budget in the service layer.
type Budget struct {
	ID         uuid.UUID
	Amount     decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
	OwnerID    uuid.UUID
	CategoryID *uuid.UUID
	CreatedAt  time.Time
}

func budgetFromStorage(row *budget.Budget) Budget {
	converted := Budget{
		ID:        row.ID,
		Amount:    row.Amount,
		StartDate: row.StartDate,
		EndDate:   row.EndDate,
		OwnerID:   row.OwnerID,
		CreatedAt: row.CreatedAt,
	}
	if row.CategoryID.Valid {
		categoryID := row.CategoryID.UUID
		converted.CategoryID = &categoryID
	}
	return converted
}
