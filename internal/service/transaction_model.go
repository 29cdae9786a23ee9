package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer. Category is the
// eagerly resolved category when CategoryID is set.
type Transaction struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description *string
	IsIncome    bool
	OwnerID     uuid.UUID
	CategoryID  *uuid.UUID
	Category    *Category
	CreatedAt   time.Time
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	converted := Transaction{
		ID:        row.ID,
		Amount:    row.Amount,
		Date:      row.Date,
		IsIncome:  row.IsIncome,
		OwnerID:   row.OwnerID,
		CreatedAt: row.CreatedAt,
	}
	if row.Description.Valid {
		description := row.Description.String
		converted.Description = &description
	}
	if row.CategoryID.Valid {
		categoryID := row.CategoryID.UUID
		converted.CategoryID = &categoryID
	}
	return converted
}
