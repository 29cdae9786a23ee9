package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// CreateTransaction inserts a transaction owned by the caller. OwnerID comes
// from the authenticated user, never from request data.
type CreateTransaction struct {
	Amount      decimal.Decimal
	Date        time.Time
	Description *string
	IsIncome    bool
	OwnerID     uuid.UUID
	CategoryID  *uuid.UUID

	// Created is populated on success.
	Created *transaction.Transaction

	IAction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		Amount:      a.Amount,
		Date:        a.Date,
		Description: a.Description,
		IsIncome:    a.IsIncome,
		OwnerID:     a.OwnerID,
		CategoryID:  a.CategoryID,
	})
	if err != nil {
		return err
	}

	a.Created = created
	return nil
}
