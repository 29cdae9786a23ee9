package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/budget"
)

// CreateBudget inserts a budget owned by the caller.
type CreateBudget struct {
	Amount     decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
	OwnerID    uuid.UUID
	CategoryID *uuid.UUID

	// Created is populated on success.
	Created *budget.Budget

	IAction
}

func (a *CreateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Budget.Insert(ctx, &budget.BudgetCreate{
		Amount:     a.Amount,
		StartDate:  a.StartDate,
		EndDate:    a.EndDate,
		OwnerID:    a.OwnerID,
		CategoryID: a.CategoryID,
	})
	if err != nil {
		return err
	}

	a.Created = created
	return nil
}
