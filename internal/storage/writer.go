package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/storage/budget"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
	"github.com/carson-networks/finance-server/internal/storage/user"
)

// Writer bundles tx-scoped entity writers. All operations performed through
// one Writer share a single database transaction. The fields are the writer
// interfaces so action tests can substitute mocks.
type Writer struct {
	tx          bob.Tx
	User        user.IUserWriter
	Category    category.ICategoryWriter
	Transaction transaction.ITransactionWriter
	Budget      budget.IBudgetWriter
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:          tx,
		User:        user.NewWriter(tx),
		Category:    category.NewWriter(tx),
		Transaction: transaction.NewWriter(tx),
		Budget:      budget.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
