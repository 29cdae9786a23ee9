package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/storage/budget"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
	"github.com/carson-networks/finance-server/internal/storage/user"
)

// Reader bundles the entity readers over a shared executor.
type Reader struct {
	Users        *user.Reader
	Categories   *category.Reader
	Transactions *transaction.Reader
	Budgets      *budget.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Users:        user.NewReader(exec),
		Categories:   category.NewReader(exec),
		Transactions: transaction.NewReader(exec),
		Budgets:      budget.NewReader(exec),
	}
}
