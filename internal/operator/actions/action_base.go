package actions

import (
	"context"

	"github.com/carson-networks/finance-server/internal/storage"
)

// IAction is a unit of write work performed against a transaction-scoped
// Writer. The operator commits on nil error and rolls back otherwise.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
