package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/storage/budget"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
	"github.com/carson-networks/finance-server/internal/storage/user"
)

// Storage exposes read access per entity plus Write for transactional
// mutation. The table fields are interfaces so tests can inject mocks.
type Storage struct {
	DB           *sql.DB
	Users        user.IUserTable
	Categories   category.ICategoryTable
	Transactions transaction.ITransactionTable
	Budgets      budget.IBudgetTable

	bdb bob.DB
}

func NewStorage(env *config.Config) *Storage {
	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		log.Fatal(err)
	}

	bdb := bob.NewDB(db)
	reader := NewReader(bdb)
	return &Storage{
		DB:           db,
		Users:        reader.Users,
		Categories:   reader.Categories,
		Transactions: reader.Transactions,
		Budgets:      reader.Budgets,
		bdb:          bdb,
	}
}

// Write begins a transaction and returns a Writer scoped to it. The caller
// must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}
