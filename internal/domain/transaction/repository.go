package transaction

import (
	"context"

	"github.com/edusuite/institute-backend-go/internal/pkg/period"
)

// TransactionRepository defines data access for the income/expense ledger.
type TransactionRepository interface {
	Create(ctx context.Context, t Transaction) (Transaction, error)
	Delete(ctx context.Context, id string) error
	// List returns entries, optionally restricted to one calendar month
	// and/or one type.
	List(ctx context.Context, pd *period.Period, typ *Type) ([]Transaction, error)
}
