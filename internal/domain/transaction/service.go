package transaction

import "context"

type TransactionService interface {
	CreateTransaction(ctx context.Context, req CreateTransactionRequest) (TransactionResponse, error)
	DeleteTransaction(ctx context.Context, id string) error
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]TransactionResponse, error)

	// GetStats aggregates income, expense and balance, optionally restricted
	// to one period ("" means all time).
	GetStats(ctx context.Context, periodStr string) (StatsResponse, error)
}
