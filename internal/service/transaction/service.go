package transaction

import (
	"context"
	"time"

	"github.com/edusuite/institute-backend-go/internal/domain/transaction"
	"github.com/edusuite/institute-backend-go/internal/pkg/period"
	"github.com/edusuite/institute-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type TransactionServiceImpl struct {
	transactionRepo transaction.TransactionRepository
}

func NewTransactionService(transactionRepo transaction.TransactionRepository) transaction.TransactionService {
	return &TransactionServiceImpl{transactionRepo: transactionRepo}
}

func (s *TransactionServiceImpl) CreateTransaction(ctx context.Context, req transaction.CreateTransactionRequest) (transaction.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return transaction.TransactionResponse{}, err
	}

	date := time.Now()
	if req.Date != nil {
		if parsed, ok := validator.IsValidDate(*req.Date); ok {
			date = parsed
		}
	}

	entry := transaction.Transaction{
		ID:          uuid.NewString(),
		Type:        transaction.Type(req.Type),
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	}

	created, err := s.transactionRepo.Create(ctx, entry)
	if err != nil {
		return transaction.TransactionResponse{}, err
	}

	return mapToTransactionResponse(created), nil
}

func (s *TransactionServiceImpl) DeleteTransaction(ctx context.Context, id string) error {
	return s.transactionRepo.Delete(ctx, id)
}

func (s *TransactionServiceImpl) ListTransactions(ctx context.Context, filter transaction.TransactionFilter) ([]transaction.TransactionResponse, error) {
	pd, typ, err := parseFilter(filter)
	if err != nil {
		return nil, err
	}

	entries, err := s.transactionRepo.List(ctx, pd, typ)
	if err != nil {
		return nil, err
	}

	result := make([]transaction.TransactionResponse, 0, len(entries))
	for _, t := range entries {
		result = append(result, mapToTransactionResponse(t))
	}
	return result, nil
}

func (s *TransactionServiceImpl) GetStats(ctx context.Context, periodStr string) (transaction.StatsResponse, error) {
	var pd *period.Period
	if periodStr != "" {
		parsed, err := period.Parse(periodStr)
		if err != nil {
			return transaction.StatsResponse{}, validator.ValidationErrors{
				{Field: "period", Message: "must be in YYYY-MM format"},
			}
		}
		pd = &parsed
	}

	entries, err := s.transactionRepo.List(ctx, pd, nil)
	if err != nil {
		return transaction.StatsResponse{}, err
	}

	stats := transaction.ComputeStats(entries)
	return transaction.StatsResponse{
		TotalIncome:  stats.TotalIncome,
		TotalExpense: stats.TotalExpense,
		Balance:      stats.Balance,
	}, nil
}

func parseFilter(filter transaction.TransactionFilter) (*period.Period, *transaction.Type, error) {
	var pd *period.Period
	if filter.Period != nil && *filter.Period != "" {
		parsed, err := period.Parse(*filter.Period)
		if err != nil {
			return nil, nil, validator.ValidationErrors{
				{Field: "period", Message: "must be in YYYY-MM format"},
			}
		}
		pd = &parsed
	}

	var typ *transaction.Type
	if filter.Type != nil && *filter.Type != "" {
		t := transaction.Type(*filter.Type)
		if t != transaction.TypeIncome && t != transaction.TypeExpense {
			return nil, nil, validator.ValidationErrors{
				{Field: "type", Message: "must be 'income' or 'expense'"},
			}
		}
		typ = &t
	}

	return pd, typ, nil
}

func mapToTransactionResponse(t transaction.Transaction) transaction.TransactionResponse {
	return transaction.TransactionResponse{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date.Format("2006-01-02"),
	}
}
