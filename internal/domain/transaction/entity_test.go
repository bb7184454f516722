package transaction

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	transactions := []Transaction{
		{ID: "t1", Type: TypeIncome, Amount: decimal.NewFromInt(3000)},
		{ID: "t2", Type: TypeIncome, Amount: decimal.NewFromInt(2000)},
		{ID: "t3", Type: TypeExpense, Amount: decimal.NewFromInt(1500)},
	}

	got := ComputeStats(transactions)

	assert.True(t, got.TotalIncome.Equal(decimal.NewFromInt(5000)))
	assert.True(t, got.TotalExpense.Equal(decimal.NewFromInt(1500)))
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(3500)))
}

func TestComputeStats_Empty(t *testing.T) {
	got := ComputeStats(nil)

	assert.True(t, got.TotalIncome.IsZero())
	assert.True(t, got.TotalExpense.IsZero())
	assert.True(t, got.Balance.IsZero())
}

func TestComputeStats_BalanceIdentity(t *testing.T) {
	transactions := []Transaction{
		{Type: TypeExpense, Amount: decimal.NewFromFloat(199.99)},
		{Type: TypeIncome, Amount: decimal.NewFromFloat(120.50)},
		{Type: TypeExpense, Amount: decimal.NewFromFloat(0.01)},
		{Type: TypeIncome, Amount: decimal.NewFromInt(80)},
	}

	got := ComputeStats(transactions)
	assert.True(t, got.Balance.Equal(got.TotalIncome.Sub(got.TotalExpense)))
}
