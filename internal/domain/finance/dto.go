package finance

import "github.com/shopspring/decimal"

type OverviewResponse struct {
	Period             string          `json:"period"`
	TheoreticalRevenue decimal.Decimal `json:"theoretical_revenue"`
	ReceivedRevenue    decimal.Decimal `json:"received_revenue"`
	TotalExpenses      decimal.Decimal `json:"total_expenses"`
	NetCash            decimal.Decimal `json:"net_cash"`
	Unpaid             decimal.Decimal `json:"unpaid"`
	CashAlert          bool            `json:"cash_alert"` // net cash went negative
}
