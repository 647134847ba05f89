package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialPeriod is one month of the operation's ledger.
type FinancialPeriod struct {
	Month     time.Time       `json:"month" yaml:"month"`
	Income    decimal.Decimal `json:"income" yaml:"income"`
	Expense   decimal.Decimal `json:"expense" yaml:"expense"`
	FraudLoss decimal.Decimal `json:"fraud_loss" yaml:"fraud_loss"`
}

// Net is income minus expense and fraud loss. It may be negative.
func (p FinancialPeriod) Net() decimal.Decimal {
	return p.Income.Sub(p.Expense).Sub(p.FraudLoss)
}

// TrendPoint is one day of the fraud / active customer trend.
type TrendPoint struct {
	Date            time.Time `json:"date" yaml:"date"`
	Frauds          int       `json:"frauds" yaml:"frauds"`
	ActiveCustomers int       `json:"active_customers" yaml:"active_customers"`
}
