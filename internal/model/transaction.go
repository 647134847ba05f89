// Package model defines the records produced by a generation run.
package model

import "github.com/shopspring/decimal"

// Transaction is one row of the real-time fraud detection table.
type Transaction struct {
	UserID         string          `json:"user_id" yaml:"user_id"`
	City           string          `json:"city" yaml:"city"`
	Amount         decimal.Decimal `json:"amount" yaml:"amount"`
	SuspectedFraud bool            `json:"is_suspected_fraud" yaml:"is_suspected_fraud"`
}

// Transactions is a generated transaction table.
type Transactions []Transaction

// Flagged returns the rows marked as suspected fraud, in table order.
func (ts Transactions) Flagged() Transactions {
	flagged := Transactions{}
	for _, t := range ts {
		if t.SuspectedFraud {
			flagged = append(flagged, t)
		}
	}
	return flagged
}

// FlaggedCount counts the rows marked as suspected fraud.
func (ts Transactions) FlaggedCount() int {
	n := 0
	for _, t := range ts {
		if t.SuspectedFraud {
			n++
		}
	}
	return n
}

// TotalAmount sums the amounts of every row.
func (ts Transactions) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, t := range ts {
		total = total.Add(t.Amount)
	}
	return total
}
