package model

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors.
var (
	ErrInconsistentKPI  = errors.New("kpi does not match tables")
	ErrInvalidRecord    = errors.New("invalid record")
	ErrUnknownAccessor  = errors.New("access by unknown user")
	ErrNonConsecutive   = errors.New("financial months are not consecutive")
	ErrChurnOutOfBounds = errors.New("churn probability out of bounds")
)

// Validate checks the cross-table invariants of a bundle.
func (b *DatasetBundle) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil bundle", ErrInvalidRecord)
	}

	if got, want := b.KPIs.FraudsToday, b.Transactions.FlaggedCount(); got != want {
		return fmt.Errorf("%w: frauds_today %d, flagged rows %d", ErrInconsistentKPI, got, want)
	}

	for i, t := range b.Transactions {
		if t.Amount.IsNegative() {
			return fmt.Errorf("%w: transaction %d has negative amount", ErrInvalidRecord, i)
		}
	}

	for _, c := range b.Customers {
		if err := validateChurn(c.ChurnProbability); err != nil {
			return fmt.Errorf("customer %s: %w", c.CustomerID, err)
		}
	}

	for _, tk := range b.Tickets {
		if tk.ResponseMinutes <= 0 {
			return fmt.Errorf("%w: ticket %s response minutes %d", ErrInvalidRecord, tk.ID, tk.ResponseMinutes)
		}
	}

	users := make(map[string]bool, len(b.Users))
	for _, u := range b.Users {
		users[u.Username] = true
	}
	for i, a := range b.AccessEvents {
		if !users[a.UserID] {
			return fmt.Errorf("%w: event %d user %q", ErrUnknownAccessor, i, a.UserID)
		}
	}

	for i := 1; i < len(b.Financials); i++ {
		prev, cur := b.Financials[i-1].Month, b.Financials[i].Month
		if !prev.AddDate(0, 1, 0).Equal(cur) {
			return fmt.Errorf("%w: %s then %s", ErrNonConsecutive,
				prev.Format("2006-01"), cur.Format("2006-01"))
		}
	}

	for i := range b.Benchmarks {
		if err := b.Benchmarks[i].Validate(); err != nil {
			return fmt.Errorf("%w: benchmark %d: %v", ErrInvalidRecord, i, err)
		}
	}

	return nil
}

// validateChurn checks bounds and the two-decimal precision contract.
func validateChurn(p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%w: %g", ErrChurnOutOfBounds, p)
	}
	if scaled := p * 100; math.Abs(scaled-math.Round(scaled)) > 1e-9 {
		return fmt.Errorf("%w: %g has more than two decimals", ErrChurnOutOfBounds, p)
	}
	return nil
}
