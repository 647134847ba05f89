package generator

import (
	"fmt"
	"time"

	"github.com/Veraticus/finsecure-hub/internal/catalog"
	"github.com/Veraticus/finsecure-hub/internal/common"
	"github.com/Veraticus/finsecure-hub/internal/model"
	"github.com/Veraticus/finsecure-hub/internal/randsrc"
	"github.com/shopspring/decimal"
)

// LedgerMonths is the number of periods a financial ledger covers.
const LedgerMonths = 12

// FinancialParams configures the monthly ledger. Amounts are whole pesos.
type FinancialParams struct {
	StartMonth time.Time
	Income     IntRange
	Expense    IntRange
	FraudLoss  IntRange
}

// DefaultFinancialParams starts the ledger in January 2024.
func DefaultFinancialParams() FinancialParams {
	return FinancialParams{
		StartMonth: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Income:     IntRange{Min: 250000, Max: 399999},
		Expense:    IntRange{Min: 120000, Max: 249999},
		FraudLoss:  IntRange{Min: 30000, Max: 79999},
	}
}

// Validate checks the parameters without drawing anything.
func (p FinancialParams) Validate() error {
	if p.StartMonth.IsZero() {
		return fmt.Errorf("%w: start month is required", common.ErrInvalidParameter)
	}
	ranges := []struct {
		name string
		r    IntRange
	}{
		{"income", p.Income},
		{"expense", p.Expense},
		{"fraud loss", p.FraudLoss},
	}
	for _, nr := range ranges {
		if err := nr.r.Validate(nr.name); err != nil {
			return err
		}
		if nr.r.Min < 0 {
			return fmt.Errorf("%w: %s must not be negative", common.ErrInvalidParameter, nr.name)
		}
	}
	return nil
}

// MonthStart truncates t to the first instant of its month in UTC.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// GenerateFinancialPeriods draws twelve consecutive months beginning with
// the month containing StartMonth.
func GenerateFinancialPeriods(src *randsrc.Source, p FinancialParams) ([]model.FinancialPeriod, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	start := MonthStart(p.StartMonth)
	rows := make([]model.FinancialPeriod, 0, LedgerMonths)
	for i := 0; i < LedgerMonths; i++ {
		income, err := src.IntRange(p.Income.Min, p.Income.Max)
		if err != nil {
			return nil, err
		}
		expense, err := src.IntRange(p.Expense.Min, p.Expense.Max)
		if err != nil {
			return nil, err
		}
		loss, err := src.IntRange(p.FraudLoss.Min, p.FraudLoss.Max)
		if err != nil {
			return nil, err
		}

		rows = append(rows, model.FinancialPeriod{
			Month:     start.AddDate(0, i, 0),
			Income:    decimal.NewFromInt(int64(income)),
			Expense:   decimal.NewFromInt(int64(expense)),
			FraudLoss: decimal.NewFromInt(int64(loss)),
		})
	}
	return rows, nil
}

// RankingParams configures the per-institution fraud ranking.
type RankingParams struct {
	FraudCount IntRange
}

// DefaultRankingParams draws between 80 and 249 frauds per institution.
func DefaultRankingParams() RankingParams {
	return RankingParams{FraudCount: IntRange{Min: 80, Max: 249}}
}

// GenerateInstitutionRanking draws one row per institution in catalog order.
func GenerateInstitutionRanking(src *randsrc.Source, p RankingParams) (model.InstitutionRankings, error) {
	if err := p.FraudCount.Validate("fraud count"); err != nil {
		return nil, err
	}
	if p.FraudCount.Min < 0 {
		return nil, fmt.Errorf("%w: fraud count must not be negative", common.ErrInvalidParameter)
	}

	institutions := catalog.MustAll(catalog.Institution)
	rows := make(model.InstitutionRankings, 0, len(institutions))
	for _, name := range institutions {
		n, err := src.IntRange(p.FraudCount.Min, p.FraudCount.Max)
		if err != nil {
			return nil, err
		}
		rows = append(rows, model.InstitutionRanking{Institution: name, FraudCount: n})
	}
	return rows, nil
}
