package generator

import (
	"fmt"

	"github.com/Veraticus/finsecure-hub/internal/catalog"
	"github.com/Veraticus/finsecure-hub/internal/model"
	"github.com/Veraticus/finsecure-hub/internal/randsrc"
	"github.com/shopspring/decimal"
)

// firstUserNumber is the numeric suffix of the first transaction user id.
const firstUserNumber = 1000

// TransactionParams configures the fraud detection table.
type TransactionParams struct {
	AmountRange      AmountRange
	Count            int
	FraudProbability float64
}

// DefaultTransactionParams mirrors the real-time detection panel: 60 rows,
// amounts between $300 and $20,000, 28% flagged.
func DefaultTransactionParams() TransactionParams {
	return TransactionParams{
		Count:            60,
		AmountRange:      NewAmountRange(300, 20000),
		FraudProbability: 0.28,
	}
}

// Validate checks the parameters without drawing anything.
func (p TransactionParams) Validate() error {
	if err := validateCount("transaction count", p.Count); err != nil {
		return err
	}
	if err := randsrc.ValidateProbability("fraud probability", p.FraudProbability); err != nil {
		return err
	}
	return p.AmountRange.Validate("amount range")
}

// GenerateTransactions draws Count transactions. Each row draws, in order,
// its amount, its city and its fraud flag.
func GenerateTransactions(src *randsrc.Source, p TransactionParams) (model.Transactions, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	lo, hi, err := p.AmountRange.cents()
	if err != nil {
		return nil, err
	}
	cities := catalog.MustAll(catalog.City)

	rows := make(model.Transactions, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		cents, err := src.IntRange(lo, hi)
		if err != nil {
			return nil, err
		}
		city, err := randsrc.Pick(src, cities)
		if err != nil {
			return nil, err
		}
		fraud, err := src.Bernoulli(p.FraudProbability)
		if err != nil {
			return nil, err
		}

		rows = append(rows, model.Transaction{
			UserID:         fmt.Sprintf("U%d", firstUserNumber+i),
			Amount:         decimal.New(int64(cents), -2),
			City:           city,
			SuspectedFraud: fraud,
		})
	}
	return rows, nil
}
