// Package kpi derives dashboard metrics from generated tables.
// Every number it reports is computed from the rows it is given.
package kpi

import (
	"fmt"
	"math"

	"github.com/Veraticus/finsecure-hub/internal/common"
	"github.com/Veraticus/finsecure-hub/internal/model"
	"github.com/shopspring/decimal"
)

// Policy holds the knobs that turn tables into KPI tiles.
type Policy struct {
	// ChurnThreshold is the churn probability at which a customer counts as at risk.
	ChurnThreshold float64 `json:"churn_threshold" yaml:"churn_threshold"`
	// RecoveryRate is the share of flagged amounts reported as recovered.
	RecoveryRate float64 `json:"recovery_rate" yaml:"recovery_rate"`
	// DetectionMinutes is reported as-is; there is no detector to time.
	DetectionMinutes float64 `json:"detection_minutes" yaml:"detection_minutes"`
}

// DefaultPolicy returns the dashboard's standard policy.
func DefaultPolicy() Policy {
	return Policy{
		ChurnThreshold:   0.7,
		RecoveryRate:     0.65,
		DetectionMinutes: 3.5,
	}
}

// Validate rejects fractions outside [0, 1] and non-positive detection times.
func (p Policy) Validate() error {
	if math.IsNaN(p.ChurnThreshold) || p.ChurnThreshold < 0 || p.ChurnThreshold > 1 {
		return fmt.Errorf("%w: churn threshold must be between 0 and 1, got %g", common.ErrInvalidParameter, p.ChurnThreshold)
	}
	if math.IsNaN(p.RecoveryRate) || p.RecoveryRate < 0 || p.RecoveryRate > 1 {
		return fmt.Errorf("%w: recovery rate must be between 0 and 1, got %g", common.ErrInvalidParameter, p.RecoveryRate)
	}
	if math.IsNaN(p.DetectionMinutes) || p.DetectionMinutes <= 0 {
		return fmt.Errorf("%w: detection minutes must be positive, got %g", common.ErrInvalidParameter, p.DetectionMinutes)
	}
	return nil
}

// Aggregator computes KPI snapshots under a fixed policy.
type Aggregator struct {
	policy Policy
}

// NewAggregator validates the policy and returns an Aggregator.
func NewAggregator(policy Policy) (*Aggregator, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Aggregator{policy: policy}, nil
}

// Policy returns the aggregator's policy.
func (a *Aggregator) Policy() Policy {
	return a.policy
}

// Summarize computes the KPI tiles from the transaction and customer tables.
func (a *Aggregator) Summarize(transactions model.Transactions, customers []model.CustomerRisk) model.KPISnapshot {
	flagged := transactions.Flagged()

	atRisk := 0
	for _, c := range customers {
		if c.AtRisk(a.policy.ChurnThreshold) {
			atRisk++
		}
	}

	recovered := flagged.TotalAmount().
		Mul(decimal.NewFromFloat(a.policy.RecoveryRate)).
		Round(2)

	return model.KPISnapshot{
		FraudsToday:      len(flagged),
		AmountRecovered:  recovered,
		CustomersAtRisk:  atRisk,
		DetectionMinutes: a.policy.DetectionMinutes,
	}
}
