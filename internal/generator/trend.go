package generator

import (
	"fmt"
	"time"

	"github.com/Veraticus/finsecure-hub/internal/common"
	"github.com/Veraticus/finsecure-hub/internal/model"
	"github.com/Veraticus/finsecure-hub/internal/randsrc"
)

// TrendParams configures the daily fraud / active customer series.
type TrendParams struct {
	End             time.Time
	Frauds          IntRange
	ActiveCustomers IntRange
	Days            int
}

// DefaultTrendParams covers the 30 days up to end.
func DefaultTrendParams(end time.Time) TrendParams {
	return TrendParams{
		Days:            30,
		End:             end,
		Frauds:          IntRange{Min: 8, Max: 34},
		ActiveCustomers: IntRange{Min: 600, Max: 999},
	}
}

// Validate checks the parameters without drawing anything.
func (p TrendParams) Validate() error {
	if err := validateCount("trend days", p.Days); err != nil {
		return err
	}
	if p.Days > 0 && p.End.IsZero() {
		return fmt.Errorf("%w: trend end date is required", common.ErrInvalidParameter)
	}
	if err := p.Frauds.Validate("daily frauds"); err != nil {
		return err
	}
	return p.ActiveCustomers.Validate("active customers")
}

// GenerateTrend draws one point per day, oldest first, ending on End.
func GenerateTrend(src *randsrc.Source, p TrendParams) ([]model.TrendPoint, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	end := p.End.UTC()
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	rows := make([]model.TrendPoint, 0, p.Days)
	for i := 0; i < p.Days; i++ {
		frauds, err := src.IntRange(p.Frauds.Min, p.Frauds.Max)
		if err != nil {
			return nil, err
		}
		active, err := src.IntRange(p.ActiveCustomers.Min, p.ActiveCustomers.Max)
		if err != nil {
			return nil, err
		}
		rows = append(rows, model.TrendPoint{
			Date:            last.AddDate(0, 0, i-p.Days+1),
			Frauds:          frauds,
			ActiveCustomers: active,
		})
	}
	return rows, nil
}
