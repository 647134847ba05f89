package generator

import (
	"fmt"
	"math"

	"github.com/Veraticus/finsecure-hub/internal/model"
	"github.com/Veraticus/finsecure-hub/internal/randsrc"
)

var usageLevels = []model.UsageLevel{model.UsageHigh, model.UsageMedium, model.UsageLow}

// DefaultCustomerCount is the size of the at-risk customer panel.
const DefaultCustomerCount = 40

// GenerateCustomerRisk draws count churn records. Usage level is uniform
// over the three levels; churn is uniform in [0, 1] rounded to two decimals.
func GenerateCustomerRisk(src *randsrc.Source, count int) ([]model.CustomerRisk, error) {
	if err := validateCount("customer count", count); err != nil {
		return nil, err
	}

	rows := make([]model.CustomerRisk, 0, count)
	for i := 1; i <= count; i++ {
		level, err := randsrc.Pick(src, usageLevels)
		if err != nil {
			return nil, err
		}
		rows = append(rows, model.CustomerRisk{
			CustomerID:       fmt.Sprintf("C%d", i),
			MobileUsage:      level,
			ChurnProbability: roundTo(src.Float64(), 2),
		})
	}
	return rows, nil
}

func roundTo(f float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(f*scale) / scale
}
