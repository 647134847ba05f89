package model

// UsageLevel describes how heavily a customer uses the mobile app.
type UsageLevel string

// Usage levels.
const (
	UsageHigh   UsageLevel = "High"
	UsageMedium UsageLevel = "Medium"
	UsageLow    UsageLevel = "Low"
)

// CustomerRisk is one row of the churn (abandonment) table.
type CustomerRisk struct {
	CustomerID       string     `json:"customer_id" yaml:"customer_id"`
	MobileUsage      UsageLevel `json:"mobile_usage_level" yaml:"mobile_usage_level"`
	ChurnProbability float64    `json:"churn_probability" yaml:"churn_probability"`
}

// AtRisk reports whether the churn probability reaches threshold.
func (c CustomerRisk) AtRisk(threshold float64) bool {
	return c.ChurnProbability >= threshold
}
