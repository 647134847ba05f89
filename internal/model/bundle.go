package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// KPISnapshot holds the scalar dashboard tiles.
type KPISnapshot struct {
	AmountRecovered  decimal.Decimal `json:"amount_recovered" yaml:"amount_recovered"`
	FraudsToday      int             `json:"frauds_today" yaml:"frauds_today"`
	CustomersAtRisk  int             `json:"customers_at_risk" yaml:"customers_at_risk"`
	DetectionMinutes float64         `json:"detection_minutes" yaml:"detection_minutes"`
}

// CityFraudCount splits one city's transactions by fraud flag.
type CityFraudCount struct {
	City       string `json:"city" yaml:"city"`
	Suspected  int    `json:"suspected" yaml:"suspected"`
	Legitimate int    `json:"legitimate" yaml:"legitimate"`
}

// StatusCount counts tickets in one state.
type StatusCount struct {
	Status TicketStatus `json:"status" yaml:"status"`
	Count  int          `json:"count" yaml:"count"`
}

// CityAccessCount splits one city's access events by outcome.
type CityAccessCount struct {
	City       string `json:"city" yaml:"city"`
	Allowed    int    `json:"allowed" yaml:"allowed"`
	Suspicious int    `json:"suspicious" yaml:"suspicious"`
}

// UsageSpread summarizes churn probabilities for one usage level.
type UsageSpread struct {
	Level  UsageLevel `json:"level" yaml:"level"`
	Count  int        `json:"count" yaml:"count"`
	Min    float64    `json:"min" yaml:"min"`
	Median float64    `json:"median" yaml:"median"`
	Max    float64    `json:"max" yaml:"max"`
}

// Breakdowns are the grouped views derived from a bundle's tables.
type Breakdowns struct {
	FraudByCity     []CityFraudCount  `json:"fraud_by_city" yaml:"fraud_by_city"`
	TicketsByStatus []StatusCount     `json:"tickets_by_status" yaml:"tickets_by_status"`
	AccessByCity    []CityAccessCount `json:"access_by_city" yaml:"access_by_city"`
	ChurnByUsage    []UsageSpread     `json:"churn_by_usage" yaml:"churn_by_usage"`
}

// DatasetBundle is everything one generation run produces.
type DatasetBundle struct {
	ID           uuid.UUID           `json:"id" yaml:"id"`
	Scenario     string              `json:"scenario" yaml:"scenario"`
	Seed         uint64              `json:"seed" yaml:"seed"`
	Transactions Transactions        `json:"transactions" yaml:"transactions"`
	Customers    []CustomerRisk      `json:"customers" yaml:"customers"`
	Tickets      []Ticket            `json:"tickets" yaml:"tickets"`
	AccessEvents []AccessEvent       `json:"access_events" yaml:"access_events"`
	Financials   []FinancialPeriod   `json:"financials" yaml:"financials"`
	Ranking      InstitutionRankings `json:"ranking" yaml:"ranking"`
	Benchmarks   []ModelBenchmark    `json:"benchmarks" yaml:"benchmarks"`
	Trend        []TrendPoint        `json:"trend" yaml:"trend"`
	Users        []UserAccount       `json:"users" yaml:"users"`
	KPIs         KPISnapshot         `json:"kpis" yaml:"kpis"`
	Breakdowns   Breakdowns          `json:"breakdowns" yaml:"breakdowns"`
}
