// Package scenario turns a scenario configuration into a dataset bundle.
package scenario

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Veraticus/finsecure-hub/internal/common"
	"github.com/Veraticus/finsecure-hub/internal/generator"
	"github.com/Veraticus/finsecure-hub/internal/kpi"
	"github.com/Veraticus/finsecure-hub/internal/randsrc"
)

// Config is a named set of generation parameters.
type Config struct {
	StartMonth                  time.Time             `json:"start_month" yaml:"start_month"`
	Seed                        *uint64               `json:"seed,omitempty" yaml:"seed,omitempty"`
	AmountRange                 generator.AmountRange `json:"amount_range" yaml:"amount_range"`
	Name                        string                `json:"name" yaml:"name"`
	KPI                         kpi.Policy            `json:"kpi" yaml:"kpi"`
	TransactionCount            int                   `json:"transaction_count" yaml:"transaction_count"`
	CustomerCount               int                   `json:"customer_count" yaml:"customer_count"`
	TicketCount                 int                   `json:"ticket_count" yaml:"ticket_count"`
	AccessCount                 int                   `json:"access_count" yaml:"access_count"`
	TrendDays                   int                   `json:"trend_days" yaml:"trend_days"`
	FraudProbability            float64               `json:"fraud_probability" yaml:"fraud_probability"`
	SuspiciousAccessProbability float64               `json:"suspicious_access_probability" yaml:"suspicious_access_probability"`
	BenchmarkJitter             float64               `json:"benchmark_jitter" yaml:"benchmark_jitter"`
}

// WithSeed returns a copy of c pinned to seed.
func (c Config) WithSeed(seed uint64) Config {
	c.Seed = &seed
	return c
}

// Validate checks every parameter before anything is generated.
func (c Config) Validate() error {
	counts := []struct {
		name  string
		value int
	}{
		{"transaction count", c.TransactionCount},
		{"customer count", c.CustomerCount},
		{"ticket count", c.TicketCount},
		{"access count", c.AccessCount},
	}
	for _, n := range counts {
		if n.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", common.ErrInvalidParameter, n.name, n.value)
		}
		if n.value > generator.MaxCount {
			return fmt.Errorf("%w: %s must be at most %d, got %d", common.ErrInvalidParameter, n.name, generator.MaxCount, n.value)
		}
	}
	if c.TrendDays < 0 || c.TrendDays > generator.MaxCount {
		return fmt.Errorf("%w: trend days must be between 0 and %d, got %d", common.ErrInvalidParameter, generator.MaxCount, c.TrendDays)
	}

	if err := randsrc.ValidateProbability("fraud probability", c.FraudProbability); err != nil {
		return err
	}
	if err := randsrc.ValidateProbability("suspicious access probability", c.SuspiciousAccessProbability); err != nil {
		return err
	}
	if err := c.AmountRange.Validate("amount range"); err != nil {
		return err
	}
	if c.StartMonth.IsZero() {
		return fmt.Errorf("%w: start month is required", common.ErrInvalidParameter)
	}
	if math.IsNaN(c.BenchmarkJitter) || c.BenchmarkJitter < 0 || c.BenchmarkJitter > generator.MaxBenchmarkJitter {
		return fmt.Errorf("%w: benchmark jitter must be between 0 and %g, got %g",
			common.ErrInvalidParameter, generator.MaxBenchmarkJitter, c.BenchmarkJitter)
	}
	return c.KPI.Validate()
}

// Preset names.
const (
	PresetDefault  = "default"
	PresetHighRisk = "high-risk"
	PresetQuiet    = "quiet"
)

var presets = map[string]func() Config{
	PresetDefault:  defaultConfig,
	PresetHighRisk: highRiskConfig,
	PresetQuiet:    quietConfig,
}

// Preset returns a fresh copy of a named preset.
func Preset(name string) (Config, error) {
	build, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", common.ErrUnknownScenario, name)
	}
	return build(), nil
}

// PresetNames lists the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the baseline dashboard preset.
func Default() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	tx := generator.DefaultTransactionParams()
	return Config{
		Name:                        PresetDefault,
		TransactionCount:            tx.Count,
		CustomerCount:               generator.DefaultCustomerCount,
		TicketCount:                 generator.DefaultTicketParams().Count,
		AccessCount:                 generator.DefaultAccessParams().Count,
		TrendDays:                   30,
		FraudProbability:            tx.FraudProbability,
		SuspiciousAccessProbability: generator.DefaultAccessParams().SuspiciousProbability,
		AmountRange:                 tx.AmountRange,
		StartMonth:                  generator.DefaultFinancialParams().StartMonth,
		KPI:                         kpi.DefaultPolicy(),
	}
}

func highRiskConfig() Config {
	c := defaultConfig()
	c.Name = PresetHighRisk
	c.TransactionCount = 120
	c.CustomerCount = 80
	c.TicketCount = 30
	c.AccessCount = 40
	c.FraudProbability = 0.45
	c.SuspiciousAccessProbability = 0.35
	c.AmountRange = generator.NewAmountRange(500, 50000)
	c.BenchmarkJitter = 0.03
	c.KPI.ChurnThreshold = 0.6
	c.KPI.RecoveryRate = 0.4
	c.KPI.DetectionMinutes = 7.25
	return c
}

func quietConfig() Config {
	c := defaultConfig()
	c.Name = PresetQuiet
	c.TransactionCount = 30
	c.CustomerCount = 20
	c.TicketCount = 5
	c.AccessCount = 10
	c.FraudProbability = 0.05
	c.SuspiciousAccessProbability = 0.05
	c.AmountRange = generator.NewAmountRange(100, 5000)
	c.KPI.DetectionMinutes = 1.5
	return c
}
