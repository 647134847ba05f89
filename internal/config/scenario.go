package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/finsecure-hub/internal/common"
	"github.com/Veraticus/finsecure-hub/internal/generator"
	"github.com/Veraticus/finsecure-hub/internal/scenario"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Scenario configuration keys.
const (
	KeyPreset           = "scenario.preset"
	KeySeed             = "scenario.seed"
	KeyTransactions     = "scenario.transaction_count"
	KeyCustomers        = "scenario.customer_count"
	KeyTickets          = "scenario.ticket_count"
	KeyAccesses         = "scenario.access_count"
	KeyTrendDays        = "scenario.trend_days"
	KeyFraudProbability = "scenario.fraud_probability"
	KeySuspicious       = "scenario.suspicious_access_probability"
	KeyBenchmarkJitter  = "scenario.benchmark_jitter"
	KeyAmountMin        = "scenario.amount_min"
	KeyAmountMax        = "scenario.amount_max"
	KeyStartMonth       = "scenario.start_month"
	KeyChurnThreshold   = "scenario.kpi.churn_threshold"
	KeyRecoveryRate     = "scenario.kpi.recovery_rate"
	KeyDetectionMinutes = "scenario.kpi.detection_minutes"
)

// LoadScenario builds a scenario configuration from Viper.
// It follows this precedence:
// 1. Explicitly set keys (flags, FINSECURE_ env vars, config file)
// 2. The preset named by scenario.preset
// 3. The default preset
func LoadScenario(v *viper.Viper) (scenario.Config, error) {
	name := v.GetString(KeyPreset)
	if name == "" {
		name = scenario.PresetDefault
	}

	cfg, err := scenario.Preset(name)
	if err != nil {
		return scenario.Config{}, err
	}

	if v.IsSet(KeySeed) {
		cfg = cfg.WithSeed(v.GetUint64(KeySeed))
	}

	ints := []struct {
		dst *int
		key string
	}{
		{&cfg.TransactionCount, KeyTransactions},
		{&cfg.CustomerCount, KeyCustomers},
		{&cfg.TicketCount, KeyTickets},
		{&cfg.AccessCount, KeyAccesses},
		{&cfg.TrendDays, KeyTrendDays},
	}
	for _, i := range ints {
		if v.IsSet(i.key) {
			*i.dst = v.GetInt(i.key)
		}
	}

	floats := []struct {
		dst *float64
		key string
	}{
		{&cfg.FraudProbability, KeyFraudProbability},
		{&cfg.SuspiciousAccessProbability, KeySuspicious},
		{&cfg.BenchmarkJitter, KeyBenchmarkJitter},
		{&cfg.KPI.ChurnThreshold, KeyChurnThreshold},
		{&cfg.KPI.RecoveryRate, KeyRecoveryRate},
		{&cfg.KPI.DetectionMinutes, KeyDetectionMinutes},
	}
	for _, f := range floats {
		if v.IsSet(f.key) {
			*f.dst = v.GetFloat64(f.key)
		}
	}

	if v.IsSet(KeyAmountMin) {
		if cfg.AmountRange.Min, err = parseAmount(v.GetString(KeyAmountMin)); err != nil {
			return scenario.Config{}, fmt.Errorf("%s: %w", KeyAmountMin, err)
		}
	}
	if v.IsSet(KeyAmountMax) {
		if cfg.AmountRange.Max, err = parseAmount(v.GetString(KeyAmountMax)); err != nil {
			return scenario.Config{}, fmt.Errorf("%s: %w", KeyAmountMax, err)
		}
	}

	if v.IsSet(KeyStartMonth) {
		if cfg.StartMonth, err = ParseMonth(v.GetString(KeyStartMonth)); err != nil {
			return scenario.Config{}, fmt.Errorf("%s: %w", KeyStartMonth, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return scenario.Config{}, err
	}
	return cfg, nil
}

// ParseMonth accepts 2024-01 or 2024-01-15 and returns the first day of that month in UTC.
func ParseMonth(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return generator.MonthStart(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: month %q must look like 2024-01", common.ErrInvalidParameter, s)
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: amount %q: %v", common.ErrInvalidParameter, s, err)
	}
	return d, nil
}
