package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/finsecure-hub/internal/common"
	"github.com/Veraticus/finsecure-hub/internal/config"
	"github.com/Veraticus/finsecure-hub/internal/scenario"
)

// scenarioFlags maps flag names to the config keys they override.
var scenarioFlags = []struct {
	name string
	key  string
}{
	{"preset", config.KeyPreset},
	{"seed", config.KeySeed},
	{"transactions", config.KeyTransactions},
	{"customers", config.KeyCustomers},
	{"tickets", config.KeyTickets},
	{"accesses", config.KeyAccesses},
	{"trend-days", config.KeyTrendDays},
	{"fraud-probability", config.KeyFraudProbability},
	{"suspicious-probability", config.KeySuspicious},
	{"benchmark-jitter", config.KeyBenchmarkJitter},
	{"amount-min", config.KeyAmountMin},
	{"amount-max", config.KeyAmountMax},
	{"start-month", config.KeyStartMonth},
	{"churn-threshold", config.KeyChurnThreshold},
	{"recovery-rate", config.KeyRecoveryRate},
	{"detection-minutes", config.KeyDetectionMinutes},
}

// addScenarioFlags registers the scenario overrides on cmd. Defaults are
// placeholders: only flags the user changes override the preset.
func addScenarioFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("preset", scenario.PresetDefault, "scenario preset (default, high-risk, quiet)")
	f.Uint64("seed", 0, "random seed; omit for a fresh seed")
	f.Int("transactions", 0, "number of transactions")
	f.Int("customers", 0, "number of customers")
	f.Int("tickets", 0, "number of support tickets")
	f.Int("accesses", 0, "number of access events")
	f.Int("trend-days", 0, "days in the fraud trend")
	f.Float64("fraud-probability", 0, "probability a transaction is flagged")
	f.Float64("suspicious-probability", 0, "probability an access is suspicious")
	f.Float64("benchmark-jitter", 0, "max jitter applied to benchmark scores")
	f.String("amount-min", "", "minimum transaction amount")
	f.String("amount-max", "", "maximum transaction amount")
	f.String("start-month", "", "first ledger month (2024-01)")
	f.Float64("churn-threshold", 0, "churn probability counted as at risk")
	f.Float64("recovery-rate", 0, "share of flagged amounts reported recovered")
	f.Float64("detection-minutes", 0, "reported average detection time")
}

// bindScenarioFlags binds the running command's flags. Binding happens at
// run time because several commands share the same keys.
func bindScenarioFlags(cmd *cobra.Command) error {
	for _, sf := range scenarioFlags {
		if err := viper.BindPFlag(sf.key, cmd.Flags().Lookup(sf.name)); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", sf.name, err)
		}
	}
	return nil
}

func loadScenario(cmd *cobra.Command) (scenario.Config, error) {
	if err := bindScenarioFlags(cmd); err != nil {
		return scenario.Config{}, err
	}

	cfg, err := config.LoadScenario(viper.GetViper())
	if err != nil {
		return scenario.Config{}, common.NewUserError("invalid scenario configuration", err)
	}
	return cfg, nil
}
