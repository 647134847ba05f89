package scenario

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Veraticus/finsecure-hub/internal/common"
	"github.com/Veraticus/finsecure-hub/internal/generator"
	"github.com/Veraticus/finsecure-hub/internal/kpi"
	"github.com/Veraticus/finsecure-hub/internal/model"
	"github.com/Veraticus/finsecure-hub/internal/randsrc"
	"github.com/google/uuid"
)

// bundleNamespace scopes the name-based bundle ids.
var bundleNamespace = uuid.MustParse("6f1b0c2e-4e0a-5d8e-9a57-3c1f2b7d9e40")

// Generate validates cfg and produces one bundle. Each call owns a fresh
// random source, so concurrent calls never share state. With cfg.Seed set
// the result is identical on every call.
func Generate(cfg Config) (*model.DatasetBundle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	src := randsrc.New(cfg.Seed)
	cfg = cfg.WithSeed(src.Seed())

	id, err := bundleID(cfg)
	if err != nil {
		return nil, err
	}

	bundle := &model.DatasetBundle{
		ID:       id,
		Scenario: cfg.Name,
		Seed:     src.Seed(),
		Users:    generator.DefaultUsers(),
	}
	if err := fillTables(src, cfg, bundle); err != nil {
		return nil, err
	}

	agg, err := kpi.NewAggregator(cfg.KPI)
	if err != nil {
		return nil, err
	}
	bundle.KPIs = agg.Summarize(bundle.Transactions, bundle.Customers)
	bundle.Breakdowns = kpi.Breakdown(kpi.Tables{
		Transactions: bundle.Transactions,
		Customers:    bundle.Customers,
		Tickets:      bundle.Tickets,
		AccessEvents: bundle.AccessEvents,
	})

	if err := bundle.Validate(); err != nil {
		return nil, fmt.Errorf("generated bundle is inconsistent: %w", err)
	}

	common.LogDebug("Generated dataset bundle", common.Fields{
		"scenario":     cfg.Name,
		"seed":         bundle.Seed,
		"transactions": len(bundle.Transactions),
		"frauds":       bundle.KPIs.FraudsToday,
	})
	return bundle, nil
}

// fillTables draws every table in a fixed order.
func fillTables(src *randsrc.Source, cfg Config, b *model.DatasetBundle) error {
	var err error

	b.Transactions, err = generator.GenerateTransactions(src, generator.TransactionParams{
		Count:            cfg.TransactionCount,
		AmountRange:      cfg.AmountRange,
		FraudProbability: cfg.FraudProbability,
	})
	if err != nil {
		return fmt.Errorf("transactions: %w", err)
	}

	b.Customers, err = generator.GenerateCustomerRisk(src, cfg.CustomerCount)
	if err != nil {
		return fmt.Errorf("customers: %w", err)
	}

	tickets := generator.DefaultTicketParams()
	tickets.Count = cfg.TicketCount
	b.Tickets, err = generator.GenerateTickets(src, tickets)
	if err != nil {
		return fmt.Errorf("tickets: %w", err)
	}

	access := generator.DefaultAccessParams()
	access.Count = cfg.AccessCount
	access.Users = generator.Usernames(b.Users)
	access.SuspiciousProbability = cfg.SuspiciousAccessProbability
	b.AccessEvents, err = generator.GenerateAccessEvents(src, access)
	if err != nil {
		return fmt.Errorf("access events: %w", err)
	}

	ledger := generator.DefaultFinancialParams()
	ledger.StartMonth = cfg.StartMonth
	b.Financials, err = generator.GenerateFinancialPeriods(src, ledger)
	if err != nil {
		return fmt.Errorf("financial periods: %w", err)
	}

	b.Ranking, err = generator.GenerateInstitutionRanking(src, generator.DefaultRankingParams())
	if err != nil {
		return fmt.Errorf("institution ranking: %w", err)
	}

	b.Benchmarks, err = generator.GenerateModelBenchmarks(src, generator.BenchmarkParams{Jitter: cfg.BenchmarkJitter})
	if err != nil {
		return fmt.Errorf("model benchmarks: %w", err)
	}

	trend := generator.DefaultTrendParams(trendEnd(cfg))
	trend.Days = cfg.TrendDays
	b.Trend, err = generator.GenerateTrend(src, trend)
	if err != nil {
		return fmt.Errorf("trend: %w", err)
	}

	return nil
}

// trendEnd is the last day of the ledger year, so the trend never depends
// on the wall clock.
func trendEnd(cfg Config) time.Time {
	return generator.MonthStart(cfg.StartMonth).
		AddDate(0, generator.LedgerMonths, 0).
		AddDate(0, 0, -1)
}

// bundleID derives a stable id from the fully resolved configuration.
// Amounts are hashed as the cent bounds they draw from.
func bundleID(cfg Config) (uuid.UUID, error) {
	cfg.AmountRange = cfg.AmountRange.Normalized()
	canonical, err := json.Marshal(cfg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding scenario: %w", err)
	}
	return uuid.NewSHA1(bundleNamespace, canonical), nil
}
