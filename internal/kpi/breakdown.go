package kpi

import (
	"sort"

	"github.com/Veraticus/finsecure-hub/internal/catalog"
	"github.com/Veraticus/finsecure-hub/internal/model"
)

// Tables groups the tables a breakdown is computed from.
type Tables struct {
	Transactions model.Transactions
	Customers    []model.CustomerRisk
	Tickets      []model.Ticket
	AccessEvents []model.AccessEvent
}

// Breakdown derives the grouped views charted next to each table.
// Groups follow catalog order; values outside the catalog are appended in
// first-seen order.
func Breakdown(t Tables) model.Breakdowns {
	return model.Breakdowns{
		FraudByCity:     fraudByCity(t.Transactions),
		TicketsByStatus: ticketsByStatus(t.Tickets),
		AccessByCity:    accessByCity(t.AccessEvents),
		ChurnByUsage:    churnByUsage(t.Customers),
	}
}

func orderedKeys(known []string, seen []string) []string {
	keys := make([]string, 0, len(known))
	present := make(map[string]bool, len(known))
	for _, k := range known {
		keys = append(keys, k)
		present[k] = true
	}
	for _, k := range seen {
		if !present[k] {
			keys = append(keys, k)
			present[k] = true
		}
	}
	return keys
}

func fraudByCity(transactions model.Transactions) []model.CityFraudCount {
	seen := make([]string, 0, len(transactions))
	counts := make(map[string]*model.CityFraudCount)
	for _, t := range transactions {
		c, ok := counts[t.City]
		if !ok {
			c = &model.CityFraudCount{City: t.City}
			counts[t.City] = c
			seen = append(seen, t.City)
		}
		if t.SuspectedFraud {
			c.Suspected++
		} else {
			c.Legitimate++
		}
	}

	keys := orderedKeys(catalog.MustAll(catalog.City), seen)
	out := make([]model.CityFraudCount, 0, len(keys))
	for _, k := range keys {
		if c, ok := counts[k]; ok {
			out = append(out, *c)
		} else {
			out = append(out, model.CityFraudCount{City: k})
		}
	}
	return out
}

func ticketsByStatus(tickets []model.Ticket) []model.StatusCount {
	seen := make([]string, 0, len(tickets))
	counts := make(map[string]int)
	for _, tk := range tickets {
		s := string(tk.Status)
		if _, ok := counts[s]; !ok {
			seen = append(seen, s)
		}
		counts[s]++
	}

	keys := orderedKeys(catalog.MustAll(catalog.TicketStatus), seen)
	out := make([]model.StatusCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, model.StatusCount{Status: model.TicketStatus(k), Count: counts[k]})
	}
	return out
}

func accessByCity(events []model.AccessEvent) []model.CityAccessCount {
	seen := make([]string, 0, len(events))
	counts := make(map[string]*model.CityAccessCount)
	for _, e := range events {
		c, ok := counts[e.City]
		if !ok {
			c = &model.CityAccessCount{City: e.City}
			counts[e.City] = c
			seen = append(seen, e.City)
		}
		if e.Status == model.AccessSuspicious {
			c.Suspicious++
		} else {
			c.Allowed++
		}
	}

	keys := orderedKeys(catalog.MustAll(catalog.AccessCity), seen)
	out := make([]model.CityAccessCount, 0, len(keys))
	for _, k := range keys {
		if c, ok := counts[k]; ok {
			out = append(out, *c)
		} else {
			out = append(out, model.CityAccessCount{City: k})
		}
	}
	return out
}

func churnByUsage(customers []model.CustomerRisk) []model.UsageSpread {
	seen := make([]string, 0, len(customers))
	values := make(map[string][]float64)
	for _, c := range customers {
		level := string(c.MobileUsage)
		if _, ok := values[level]; !ok {
			seen = append(seen, level)
		}
		values[level] = append(values[level], c.ChurnProbability)
	}

	keys := orderedKeys(catalog.MustAll(catalog.UsageLevel), seen)
	out := make([]model.UsageSpread, 0, len(keys))
	for _, k := range keys {
		out = append(out, spread(model.UsageLevel(k), values[k]))
	}
	return out
}

func spread(level model.UsageLevel, values []float64) model.UsageSpread {
	s := model.UsageSpread{Level: level, Count: len(values)}
	if len(values) == 0 {
		return s
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		s.Median = sorted[mid]
	} else {
		s.Median = (sorted[mid-1] + sorted[mid]) / 2
	}
	return s
}
