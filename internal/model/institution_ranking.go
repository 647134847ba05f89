package model

import "sort"

// InstitutionRanking is the number of frauds detected at one institution.
type InstitutionRanking struct {
	Institution string `json:"institution" yaml:"institution"`
	FraudCount  int    `json:"fraud_count" yaml:"fraud_count"`
}

// InstitutionRankings is a slice of InstitutionRanking that supports sorting and utility methods.
type InstitutionRankings []InstitutionRanking

// Len implements sort.Interface.
func (r InstitutionRankings) Len() int {
	return len(r)
}

// Less implements sort.Interface - more frauds come first.
func (r InstitutionRankings) Less(i, j int) bool {
	if r[i].FraudCount != r[j].FraudCount {
		return r[i].FraudCount > r[j].FraudCount
	}
	// Ties sort by name for consistency
	return r[i].Institution < r[j].Institution
}

// Swap implements sort.Interface.
func (r InstitutionRankings) Swap(i, j int) {
	r[i], r[j] = r[j], r[i]
}

// Sorted returns a copy ordered by fraud count, highest first.
// The generated table keeps catalog order, so this never sorts in place.
func (r InstitutionRankings) Sorted() InstitutionRankings {
	out := make(InstitutionRankings, len(r))
	copy(out, r)
	sort.Sort(out)
	return out
}

// TopN returns the N institutions with the most frauds.
func (r InstitutionRankings) TopN(n int) InstitutionRankings {
	if n <= 0 {
		return InstitutionRankings{}
	}

	sorted := r.Sorted()
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// Total sums the fraud counts of every institution.
func (r InstitutionRankings) Total() int {
	total := 0
	for _, row := range r {
		total += row.FraudCount
	}
	return total
}
