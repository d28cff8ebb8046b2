package models

import "sort"

// GapSeverity is the three-tier classification of a nutritional gap
type GapSeverity string

const (
	SeverityMild     GapSeverity = "mild"
	SeverityModerate GapSeverity = "moderate"
	SeveritySevere   GapSeverity = "severe"
)

// severityRank orders severities for sorting, higher is worse
var severityRank = map[GapSeverity]int{
	SeverityMild:     1,
	SeverityModerate: 2,
	SeveritySevere:   3,
}

// Rank returns the sort rank of the severity, higher is worse
func (s GapSeverity) Rank() int {
	return severityRank[s]
}

// SeverityForGap classifies a gap percentage: >50 severe, 20-50 moderate,
// below 20 mild.
func SeverityForGap(gapPercentage float64) GapSeverity {
	switch {
	case gapPercentage > 50:
		return SeveritySevere
	case gapPercentage >= 20:
		return SeverityModerate
	default:
		return SeverityMild
	}
}

// NutritionalGap is the shortfall of average intake against a target
type NutritionalGap struct {
	Nutrient      Nutrient    `bson:"nutrient" json:"nutrient"`
	AverageIntake float64     `bson:"average_intake" json:"average_intake"`
	Recommended   float64     `bson:"recommended" json:"recommended"`
	GapPercentage float64     `bson:"gap_percentage" json:"gap_percentage"`
	Severity      GapSeverity `bson:"severity" json:"severity"`
}

// SortGapsBySeverity sorts gaps descending by severity. The sort is stable
// so equal severities keep their nutrient iteration order.
func SortGapsBySeverity(gaps []NutritionalGap) {
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Severity.Rank() > gaps[j].Severity.Rank()
	})
}

// FindGap returns the gap for the named nutrient, if present
func FindGap(gaps []NutritionalGap, nutrient Nutrient) (NutritionalGap, bool) {
	for _, g := range gaps {
		if g.Nutrient == nutrient {
			return g, true
		}
	}
	return NutritionalGap{}, false
}
