// Package analysis derives nutritional gaps, meal-timing patterns, variety
// coverage and intake trends from meal history. All functions are pure.
package analysis

import "github.com/mealsota/nutribot/internal/models"

// TrackedNutrients are the nutrients the gap analyzer inspects by default.
// Order matters: it is the tie-break for equal severities.
var TrackedNutrients = []models.Nutrient{
	models.NutrientProtein,
	models.NutrientFiber,
}

// CalculateGap returns the percentage shortfall of actual against
// recommended, zero when intake meets or exceeds the recommendation.
func CalculateGap(actual, recommended float64) float64 {
	if recommended <= 0 || actual >= recommended {
		return 0
	}
	return (recommended - actual) / recommended * 100
}

// IdentifyGaps compares rolling-average intake against the target for the
// default tracked nutrients.
func IdentifyGaps(averages map[models.Nutrient]float64, target models.NutritionTarget) []models.NutritionalGap {
	return IdentifyGapsFor(averages, target, TrackedNutrients)
}

// IdentifyGapsFor compares rolling-average intake against the target for an
// explicit nutrient list. Only shortfalls are reported; the result is sorted
// descending by severity with ties kept in nutrient order.
func IdentifyGapsFor(averages map[models.Nutrient]float64, target models.NutritionTarget, nutrients []models.Nutrient) []models.NutritionalGap {
	var gaps []models.NutritionalGap
	for _, nutrient := range nutrients {
		recommended := target.Recommended(nutrient)
		actual := averages[nutrient]
		pct := CalculateGap(actual, recommended)
		if pct <= 0 {
			continue
		}
		gaps = append(gaps, models.NutritionalGap{
			Nutrient:      nutrient,
			AverageIntake: actual,
			Recommended:   recommended,
			GapPercentage: pct,
			Severity:      models.SeverityForGap(pct),
		})
	}
	models.SortGapsBySeverity(gaps)
	return gaps
}
