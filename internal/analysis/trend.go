package analysis

import (
	"sort"

	"github.com/mealsota/nutribot/internal/models"
)

// TrendDirection is the multi-day directional indicator for a daily series
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// Trend splits an ordered daily series into halves by count and compares
// their averages: up when the second half exceeds the first by more than
// 10%, down when it falls short by more than 10%. Fewer than two points is
// always stable.
func Trend(values []float64) TrendDirection {
	if len(values) < 2 {
		return TrendStable
	}
	half := len(values) / 2
	first := mean(values[:half])
	second := mean(values[half:])

	switch {
	case second > first*1.1:
		return TrendUp
	case second < first*0.9:
		return TrendDown
	default:
		return TrendStable
	}
}

// DailySeries builds the ordered per-day series of a nutrient from a window
// of meal records, one value per distinct day, ascending by date.
func DailySeries(meals []models.MealRecord, nutrient models.Nutrient) []float64 {
	byDay := make(map[string]models.NutritionFacts)
	for _, meal := range meals {
		day := meal.Day()
		var total models.NutritionFacts
		for _, item := range meal.Items {
			total = total.Add(item.PerHundred.Scale(item.Grams / 100))
		}
		byDay[day] = byDay[day].Add(total)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	series := make([]float64, 0, len(days))
	for _, day := range days {
		series = append(series, byDay[day].Value(nutrient))
	}
	return series
}

// NutrientTrend is the trend of one nutrient's daily intake
func NutrientTrend(meals []models.MealRecord, nutrient models.Nutrient) TrendDirection {
	return Trend(DailySeries(meals, nutrient))
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
