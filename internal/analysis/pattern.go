package analysis

import (
	"fmt"

	"github.com/mealsota/nutribot/internal/models"
)

// mealWindow is an ideal time-of-day window in minutes since midnight
type mealWindow struct {
	start int
	end   int
}

// idealWindows are the ideal logging windows per meal type
var idealWindows = map[models.MealType]mealWindow{
	models.MealTypeBreakfast: {start: 7 * 60, end: 9 * 60},
	models.MealTypeLunch:     {start: 11*60 + 30, end: 13*60 + 30},
	models.MealTypeDinner:    {start: 17*60 + 30, end: 19*60 + 30},
}

// lateNight window wraps midnight: 20:00 through 02:00
const (
	lateNightStart = 20 * 60
	lateNightEnd   = 2 * 60
)

// AnalyzePatterns derives meal-timing regularity from a window of meal
// records: a per-meal-type regularity score, the overall cascaded score,
// late-night frequency and detected unhealthy patterns.
func AnalyzePatterns(meals []models.MealRecord) models.PatternAnalysis {
	regularity := make(map[models.MealType]float64, len(idealWindows))
	distribution := make(map[models.MealType]int)

	inWindow := make(map[models.MealType]int)
	for _, meal := range meals {
		distribution[meal.MealType]++
		window, ok := idealWindows[meal.MealType]
		if !ok {
			continue
		}
		minute := meal.EatenAt.Hour()*60 + meal.EatenAt.Minute()
		if minute >= window.start && minute <= window.end {
			inWindow[meal.MealType]++
		}
	}

	for mealType := range idealWindows {
		total := distribution[mealType]
		if total == 0 {
			regularity[mealType] = 0
			continue
		}
		regularity[mealType] = float64(inWindow[mealType]) / float64(total) * 100
	}

	analysis := models.PatternAnalysis{
		MealRegularity:     regularity,
		LateNightFrequency: lateNightFrequency(meals),
		TimeDistribution:   distribution,
		FoodVarietyCount:   distinctFoodCount(meals),
	}
	analysis.RegularityScore = PatternScore(analysis)
	analysis.UnhealthyPatterns = detectUnhealthyPatterns(analysis)
	return analysis
}

// PatternScore cascades the per-meal regularity scores into one 0-100 value:
// breakfast blended at 0.4, lunch at 0.3, dinner at 0.2, then a flat
// deduction of lateNightFrequency x 100.
func PatternScore(a models.PatternAnalysis) float64 {
	score := 100.0
	score = score*0.6 + a.MealRegularity[models.MealTypeBreakfast]*0.4
	score = score*0.7 + a.MealRegularity[models.MealTypeLunch]*0.3
	score = score*0.8 + a.MealRegularity[models.MealTypeDinner]*0.2
	score -= a.LateNightFrequency * 100
	return score
}

// lateNightFrequency is the share of all records eaten between 20:00 and
// 02:00. The window wraps midnight.
func lateNightFrequency(meals []models.MealRecord) float64 {
	if len(meals) == 0 {
		return 0
	}
	late := 0
	for _, meal := range meals {
		minute := meal.EatenAt.Hour()*60 + meal.EatenAt.Minute()
		if minute >= lateNightStart || minute <= lateNightEnd {
			late++
		}
	}
	return float64(late) / float64(len(meals))
}

func distinctFoodCount(meals []models.MealRecord) int {
	seen := make(map[string]struct{})
	for _, meal := range meals {
		for _, item := range meal.Items {
			seen[item.Name] = struct{}{}
		}
	}
	return len(seen)
}

func detectUnhealthyPatterns(a models.PatternAnalysis) []string {
	var patterns []string
	if a.LateNightFrequency > 0.3 {
		patterns = append(patterns, "frequent_late_night_eating")
	}
	if a.MealRegularity[models.MealTypeBreakfast] == 0 && a.TimeDistribution[models.MealTypeBreakfast] == 0 {
		patterns = append(patterns, "skipped_breakfast")
	}
	if a.RegularityScore < 50 {
		patterns = append(patterns, "irregular_meal_times")
	}
	return patterns
}

// PatternFeedback turns a regularity analysis into feedback lines. The 50
// and 80 boundaries are contractual: other components key off the same
// buckets.
func PatternFeedback(a models.PatternAnalysis) []string {
	var feedback []string
	switch {
	case a.RegularityScore >= 80:
		feedback = append(feedback, "Your meal times are very consistent. Keep it up!")
	case a.RegularityScore >= 50:
		feedback = append(feedback, "Your meal times are fairly regular, but there is room to improve.")
	default:
		feedback = append(feedback, "Your meal times are irregular. Try to eat at consistent hours.")
	}

	if a.LateNightFrequency > 0.3 {
		feedback = append(feedback, fmt.Sprintf("%.0f%% of your meals are late at night. Late eating disrupts sleep and digestion.", a.LateNightFrequency*100))
	}
	for _, mealType := range []models.MealType{models.MealTypeBreakfast, models.MealTypeLunch, models.MealTypeDinner} {
		score := a.MealRegularity[mealType]
		if a.TimeDistribution[mealType] > 0 && score < 50 {
			feedback = append(feedback, fmt.Sprintf("Your %s timing varies a lot. Aim for the same window each day.", mealType))
		}
	}
	return feedback
}
