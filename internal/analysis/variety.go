package analysis

import (
	"fmt"

	"github.com/mealsota/nutribot/internal/models"
)

// varietyWeights are the contribution of each core category to the total
// variety score.
var varietyWeights = map[models.FoodCategory]float64{
	models.CategoryGrains:     0.25,
	models.CategoryVegetables: 0.25,
	models.CategoryFruits:     0.15,
	models.CategoryProtein:    0.25,
	models.CategoryDairy:      0.10,
}

// VarietyAnalysis holds category coverage over a window of days
type VarietyAnalysis struct {
	Coverage map[models.FoodCategory]float64 `json:"coverage"`
	Score    float64                         `json:"score"`
	Days     int                             `json:"days"`
}

// AnalyzeVariety partitions the window into distinct days and measures, per
// core category, the share of days on which the category appears. The total
// score is the weighted sum of per-category coverage.
func AnalyzeVariety(meals []models.MealRecord) VarietyAnalysis {
	coverage := make(map[models.FoodCategory]float64, len(models.CoreCategories))
	for _, category := range models.CoreCategories {
		coverage[category] = 0
	}

	days := make(map[string]map[models.FoodCategory]struct{})
	for _, meal := range meals {
		day := meal.Day()
		if days[day] == nil {
			days[day] = make(map[models.FoodCategory]struct{})
		}
		for _, item := range meal.Items {
			days[day][item.Category] = struct{}{}
		}
	}

	analysis := VarietyAnalysis{Coverage: coverage, Days: len(days)}
	if len(days) == 0 {
		return analysis
	}

	for _, category := range models.CoreCategories {
		present := 0
		for _, categories := range days {
			if _, ok := categories[category]; ok {
				present++
			}
		}
		coverage[category] = float64(present) / float64(len(days)) * 100
		analysis.Score += coverage[category] * varietyWeights[category]
	}
	return analysis
}

// VarietyFeedback turns a variety analysis into feedback lines. The 30, 60
// and 80 boundaries are contractual bucket edges.
func VarietyFeedback(a VarietyAnalysis) []string {
	var feedback []string
	switch {
	case a.Score >= 80:
		feedback = append(feedback, "Excellent food variety across all major groups.")
	case a.Score >= 60:
		feedback = append(feedback, "Good variety overall. A few food groups could appear more often.")
	case a.Score >= 30:
		feedback = append(feedback, "Your diet leans on a few food groups. Try rotating in more variety.")
	default:
		feedback = append(feedback, "Very limited food variety. Aim to cover grains, vegetables, fruits, protein and dairy through the week.")
	}

	for _, category := range models.CoreCategories {
		if a.Days > 0 && a.Coverage[category] < 30 {
			feedback = append(feedback, fmt.Sprintf("You rarely eat %s. Try adding some a few times a week.", category))
		}
	}
	return feedback
}
