package recommend

import (
	"fmt"

	"github.com/mealsota/nutribot/internal/models"
)

// TimeGenerator emits recommendations keyed off the hour of day: meal
// reminders, time-banded tips, late-night snack guidance and quick-meal
// tips for busy hours.
type TimeGenerator struct{}

// NewTimeGenerator creates a time-based generator
func NewTimeGenerator() *TimeGenerator { return &TimeGenerator{} }

// Name implements Generator
func (g *TimeGenerator) Name() string { return "time" }

// MealWindowForHour maps an hour of day to the meal it falls in, if any
func MealWindowForHour(hour int) (models.MealType, bool) {
	switch {
	case hour >= 6 && hour < 10:
		return models.MealTypeBreakfast, true
	case hour >= 11 && hour < 14:
		return models.MealTypeLunch, true
	case hour >= 17 && hour < 20:
		return models.MealTypeDinner, true
	default:
		return "", false
	}
}

// busyHour marks the lunch and dinner rush bands
func busyHour(hour int) bool {
	return (hour >= 11 && hour <= 13) || (hour >= 17 && hour <= 19)
}

// Generate implements Generator
func (g *TimeGenerator) Generate(ctx *models.RecommendationContext) ([]models.Recommendation, error) {
	var recs []models.Recommendation

	if mealType, ok := MealWindowForHour(ctx.Hour); ok && !ctx.HasMealToday(mealType) {
		recs = append(recs, newRecommendation(
			models.RecTypeHabitImprovement,
			fmt.Sprintf("Time for %s", mealType),
			fmt.Sprintf("You have not logged %s yet today. Eating on schedule keeps your energy and your meal timing score up.", mealType),
			models.PriorityMedium,
			0.6,
			fmt.Sprintf("no %s recorded in the current window", mealType),
		))
	}

	recs = append(recs, g.timeBandTip(ctx.Hour))

	if ctx.Hour >= 21 || ctx.Hour <= 2 {
		recs = append(recs, g.lateNightSnack(ctx))
	}

	if busyHour(ctx.Hour) {
		recs = append(recs, newRecommendation(
			models.RecTypeFoodSuggestion,
			"Quick meals that still hold up",
			"Short on time? A grain bowl, kimbap with egg, or yogurt with fruit and granola beats skipping the meal.",
			models.PriorityLow,
			0.5,
			"current hour falls in a busy meal band",
		))
	}
	return recs, nil
}

func (g *TimeGenerator) timeBandTip(hour int) models.Recommendation {
	switch {
	case hour < 12:
		return newRecommendation(
			models.RecTypeEducational,
			"Front-load your protein",
			"A protein-rich morning meal steadies appetite for the whole day.",
			models.PriorityLow,
			0.4,
			"morning time band",
		)
	case hour < 18:
		return newRecommendation(
			models.RecTypeEducational,
			"Beat the afternoon dip",
			"Choose fruit, nuts or yogurt over sweets for the afternoon slump; sugar crashes make it worse.",
			models.PriorityLow,
			0.4,
			"afternoon time band",
		)
	default:
		return newRecommendation(
			models.RecTypeEducational,
			"Keep dinner light and early",
			"An earlier, lighter dinner improves sleep and next-morning appetite.",
			models.PriorityLow,
			0.4,
			"evening time band",
		)
	}
}

func (g *TimeGenerator) lateNightSnack(ctx *models.RecommendationContext) models.Recommendation {
	remaining := ctx.Target.Calories.Mid() - ctx.CaloriesToday
	if remaining > 200 {
		return newRecommendation(
			models.RecTypeFoodSuggestion,
			"A light late-night option is fine",
			fmt.Sprintf("You have roughly %.0f kcal left today. If you are hungry, warm milk, a banana or plain yogurt will not cost you sleep.", remaining),
			models.PriorityLow,
			0.5,
			"late hour with calorie budget remaining",
		)
	}
	return newRecommendation(
		models.RecTypeHabitImprovement,
		"Skip the late-night snack tonight",
		"You have already met today's calorie target. A glass of water or herbal tea usually settles late cravings.",
		models.PriorityMedium,
		0.6,
		"late hour with calorie target already met",
	)
}
