package recommend

import (
	"strings"

	"github.com/mealsota/nutribot/internal/models"
)

// ComboGenerator cross-products the time band with the location to emit
// more specific combined advice, plus special cases for first-time users,
// dietary restrictions and tight budgets.
type ComboGenerator struct{}

// NewComboGenerator creates a context-combination generator
func NewComboGenerator() *ComboGenerator { return &ComboGenerator{} }

// Name implements Generator
func (g *ComboGenerator) Name() string { return "context-combo" }

// Generate implements Generator
func (g *ComboGenerator) Generate(ctx *models.RecommendationContext) ([]models.Recommendation, error) {
	var recs []models.Recommendation

	mealType, inWindow := MealWindowForHour(ctx.Hour)

	switch {
	case inWindow && mealType == models.MealTypeBreakfast && ctx.Location == models.LocationHomeCooking:
		recs = append(recs, newRecommendation(
			models.RecTypeFoodSuggestion,
			"Ten-minute home breakfast",
			"Eggs with toast and a piece of fruit covers protein, grains and fruit before you leave the house.",
			models.PriorityMedium,
			0.6,
			"breakfast window at home",
		))
	case inWindow && mealType == models.MealTypeLunch && ctx.Location == models.LocationCafeteria:
		recs = append(recs, newRecommendation(
			models.RecTypeFoodSuggestion,
			"Cafeteria lunch, done right",
			"Hit the salad bar first so vegetables take up half the tray before the mains tempt you.",
			models.PriorityMedium,
			0.6,
			"lunch window at a cafeteria",
		))
	case inWindow && mealType == models.MealTypeDinner && ctx.Location == models.LocationDelivery:
		recs = append(recs, newRecommendation(
			models.RecTypeFoodSuggestion,
			"Delivery dinner without the crash",
			"Order dinner before you are ravenous and favor rice-and-protein bowls over fried options late in the day.",
			models.PriorityMedium,
			0.6,
			"dinner window ordering delivery",
		))
	case busyHour(ctx.Hour) && ctx.Location == models.LocationFastFood:
		recs = append(recs, newRecommendation(
			models.RecTypeHabitImprovement,
			"Rushed and at fast food",
			"Busy hours plus fast food is where most calorie overshoots happen. Decide your order before you queue.",
			models.PriorityHigh,
			0.7,
			"busy hour at a fast-food location",
		))
	}

	if ctx.IsFirstTimeUser {
		recs = append(recs, newRecommendation(
			models.RecTypeEducational,
			"Welcome! Start with three logged meals",
			"Log breakfast, lunch and dinner for two or three days. Scores and tips get sharper with every meal you record.",
			models.PriorityHigh,
			0.9,
			"first-time user with little history",
		))
	}

	if len(ctx.DietaryRestrictions) > 0 {
		recs = append(recs, newRecommendation(
			models.RecTypeEducational,
			"Cover the nutrients your restrictions skip",
			"With a "+strings.Join(ctx.DietaryRestrictions, ", ")+" diet, plan deliberate sources for the nutrients those foods usually provide.",
			models.PriorityMedium,
			0.6,
			"active dietary restrictions",
		))
	}

	if ctx.Budget == models.BudgetLow {
		recs = append(recs, newRecommendation(
			models.RecTypeFoodSuggestion,
			"Cheap staples that out-nourish takeout",
			"Eggs, oats, lentils, frozen vegetables and seasonal fruit cover most targets at a fraction of delivery prices.",
			models.PriorityMedium,
			0.6,
			"low meal budget",
		))
	}
	return recs, nil
}
