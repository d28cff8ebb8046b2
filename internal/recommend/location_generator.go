package recommend

import (
	"fmt"

	"github.com/mealsota/nutribot/internal/models"
)

// LocationGenerator emits advice tailored to where the user is eating
type LocationGenerator struct{}

// NewLocationGenerator creates a location-based generator
func NewLocationGenerator() *LocationGenerator { return &LocationGenerator{} }

// Name implements Generator
func (g *LocationGenerator) Name() string { return "location" }

// Generate implements Generator
func (g *LocationGenerator) Generate(ctx *models.RecommendationContext) ([]models.Recommendation, error) {
	var recs []models.Recommendation

	switch ctx.Location {
	case models.LocationCafeteria:
		recs = append(recs, newRecommendation(
			models.RecTypeFoodSuggestion,
			"Build a balanced cafeteria tray",
			"Take the vegetable side every time, pick grilled over fried, and skip the sugary drink line.",
			models.PriorityMedium,
			0.6,
			"eating at a cafeteria",
		))
		if gap, ok := models.FindGap(ctx.Gaps, models.NutrientProtein); ok && gap.GapPercentage > 20 {
			recs = append(recs, newRecommendation(
				models.RecTypeFoodSuggestion,
				"Grab the protein main today",
				fmt.Sprintf("Your protein is %.0f%% under target; the cafeteria's meat or tofu main is the easiest fix.", gap.GapPercentage),
				models.PriorityHigh,
				models.SeverityConfidence(gap.Severity),
				"cafeteria visit with an open protein gap",
			))
		}

	case models.LocationDelivery:
		recs = append(recs, newRecommendation(
			models.RecTypeFoodSuggestion,
			"Order smarter delivery",
			"Add a side salad, pick the smaller portion size, and set aside half if portions run large.",
			models.PriorityMedium,
			0.6,
			"ordering delivery",
		))

	case models.LocationRestaurant:
		recs = append(recs, newRecommendation(
			models.RecTypeFoodSuggestion,
			"Restaurant portions are oversized",
			"Restaurant meals average 1.5x a home portion. Start with a soup or salad and take leftovers home.",
			models.PriorityMedium,
			0.6,
			"eating at a restaurant",
		))

	case models.LocationHomeCooking:
		recs = append(recs, newRecommendation(
			models.RecTypeFoodSuggestion,
			"Make home cooking count",
			"Cooking at home is your best lever. Batch-cook a grain and a protein so weeknight meals assemble themselves.",
			models.PriorityLow,
			0.5,
			"cooking at home",
		))

	case models.LocationFastFood:
		recs = append(recs, newRecommendation(
			models.RecTypeHabitImprovement,
			"Damage control at fast food",
			"Skip the combo upsell: single burger, no sugary drink, and fruit or a salad instead of fries halves the calorie load.",
			models.PriorityHigh,
			0.7,
			"eating fast food",
		))

	default:
		recs = append(recs, newRecommendation(
			models.RecTypeEducational,
			"Wherever you eat, anchor the plate",
			"One protein, one vegetable, one grain. The pattern works at any counter or table.",
			models.PriorityLow,
			0.4,
			"unrecognized eating location",
		))
	}
	return recs, nil
}
