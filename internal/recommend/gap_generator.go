package recommend

import (
	"fmt"

	"github.com/mealsota/nutribot/internal/models"
)

// nutrientCopy is the bespoke recommendation copy for well-known nutrients
var nutrientCopy = map[models.Nutrient]struct {
	title string
	foods string
}{
	models.NutrientProtein: {
		title: "Add more protein to your meals",
		foods: "chicken breast, eggs, tofu, legumes or greek yogurt",
	},
	models.NutrientFiber: {
		title: "Boost your fiber intake",
		foods: "oats, lentils, broccoli, apples or whole-grain bread",
	},
	models.NutrientIron: {
		title: "Iron is running low",
		foods: "lean red meat, spinach, beans or fortified cereal",
	},
	models.NutrientCalcium: {
		title: "Strengthen your calcium intake",
		foods: "milk, cheese, yogurt, kale or canned salmon",
	},
	models.NutrientVitaminC: {
		title: "Get more vitamin C",
		foods: "citrus fruit, bell peppers, strawberries or kiwi",
	},
}

// GapGenerator emits one recommendation per severe or moderate nutritional
// gap, or a single positive-feedback recommendation when no significant
// gaps exist.
type GapGenerator struct{}

// NewGapGenerator creates a gap-based generator
func NewGapGenerator() *GapGenerator { return &GapGenerator{} }

// Name implements Generator
func (g *GapGenerator) Name() string { return "nutrient-gap" }

// Generate implements Generator
func (g *GapGenerator) Generate(ctx *models.RecommendationContext) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	for _, gap := range ctx.Gaps {
		if gap.Severity != models.SeveritySevere && gap.Severity != models.SeverityModerate {
			continue
		}
		recs = append(recs, g.forGap(gap))
	}

	if len(recs) == 0 {
		recs = append(recs, newRecommendation(
			models.RecTypeNutritionGap,
			"Your nutrient intake looks balanced",
			"No significant nutrient shortfalls this week. Keep eating the way you have been.",
			models.PriorityLow,
			0.8,
			"no significant gaps detected",
		))
	}
	return recs, nil
}

func (g *GapGenerator) forGap(gap models.NutritionalGap) models.Recommendation {
	reason := fmt.Sprintf("%s intake is %.0f%% below your target", gap.Nutrient, gap.GapPercentage)
	priority := models.SeverityPriority(gap.Severity)
	confidence := models.SeverityConfidence(gap.Severity)

	if bespoke, ok := nutrientCopy[gap.Nutrient]; ok {
		description := fmt.Sprintf("You averaged %.1f against a recommended %.1f. Good sources: %s.",
			gap.AverageIntake, gap.Recommended, bespoke.foods)
		return newRecommendation(models.RecTypeNutritionGap, bespoke.title, description, priority, confidence, reason)
	}

	title := fmt.Sprintf("Increase your %s intake", gap.Nutrient)
	description := fmt.Sprintf("Your average %s intake of %.1f is below the recommended %.1f.",
		gap.Nutrient, gap.AverageIntake, gap.Recommended)
	return newRecommendation(models.RecTypeNutritionGap, title, description, priority, confidence, reason)
}
