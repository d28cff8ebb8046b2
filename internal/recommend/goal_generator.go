package recommend

import (
	"fmt"

	"github.com/mealsota/nutribot/internal/models"
)

// GoalGenerator emits recommendations tailored to each of the user's
// active goals.
type GoalGenerator struct{}

// NewGoalGenerator creates a goal-based generator
func NewGoalGenerator() *GoalGenerator { return &GoalGenerator{} }

// Name implements Generator
func (g *GoalGenerator) Name() string { return "goal" }

// Generate implements Generator
func (g *GoalGenerator) Generate(ctx *models.RecommendationContext) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	for _, goal := range ctx.ActiveGoals {
		if !goal.IsActive() {
			continue
		}
		switch goal.Type {
		case models.GoalWeightLoss:
			recs = append(recs, g.weightLoss(ctx, goal)...)
		case models.GoalWeightGain:
			recs = append(recs, g.weightGain(ctx, goal)...)
		case models.GoalMuscleGain:
			recs = append(recs, g.muscleGain(ctx)...)
		case models.GoalBodyFatReduction:
			recs = append(recs, g.bodyFatReduction(ctx)...)
		case models.GoalHealthImprovement:
			recs = append(recs, g.healthImprovement(ctx)...)
		case models.GoalNutrientBalance:
			recs = append(recs, g.nutrientBalance(ctx)...)
		}
	}
	return recs, nil
}

func (g *GoalGenerator) weightLoss(ctx *models.RecommendationContext, goal models.Goal) []models.Recommendation {
	var recs []models.Recommendation
	if goal.Progress < 0.3 {
		recs = append(recs, newRecommendation(
			models.RecTypeHabitImprovement,
			"Tighten up your calorie control",
			fmt.Sprintf("Weight-loss progress is at %.0f%%. Keep daily calories inside %.0f-%.0f kcal and weigh portions for a week.",
				goal.Progress*100, ctx.Target.Calories.Min, ctx.Target.Calories.Max),
			models.PriorityHigh,
			0.8,
			"weight-loss progress below 30%",
		))
	}
	if gap, ok := models.FindGap(ctx.Gaps, models.NutrientProtein); ok && gap.GapPercentage > 20 {
		recs = append(recs, newRecommendation(
			models.RecTypeFoodSuggestion,
			"Protect your protein while cutting",
			"Losing weight with low protein costs muscle. Anchor each meal with a lean protein source.",
			models.PriorityHigh,
			models.SeverityConfidence(gap.Severity),
			fmt.Sprintf("protein gap of %.0f%% during a weight-loss goal", gap.GapPercentage),
		))
	}
	return recs
}

func (g *GoalGenerator) weightGain(ctx *models.RecommendationContext, goal models.Goal) []models.Recommendation {
	var recs []models.Recommendation
	if goal.Progress < 0.3 {
		recs = append(recs, newRecommendation(
			models.RecTypeMealPlan,
			"Add an extra calorie-dense meal",
			fmt.Sprintf("Gaining is slow at %.0f%% progress. Add a daily snack of nuts, nut butter or a shake toward the top of your %.0f kcal range.",
				goal.Progress*100, ctx.Target.Calories.Max),
			models.PriorityMedium,
			0.7,
			"weight-gain progress below 30%",
		))
	}
	return recs
}

func (g *GoalGenerator) muscleGain(ctx *models.RecommendationContext) []models.Recommendation {
	confidence := 0.6
	reason := "active muscle-gain goal"
	if gap, ok := models.FindGap(ctx.Gaps, models.NutrientProtein); ok {
		confidence = models.SeverityConfidence(gap.Severity)
		reason = fmt.Sprintf("protein gap of %.0f%% during a muscle-gain goal", gap.GapPercentage)
	}
	return []models.Recommendation{newRecommendation(
		models.RecTypeFoodSuggestion,
		"Spread protein across the day",
		fmt.Sprintf("For muscle gain, aim for %.0f-%.0fg of protein split over 3-4 meals rather than one large serving.",
			ctx.Target.Protein.Min, ctx.Target.Protein.Max),
		models.PriorityMedium,
		confidence,
		reason,
	)}
}

func (g *GoalGenerator) bodyFatReduction(ctx *models.RecommendationContext) []models.Recommendation {
	return []models.Recommendation{newRecommendation(
		models.RecTypeHabitImprovement,
		"Cut liquid sugar first",
		fmt.Sprintf("Sweetened drinks are the easiest fat-loss win. Keep added sugar under %.0fg per day.", ctx.Target.SugarG),
		models.PriorityMedium,
		0.6,
		"active body-fat-reduction goal",
	)}
}

func (g *GoalGenerator) healthImprovement(ctx *models.RecommendationContext) []models.Recommendation {
	if ctx.Patterns.FoodVarietyCount >= 15 {
		return nil
	}
	return []models.Recommendation{newRecommendation(
		models.RecTypeEducational,
		"Widen your weekly food variety",
		fmt.Sprintf("You ate %d distinct foods recently. Aiming for 15 or more per week covers micronutrients without tracking each one.",
			ctx.Patterns.FoodVarietyCount),
		models.PriorityLow,
		0.5,
		"active health-improvement goal with narrow variety",
	)}
}

func (g *GoalGenerator) nutrientBalance(ctx *models.RecommendationContext) []models.Recommendation {
	if len(ctx.Gaps) == 0 {
		return nil
	}
	worst := ctx.Gaps[0]
	return []models.Recommendation{newRecommendation(
		models.RecTypeNutritionGap,
		fmt.Sprintf("Rebalance toward %s", worst.Nutrient),
		fmt.Sprintf("Your largest imbalance is %s at %.0f%% below target. Close that gap first before fine-tuning the rest.",
			worst.Nutrient, worst.GapPercentage),
		models.SeverityPriority(worst.Severity),
		models.SeverityConfidence(worst.Severity),
		"active nutrient-balance goal",
	)}
}
