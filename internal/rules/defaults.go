package rules

import (
	"time"

	"github.com/mealsota/nutribot/internal/models"
)

// DefaultRules is the built-in rule set used when no external rule document
// is configured.
func DefaultRules() []*models.RecommendationRule {
	return []*models.RecommendationRule{
		{
			ID:       "protein-gap-severe",
			Name:     "Severe protein shortfall",
			Type:     "nutrient_gap",
			Priority: models.PriorityHigh,
			Message:  "Your protein intake is far below your target.",
			Cooldown: 24 * time.Hour,
			IsActive: true,
			Condition: models.NutrientGapCondition{
				Nutrient:   models.NutrientProtein,
				Threshold:  30,
				Comparison: models.CompareGT,
			},
			Action: models.SuggestFoodsAction{
				Nutrient: models.NutrientProtein,
				Foods:    []string{"chicken breast", "eggs", "tofu", "greek yogurt"},
			},
		},
		{
			ID:       "fiber-gap-moderate",
			Name:     "Fiber shortfall",
			Type:     "nutrient_gap",
			Priority: models.PriorityMedium,
			Message:  "You are not reaching your fiber goal.",
			Cooldown: 24 * time.Hour,
			IsActive: true,
			Condition: models.NutrientGapCondition{
				Nutrient:   models.NutrientFiber,
				Threshold:  20,
				Comparison: models.CompareGTE,
			},
			Action: models.SuggestFoodsAction{
				Nutrient: models.NutrientFiber,
				Foods:    []string{"oats", "lentils", "broccoli", "apples"},
			},
		},
		{
			ID:       "late-night-habit",
			Name:     "Frequent late-night eating",
			Type:     "meal_pattern",
			Priority: models.PriorityMedium,
			Message:  "Late-night meals make up a large share of your eating.",
			Cooldown: 48 * time.Hour,
			IsActive: true,
			Condition: models.MealPatternCondition{
				Pattern:    "late_night_frequency",
				Frequency:  0.3,
				Comparison: models.CompareGT,
			},
			Action: models.SuggestHabitAction{
				Habit: "Move your last meal of the day before 20:00.",
			},
		},
		{
			ID:       "low-score-education",
			Name:     "Low health score",
			Type:     "health_score",
			Priority: models.PriorityMedium,
			Message:  "Your overall nutrition score has room to improve.",
			Cooldown: 24 * time.Hour,
			IsActive: true,
			Condition: models.HealthScoreCondition{
				Score:      60,
				Comparison: models.CompareLT,
			},
			Action: models.ShowEducationalTipAction{
				Topic: "balanced_plate",
				Tip:   "Fill half your plate with vegetables, a quarter with protein and a quarter with whole grains.",
			},
		},
		{
			ID:       "weight-loss-stall",
			Name:     "Weight-loss progress stalled with protein gap",
			Type:     "goal_progress",
			Priority: models.PriorityHigh,
			Message:  "Weight-loss progress is slow and protein is short, which risks muscle loss.",
			Cooldown: 72 * time.Hour,
			IsActive: true,
			Condition: models.CompositeCondition{
				Operator: models.OperatorAnd,
				Conditions: []models.RuleCondition{
					models.GoalProgressCondition{
						GoalType:   models.GoalWeightLoss,
						Progress:   0.3,
						Comparison: models.CompareLT,
					},
					models.NutrientGapCondition{
						Nutrient:   models.NutrientProtein,
						Threshold:  20,
						Comparison: models.CompareGT,
					},
				},
			},
			Action: models.CreateMealPlanAction{
				PlanType:     "high_protein_deficit",
				DurationDays: 7,
			},
		},
	}
}
