package recommend

import (
	"testing"

	"github.com/mealsota/nutribot/internal/models"
)

func goalCtx(goals ...models.Goal) *models.RecommendationContext {
	return &models.RecommendationContext{
		ActiveGoals: goals,
		Target: models.NutritionTarget{
			Calories: models.Range{Min: 1800, Max: 2200},
			Protein:  models.Range{Min: 90, Max: 110},
			SugarG:   50,
		},
	}
}

func TestGoalGeneratorWeightLoss(t *testing.T) {
	ctx := goalCtx(models.Goal{Type: models.GoalWeightLoss, Status: models.GoalStatusActive, Progress: 0.1})
	ctx.Gaps = []models.NutritionalGap{
		{Nutrient: models.NutrientProtein, GapPercentage: 35, Severity: models.SeverityModerate},
	}

	recs, err := NewGoalGenerator().Generate(ctx)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !findTitle(recs, "Tighten up your calorie control") {
		t.Errorf("stalled progress should trigger calorie advice: %v", titles(recs))
	}
	if !findTitle(recs, "Protect your protein while cutting") {
		t.Errorf("protein gap during a cut should trigger protection advice: %v", titles(recs))
	}

	// Good progress and no gap: nothing to say
	quiet := goalCtx(models.Goal{Type: models.GoalWeightLoss, Status: models.GoalStatusActive, Progress: 0.6})
	recs, _ = NewGoalGenerator().Generate(quiet)
	if len(recs) != 0 {
		t.Errorf("on-track weight loss should emit nothing, got %v", titles(recs))
	}
}

func TestGoalGeneratorSkipsInactiveGoals(t *testing.T) {
	ctx := goalCtx(models.Goal{Type: models.GoalWeightLoss, Status: models.GoalStatusCompleted, Progress: 0.1})
	recs, _ := NewGoalGenerator().Generate(ctx)
	if len(recs) != 0 {
		t.Errorf("completed goals should be ignored, got %v", titles(recs))
	}
}

func TestGoalGeneratorMuscleGain(t *testing.T) {
	ctx := goalCtx(models.Goal{Type: models.GoalMuscleGain, Status: models.GoalStatusActive})
	recs, _ := NewGoalGenerator().Generate(ctx)
	if len(recs) != 1 || recs[0].Title != "Spread protein across the day" {
		t.Fatalf("muscle gain recs = %v", titles(recs))
	}
	if recs[0].Confidence != 0.6 {
		t.Errorf("no protein gap should use base confidence 0.6, got %v", recs[0].Confidence)
	}

	ctx.Gaps = []models.NutritionalGap{{Nutrient: models.NutrientProtein, GapPercentage: 60, Severity: models.SeveritySevere}}
	recs, _ = NewGoalGenerator().Generate(ctx)
	if recs[0].Confidence != 0.9 {
		t.Errorf("severe protein gap should lift confidence to 0.9, got %v", recs[0].Confidence)
	}
}

func TestGoalGeneratorHealthImprovement(t *testing.T) {
	ctx := goalCtx(models.Goal{Type: models.GoalHealthImprovement, Status: models.GoalStatusActive})
	ctx.Patterns.FoodVarietyCount = 8
	recs, _ := NewGoalGenerator().Generate(ctx)
	if !findTitle(recs, "Widen your weekly food variety") {
		t.Errorf("narrow variety should trigger advice: %v", titles(recs))
	}

	ctx.Patterns.FoodVarietyCount = 20
	recs, _ = NewGoalGenerator().Generate(ctx)
	if len(recs) != 0 {
		t.Errorf("wide variety should emit nothing, got %v", titles(recs))
	}
}

func TestGoalGeneratorNutrientBalance(t *testing.T) {
	ctx := goalCtx(models.Goal{Type: models.GoalNutrientBalance, Status: models.GoalStatusActive})
	ctx.Gaps = []models.NutritionalGap{
		{Nutrient: models.NutrientFiber, GapPercentage: 55, Severity: models.SeveritySevere},
		{Nutrient: models.NutrientProtein, GapPercentage: 25, Severity: models.SeverityModerate},
	}

	recs, _ := NewGoalGenerator().Generate(ctx)
	if len(recs) != 1 || recs[0].Title != "Rebalance toward fiber" {
		t.Fatalf("worst gap should lead, got %v", titles(recs))
	}
	if recs[0].Priority != models.PriorityHigh {
		t.Errorf("severe worst gap should be high priority, got %s", recs[0].Priority)
	}

	ctx.Gaps = nil
	recs, _ = NewGoalGenerator().Generate(ctx)
	if len(recs) != 0 {
		t.Errorf("balanced intake should emit nothing, got %v", titles(recs))
	}
}

func TestGoalGeneratorBodyFatAndWeightGain(t *testing.T) {
	ctx := goalCtx(
		models.Goal{Type: models.GoalBodyFatReduction, Status: models.GoalStatusActive},
		models.Goal{Type: models.GoalWeightGain, Status: models.GoalStatusActive, Progress: 0.1},
	)
	recs, _ := NewGoalGenerator().Generate(ctx)
	if !findTitle(recs, "Cut liquid sugar first") {
		t.Errorf("body-fat goal advice missing: %v", titles(recs))
	}
	if !findTitle(recs, "Add an extra calorie-dense meal") {
		t.Errorf("slow weight-gain advice missing: %v", titles(recs))
	}
}
