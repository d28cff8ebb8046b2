package models

import (
	"testing"
	"time"
)

func TestNormalizeLocation(t *testing.T) {
	tests := []struct {
		raw  string
		want Location
	}{
		{"cafeteria", LocationCafeteria},
		{"canteen", LocationCafeteria},
		{"구내식당", LocationCafeteria},
		{"배달", LocationDelivery},
		{"Home", LocationHomeCooking},
		{"집밥", LocationHomeCooking},
		{"fastfood", LocationFastFood},
		{"spaceship", LocationOther},
		{"", LocationOther},
	}
	for _, tt := range tests {
		if got := NormalizeLocation(tt.raw); got != tt.want {
			t.Errorf("NormalizeLocation(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestActiveGoalOfType(t *testing.T) {
	ctx := RecommendationContext{
		ActiveGoals: []Goal{
			{Type: GoalWeightLoss, Status: GoalStatusCompleted, Progress: 1},
			{Type: GoalWeightLoss, Status: GoalStatusActive, Progress: 0.2},
			{Type: GoalMuscleGain, Status: GoalStatusActive, Progress: 0.5},
		},
	}

	goal, ok := ctx.ActiveGoalOfType(GoalWeightLoss)
	if !ok || goal.Progress != 0.2 {
		t.Errorf("should skip completed goals, got %+v, %v", goal, ok)
	}
	if _, ok := ctx.ActiveGoalOfType(GoalNutrientBalance); ok {
		t.Errorf("absent goal type should report false")
	}
}

func TestHasMealToday(t *testing.T) {
	now := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	ctx := RecommendationContext{
		Now: now,
		RecentMeals: []MealRecord{
			{MealType: MealTypeBreakfast, EatenAt: now.Add(-6 * time.Hour)},
			{MealType: MealTypeLunch, EatenAt: now.AddDate(0, 0, -1)},
		},
	}

	if !ctx.HasMealToday(MealTypeBreakfast) {
		t.Errorf("breakfast logged this morning should count")
	}
	if ctx.HasMealToday(MealTypeLunch) {
		t.Errorf("yesterday's lunch should not count as today")
	}
	if ctx.HasMealToday(MealTypeDinner) {
		t.Errorf("unlogged dinner should not count")
	}
}

func TestHealthScoreWithLayer(t *testing.T) {
	base := HealthScore{
		Total:     80,
		Breakdown: map[string]float64{"calories": 90},
		Feedback:  []string{"first"},
	}

	layered := base.WithLayer(120, "pattern", 70, []string{"second"})
	if layered.Total != 100 {
		t.Errorf("total should clamp to 100, got %v", layered.Total)
	}
	if layered.Breakdown["calories"] != 90 || layered.Breakdown["pattern"] != 70 {
		t.Errorf("breakdown = %v", layered.Breakdown)
	}
	if len(layered.Feedback) != 2 || layered.Feedback[1] != "second" {
		t.Errorf("feedback = %v", layered.Feedback)
	}

	// WithLayer must not touch the receiver
	if base.Total != 80 || len(base.Breakdown) != 1 || len(base.Feedback) != 1 {
		t.Errorf("receiver mutated: %+v", base)
	}

	floored := base.WithLayer(-5, "variety", 0, nil)
	if floored.Total != 0 {
		t.Errorf("total should clamp to 0, got %v", floored.Total)
	}
}
