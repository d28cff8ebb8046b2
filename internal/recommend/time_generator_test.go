package recommend

import (
	"testing"
	"time"

	"github.com/mealsota/nutribot/internal/models"
)

func TestMealWindowForHour(t *testing.T) {
	tests := []struct {
		hour     int
		want     models.MealType
		inWindow bool
	}{
		{5, "", false},
		{6, models.MealTypeBreakfast, true},
		{9, models.MealTypeBreakfast, true},
		{10, "", false},
		{11, models.MealTypeLunch, true},
		{13, models.MealTypeLunch, true},
		{14, "", false},
		{17, models.MealTypeDinner, true},
		{19, models.MealTypeDinner, true},
		{20, "", false},
		{23, "", false},
	}
	for _, tt := range tests {
		got, ok := MealWindowForHour(tt.hour)
		if got != tt.want || ok != tt.inWindow {
			t.Errorf("MealWindowForHour(%d) = %q, %v; want %q, %v", tt.hour, got, ok, tt.want, tt.inWindow)
		}
	}
}

func timeCtx(hour int) *models.RecommendationContext {
	return &models.RecommendationContext{
		Now:    time.Date(2026, 3, 2, hour, 0, 0, 0, time.UTC),
		Hour:   hour,
		Target: models.NutritionTarget{Calories: models.Range{Min: 1800, Max: 2200}},
	}
}

func findTitle(recs []models.Recommendation, title string) bool {
	for _, r := range recs {
		if r.Title == title {
			return true
		}
	}
	return false
}

func TestTimeGeneratorMealReminder(t *testing.T) {
	ctx := timeCtx(12)
	recs, err := NewTimeGenerator().Generate(ctx)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !findTitle(recs, "Time for lunch") {
		t.Errorf("unlogged lunch in its window should trigger a reminder: %v", titles(recs))
	}

	// Once lunch is logged the reminder disappears
	ctx.RecentMeals = []models.MealRecord{{
		MealType: models.MealTypeLunch,
		EatenAt:  ctx.Now.Add(-30 * time.Minute),
	}}
	recs, _ = NewTimeGenerator().Generate(ctx)
	if findTitle(recs, "Time for lunch") {
		t.Errorf("logged lunch should suppress the reminder: %v", titles(recs))
	}
}

func TestTimeGeneratorBusyHourTip(t *testing.T) {
	recs, _ := NewTimeGenerator().Generate(timeCtx(12))
	if !findTitle(recs, "Quick meals that still hold up") {
		t.Errorf("noon should carry the busy-hour tip: %v", titles(recs))
	}

	recs, _ = NewTimeGenerator().Generate(timeCtx(15))
	if findTitle(recs, "Quick meals that still hold up") {
		t.Errorf("mid-afternoon is not a busy hour: %v", titles(recs))
	}
}

func TestTimeGeneratorLateNightBranches(t *testing.T) {
	// Budget remaining: mid 2000, eaten 1200 -> light option
	hungry := timeCtx(23)
	hungry.CaloriesToday = 1200
	recs, _ := NewTimeGenerator().Generate(hungry)
	if !findTitle(recs, "A light late-night option is fine") {
		t.Errorf("remaining budget should allow a light snack: %v", titles(recs))
	}

	// Budget spent -> skip-snack advice
	full := timeCtx(23)
	full.CaloriesToday = 1950
	recs, _ = NewTimeGenerator().Generate(full)
	if !findTitle(recs, "Skip the late-night snack tonight") {
		t.Errorf("met target should advise skipping: %v", titles(recs))
	}

	// Early-morning hours count as late night too
	recs, _ = NewTimeGenerator().Generate(timeCtx(1))
	if !findTitle(recs, "A light late-night option is fine") && !findTitle(recs, "Skip the late-night snack tonight") {
		t.Errorf("01:00 should trigger late-night advice: %v", titles(recs))
	}

	// Ordinary evening hours do not
	recs, _ = NewTimeGenerator().Generate(timeCtx(19))
	if findTitle(recs, "A light late-night option is fine") || findTitle(recs, "Skip the late-night snack tonight") {
		t.Errorf("19:00 should not trigger late-night advice: %v", titles(recs))
	}
}

func TestTimeGeneratorTimeBandTips(t *testing.T) {
	morning, _ := NewTimeGenerator().Generate(timeCtx(8))
	if !findTitle(morning, "Front-load your protein") {
		t.Errorf("morning tip missing: %v", titles(morning))
	}
	afternoon, _ := NewTimeGenerator().Generate(timeCtx(15))
	if !findTitle(afternoon, "Beat the afternoon dip") {
		t.Errorf("afternoon tip missing: %v", titles(afternoon))
	}
	evening, _ := NewTimeGenerator().Generate(timeCtx(20))
	if !findTitle(evening, "Keep dinner light and early") {
		t.Errorf("evening tip missing: %v", titles(evening))
	}
}
