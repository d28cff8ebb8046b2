package analysis

import (
	"testing"
	"time"

	"github.com/mealsota/nutribot/internal/models"
)

func dayMeal(day int, categories ...models.FoodCategory) models.MealRecord {
	items := make([]models.FoodItem, len(categories))
	for i, c := range categories {
		items[i] = models.FoodItem{Name: string(c) + "-item", Category: c}
	}
	return models.MealRecord{
		MealType: models.MealTypeLunch,
		EatenAt:  time.Date(2026, 3, day, 12, 0, 0, 0, time.UTC),
		Items:    items,
	}
}

func TestAnalyzeVarietyFullCoverage(t *testing.T) {
	meals := []models.MealRecord{
		dayMeal(1, models.CoreCategories...),
		dayMeal(2, models.CoreCategories...),
	}

	a := AnalyzeVariety(meals)
	if a.Days != 2 {
		t.Errorf("days = %d, want 2", a.Days)
	}
	for _, category := range models.CoreCategories {
		if a.Coverage[category] != 100 {
			t.Errorf("%s coverage = %v, want 100", category, a.Coverage[category])
		}
	}
	if !approx(a.Score, 100) {
		t.Errorf("full coverage should score 100, got %v", a.Score)
	}
}

func TestAnalyzeVarietyWeights(t *testing.T) {
	// Grains every day, nothing else: 100 coverage x 0.25 weight
	meals := []models.MealRecord{
		dayMeal(1, models.CategoryGrains),
		dayMeal(2, models.CategoryGrains),
	}
	a := AnalyzeVariety(meals)
	if !approx(a.Score, 25) {
		t.Errorf("grains-only score = %v, want 25", a.Score)
	}

	// Dairy carries the smallest weight
	meals = []models.MealRecord{dayMeal(1, models.CategoryDairy)}
	if a := AnalyzeVariety(meals); !approx(a.Score, 10) {
		t.Errorf("dairy-only score = %v, want 10", a.Score)
	}
}

func TestAnalyzeVarietyPartialDays(t *testing.T) {
	meals := []models.MealRecord{
		dayMeal(1, models.CategoryProtein),
		dayMeal(2, models.CategoryProtein),
		dayMeal(3, models.CategoryGrains),
		dayMeal(4, models.CategoryGrains),
	}
	a := AnalyzeVariety(meals)
	if !approx(a.Coverage[models.CategoryProtein], 50) {
		t.Errorf("protein on 2 of 4 days = %v, want 50", a.Coverage[models.CategoryProtein])
	}
	if !approx(a.Coverage[models.CategoryFruits], 0) {
		t.Errorf("fruits never eaten = %v, want 0", a.Coverage[models.CategoryFruits])
	}
}

func TestAnalyzeVarietyEmptyWindow(t *testing.T) {
	a := AnalyzeVariety(nil)
	if a.Days != 0 || a.Score != 0 {
		t.Errorf("empty window = %+v", a)
	}
	for _, category := range models.CoreCategories {
		if _, ok := a.Coverage[category]; !ok {
			t.Errorf("coverage map should carry %s even when empty", category)
		}
	}
}

func TestVarietyFeedbackBuckets(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{85, "Excellent food variety across all major groups."},
		{65, "Good variety overall. A few food groups could appear more often."},
		{40, "Your diet leans on a few food groups. Try rotating in more variety."},
		{10, "Very limited food variety. Aim to cover grains, vegetables, fruits, protein and dairy through the week."},
	}
	for _, tt := range tests {
		fb := VarietyFeedback(VarietyAnalysis{Score: tt.score, Coverage: map[models.FoodCategory]float64{}})
		if len(fb) == 0 || fb[0] != tt.want {
			t.Errorf("score %v feedback = %v", tt.score, fb)
		}
	}
}

func TestVarietyFeedbackLowCategories(t *testing.T) {
	a := AnalyzeVariety([]models.MealRecord{
		dayMeal(1, models.CategoryGrains, models.CategoryProtein, models.CategoryVegetables, models.CategoryDairy),
	})
	fb := VarietyFeedback(a)
	found := false
	for _, line := range fb {
		if line == "You rarely eat fruits. Try adding some a few times a week." {
			found = true
		}
	}
	if !found {
		t.Errorf("missing fruit callout in %v", fb)
	}
}
