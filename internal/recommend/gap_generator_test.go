package recommend

import (
	"strings"
	"testing"

	"github.com/mealsota/nutribot/internal/models"
)

func TestGapGeneratorSignificantGaps(t *testing.T) {
	ctx := &models.RecommendationContext{
		Gaps: []models.NutritionalGap{
			{Nutrient: models.NutrientProtein, AverageIntake: 40, Recommended: 100, GapPercentage: 60, Severity: models.SeveritySevere},
			{Nutrient: models.NutrientFiber, AverageIntake: 20, Recommended: 28, GapPercentage: 28.6, Severity: models.SeverityModerate},
			{Nutrient: models.NutrientSodium, GapPercentage: 10, Severity: models.SeverityMild},
		},
	}

	recs, err := NewGapGenerator().Generate(ctx)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("mild gaps should be skipped, got %d recs: %v", len(recs), titles(recs))
	}

	protein := recs[0]
	if protein.Title != "Add more protein to your meals" {
		t.Errorf("bespoke protein copy expected, got %q", protein.Title)
	}
	if protein.Priority != models.PriorityHigh || protein.Confidence != 0.9 {
		t.Errorf("severe gap should be high/0.9, got %s/%v", protein.Priority, protein.Confidence)
	}
	if !strings.Contains(protein.Description, "chicken breast") {
		t.Errorf("bespoke food list missing from %q", protein.Description)
	}

	fiber := recs[1]
	if fiber.Priority != models.PriorityMedium || fiber.Confidence != 0.7 {
		t.Errorf("moderate gap should be medium/0.7, got %s/%v", fiber.Priority, fiber.Confidence)
	}
}

func TestGapGeneratorGenericCopy(t *testing.T) {
	ctx := &models.RecommendationContext{
		Gaps: []models.NutritionalGap{
			{Nutrient: models.Nutrient("magnesium"), AverageIntake: 100, Recommended: 400, GapPercentage: 75, Severity: models.SeveritySevere},
		},
	}
	recs, _ := NewGapGenerator().Generate(ctx)
	if len(recs) != 1 || recs[0].Title != "Increase your magnesium intake" {
		t.Errorf("unknown nutrients get generic copy, got %v", titles(recs))
	}
}

func TestGapGeneratorPositiveFallback(t *testing.T) {
	recs, err := NewGapGenerator().Generate(&models.RecommendationContext{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("no gaps should yield exactly one positive rec, got %d", len(recs))
	}
	if recs[0].Priority != models.PriorityLow || recs[0].Type != models.RecTypeNutritionGap {
		t.Errorf("fallback rec = %+v", recs[0])
	}

	// Mild-only gaps also fall through to the positive path
	mild := &models.RecommendationContext{
		Gaps: []models.NutritionalGap{{Nutrient: models.NutrientFiber, GapPercentage: 5, Severity: models.SeverityMild}},
	}
	recs, _ = NewGapGenerator().Generate(mild)
	if len(recs) != 1 || recs[0].Title != "Your nutrient intake looks balanced" {
		t.Errorf("mild-only context should get the positive rec, got %v", titles(recs))
	}
}
