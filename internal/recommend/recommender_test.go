package recommend

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mealsota/nutribot/internal/models"
)

func fullSnapshot() *models.RecommendationContext {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	health := models.HealthScore{Total: 55}
	return &models.RecommendationContext{
		UserID:   "user-1",
		Now:      now,
		Hour:     now.Hour(),
		Location: models.LocationCafeteria,
		Gaps: []models.NutritionalGap{
			{Nutrient: models.NutrientProtein, AverageIntake: 40, Recommended: 100, GapPercentage: 60, Severity: models.SeveritySevere},
			{Nutrient: models.NutrientFiber, AverageIntake: 20, Recommended: 28, GapPercentage: 28.6, Severity: models.SeverityModerate},
		},
		Patterns:        models.PatternAnalysis{FoodVarietyCount: 8},
		HealthScore:     &health,
		ActiveGoals:     []models.Goal{{Type: models.GoalWeightLoss, Status: models.GoalStatusActive, Progress: 0.1}},
		IsFirstTimeUser: true,
		Target: models.NutritionTarget{
			Calories: models.Range{Min: 1800, Max: 2200},
			Protein:  models.Range{Min: 90, Max: 110},
			SugarG:   50,
		},
	}
}

func TestRecommenderDailyDigest(t *testing.T) {
	r := NewRecommender(zap.NewNop())
	recs := r.DailyDigest(context.Background(), fullSnapshot())

	if len(recs) == 0 {
		t.Fatal("rich snapshot should produce recommendations")
	}
	if len(recs) > DailyDigestLimit {
		t.Errorf("daily digest exceeds %d: %d", DailyDigestLimit, len(recs))
	}

	seen := make(map[string]bool)
	for _, rec := range recs {
		if seen[rec.DedupKey()] {
			t.Errorf("duplicate recommendation: %s", rec.Title)
		}
		seen[rec.DedupKey()] = true
		if rec.ID == "" || rec.Title == "" || rec.Reason == "" {
			t.Errorf("incomplete recommendation: %+v", rec)
		}
		if rec.Confidence < 0 || rec.Confidence > 1 {
			t.Errorf("confidence out of range: %v", rec.Confidence)
		}
	}

	// Ranked output never places a lower priority above a higher one
	for i := 1; i < len(recs); i++ {
		if recs[i].Priority.Rank() > recs[i-1].Priority.Rank() {
			t.Errorf("priority order violated at %d: %v", i, titles(recs))
		}
	}
}

func TestRecommenderContextualDigest(t *testing.T) {
	r := NewRecommender(zap.NewNop())
	recs := r.ContextualDigest(context.Background(), fullSnapshot())
	if len(recs) == 0 || len(recs) > ContextualDigestLimit {
		t.Errorf("contextual digest size = %d, want 1..%d", len(recs), ContextualDigestLimit)
	}
}

func TestRecommenderDeterministic(t *testing.T) {
	r := NewRecommender(zap.NewNop())
	snapshot := fullSnapshot()

	first := r.DailyDigest(context.Background(), snapshot)
	second := r.DailyDigest(context.Background(), snapshot)
	if len(first) != len(second) {
		t.Fatalf("repeated runs differ in size: %d vs %d", len(first), len(second))
	}
	firstIDs := make(map[string]bool, len(first))
	for _, rec := range first {
		firstIDs[rec.ID] = true
	}
	for _, rec := range second {
		if !firstIDs[rec.ID] {
			t.Errorf("second run produced a new recommendation: %s", rec.Title)
		}
	}
}
