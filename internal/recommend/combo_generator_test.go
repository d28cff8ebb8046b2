package recommend

import (
	"testing"
	"time"

	"github.com/mealsota/nutribot/internal/models"
)

func comboCtx(hour int, location models.Location) *models.RecommendationContext {
	return &models.RecommendationContext{
		Now:      time.Date(2026, 3, 2, hour, 0, 0, 0, time.UTC),
		Hour:     hour,
		Location: location,
	}
}

func TestComboGeneratorTimeLocationPairs(t *testing.T) {
	tests := []struct {
		hour     int
		location models.Location
		want     string
	}{
		{8, models.LocationHomeCooking, "Ten-minute home breakfast"},
		{12, models.LocationCafeteria, "Cafeteria lunch, done right"},
		{18, models.LocationDelivery, "Delivery dinner without the crash"},
		{12, models.LocationFastFood, "Rushed and at fast food"},
	}
	for _, tt := range tests {
		recs, err := NewComboGenerator().Generate(comboCtx(tt.hour, tt.location))
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if !findTitle(recs, tt.want) {
			t.Errorf("hour %d at %q: want %q, got %v", tt.hour, tt.location, tt.want, titles(recs))
		}
	}

	// Mismatched pairings emit no combo advice
	recs, _ := NewComboGenerator().Generate(comboCtx(8, models.LocationDelivery))
	if len(recs) != 0 {
		t.Errorf("breakfast-hour delivery has no combo, got %v", titles(recs))
	}
}

func TestComboGeneratorFirstTimeUser(t *testing.T) {
	ctx := comboCtx(15, models.LocationOther)
	ctx.IsFirstTimeUser = true

	recs, _ := NewComboGenerator().Generate(ctx)
	if !findTitle(recs, "Welcome! Start with three logged meals") {
		t.Fatalf("first-time user should get onboarding rec: %v", titles(recs))
	}
	for _, r := range recs {
		if r.Title == "Welcome! Start with three logged meals" {
			if r.Priority != models.PriorityHigh || r.Confidence != 0.9 {
				t.Errorf("onboarding rec should be high/0.9, got %s/%v", r.Priority, r.Confidence)
			}
		}
	}
}

func TestComboGeneratorRestrictionsAndBudget(t *testing.T) {
	ctx := comboCtx(15, models.LocationOther)
	ctx.DietaryRestrictions = []string{"vegetarian"}
	ctx.Budget = models.BudgetLow

	recs, _ := NewComboGenerator().Generate(ctx)
	if !findTitle(recs, "Cover the nutrients your restrictions skip") {
		t.Errorf("dietary restrictions should trigger advice: %v", titles(recs))
	}
	if !findTitle(recs, "Cheap staples that out-nourish takeout") {
		t.Errorf("low budget should trigger advice: %v", titles(recs))
	}
}
