package analysis

import (
	"math"
	"testing"

	"github.com/mealsota/nutribot/internal/models"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateGap(t *testing.T) {
	tests := []struct {
		name        string
		actual      float64
		recommended float64
		want        float64
	}{
		{"meets target", 100, 100, 0},
		{"exceeds target", 120, 100, 0},
		{"half of target", 50, 100, 50},
		{"nothing eaten", 0, 28, 100},
		{"zero recommendation", 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateGap(tt.actual, tt.recommended); !approx(got, tt.want) {
				t.Errorf("CalculateGap(%v, %v) = %v, want %v", tt.actual, tt.recommended, got, tt.want)
			}
		})
	}
}

func TestIdentifyGaps(t *testing.T) {
	target := models.NutritionTarget{
		Protein: models.Range{Min: 90, Max: 110},
		FiberG:  28,
	}
	averages := map[models.Nutrient]float64{
		models.NutrientProtein: 60, // 40% below the 100g midpoint
		models.NutrientFiber:   25, // ~10.7% below
	}

	gaps := IdentifyGaps(averages, target)
	if len(gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %d: %+v", len(gaps), gaps)
	}

	// Moderate protein gap sorts ahead of the mild fiber gap
	if gaps[0].Nutrient != models.NutrientProtein || gaps[0].Severity != models.SeverityModerate {
		t.Errorf("first gap = %+v", gaps[0])
	}
	if gaps[1].Nutrient != models.NutrientFiber || gaps[1].Severity != models.SeverityMild {
		t.Errorf("second gap = %+v", gaps[1])
	}
	if !approx(gaps[0].GapPercentage, 40) {
		t.Errorf("protein gap percentage = %v, want 40", gaps[0].GapPercentage)
	}
}

func TestIdentifyGapsNoShortfall(t *testing.T) {
	target := models.NutritionTarget{
		Protein: models.Range{Min: 90, Max: 110},
		FiberG:  28,
	}
	averages := map[models.Nutrient]float64{
		models.NutrientProtein: 120,
		models.NutrientFiber:   30,
	}
	if gaps := IdentifyGaps(averages, target); len(gaps) != 0 {
		t.Errorf("exceeding every target should yield no gaps, got %+v", gaps)
	}
}

func TestIdentifyGapsEmptyWindow(t *testing.T) {
	target := models.NutritionTarget{
		Protein: models.Range{Min: 90, Max: 110},
		FiberG:  28,
	}
	averages := map[models.Nutrient]float64{}

	gaps := IdentifyGaps(averages, target)
	if len(gaps) != len(TrackedNutrients) {
		t.Fatalf("empty window should gap every tracked nutrient, got %d", len(gaps))
	}
	for _, gap := range gaps {
		if !approx(gap.GapPercentage, 100) || gap.Severity != models.SeveritySevere {
			t.Errorf("empty-window gap should be a full severe gap, got %+v", gap)
		}
	}
}
