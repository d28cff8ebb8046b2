package models

import "testing"

func TestSeverityForGap(t *testing.T) {
	tests := []struct {
		gap  float64
		want GapSeverity
	}{
		{5, SeverityMild},
		{19.9, SeverityMild},
		{20, SeverityModerate},
		{50, SeverityModerate},
		{50.1, SeveritySevere},
		{100, SeveritySevere},
	}
	for _, tt := range tests {
		if got := SeverityForGap(tt.gap); got != tt.want {
			t.Errorf("SeverityForGap(%v) = %q, want %q", tt.gap, got, tt.want)
		}
	}
}

func TestSortGapsBySeverity(t *testing.T) {
	gaps := []NutritionalGap{
		{Nutrient: NutrientProtein, Severity: SeverityMild},
		{Nutrient: NutrientFiber, Severity: SeveritySevere},
		{Nutrient: NutrientIron, Severity: SeverityModerate},
		{Nutrient: NutrientCalcium, Severity: SeveritySevere},
	}
	SortGapsBySeverity(gaps)

	wantOrder := []Nutrient{NutrientFiber, NutrientCalcium, NutrientIron, NutrientProtein}
	for i, want := range wantOrder {
		if gaps[i].Nutrient != want {
			t.Fatalf("position %d: got %q, want %q", i, gaps[i].Nutrient, want)
		}
	}
}

func TestFindGap(t *testing.T) {
	gaps := []NutritionalGap{
		{Nutrient: NutrientProtein, GapPercentage: 35},
		{Nutrient: NutrientFiber, GapPercentage: 12},
	}

	gap, ok := FindGap(gaps, NutrientFiber)
	if !ok || gap.GapPercentage != 12 {
		t.Errorf("FindGap(fiber) = %+v, %v", gap, ok)
	}
	if _, ok := FindGap(gaps, NutrientSodium); ok {
		t.Errorf("FindGap(sodium) should report absent")
	}
}

func TestNewRange(t *testing.T) {
	r := NewRange(2000, 0.10)
	if r.Min != 1800 || r.Max != 2200 {
		t.Errorf("NewRange(2000, 0.10) = %+v", r)
	}
	if !r.Contains(2000) || !r.Contains(1800) || !r.Contains(2200) {
		t.Errorf("band should contain point and both edges")
	}
	if r.Contains(1799.9) || r.Contains(2200.1) {
		t.Errorf("band should exclude values just outside")
	}
	if r.Mid() != 2000 {
		t.Errorf("Mid() = %v, want 2000", r.Mid())
	}

	neg := NewRange(-100, 0.15)
	if neg.Min < 0 || neg.Max < 0 {
		t.Errorf("negative point should floor at zero, got %+v", neg)
	}
}

func TestTargetRecommended(t *testing.T) {
	target := NutritionTarget{
		Calories: Range{Min: 1800, Max: 2200},
		Protein:  Range{Min: 90, Max: 110},
		FiberG:   28,
		SodiumMG: 2300,
		SugarG:   50,
	}

	if got := target.Recommended(NutrientCalories); got != 2000 {
		t.Errorf("Recommended(calories) = %v", got)
	}
	if got := target.Recommended(NutrientProtein); got != 100 {
		t.Errorf("Recommended(protein) = %v", got)
	}
	if got := target.Recommended(NutrientFiber); got != 28 {
		t.Errorf("Recommended(fiber) = %v", got)
	}
	if got := target.Recommended(Nutrient("zinc")); got != 0 {
		t.Errorf("Recommended(unknown) = %v, want 0", got)
	}
}
