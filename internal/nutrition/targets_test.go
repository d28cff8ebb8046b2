package nutrition

import (
	"testing"

	"github.com/mealsota/nutribot/internal/models"
)

func TestBMR(t *testing.T) {
	male := models.UserProfile{Gender: models.GenderMale, Age: 25, WeightKG: 70, HeightCM: 175}
	if got := BMR(male); !approx(got, 1673.75) {
		t.Errorf("male BMR = %v, want 1673.75", got)
	}

	female := models.UserProfile{Gender: models.GenderFemale, Age: 30, WeightKG: 62, HeightCM: 165}
	// 620 + 1031.25 - 150 - 161
	if got := BMR(female); !approx(got, 1340.25) {
		t.Errorf("female BMR = %v, want 1340.25", got)
	}
}

func TestTDEE(t *testing.T) {
	profile := models.UserProfile{Gender: models.GenderMale, Age: 25, WeightKG: 70, HeightCM: 175, ActivityLevel: models.ActivityModerate}
	if got := TDEE(profile); !approx(got, 1673.75*1.55) {
		t.Errorf("moderate TDEE = %v, want %v", got, 1673.75*1.55)
	}

	profile.ActivityLevel = models.ActivityLevel("heroic")
	if got := TDEE(profile); !approx(got, 1673.75*1.2) {
		t.Errorf("unknown activity should fall back to sedentary, got %v", got)
	}
}

func TestCalculateTargets(t *testing.T) {
	profile := models.UserProfile{
		Gender:        models.GenderMale,
		Age:           25,
		WeightKG:      70,
		HeightCM:      175,
		ActivityLevel: models.ActivityModerate,
	}
	target := CalculateTargets(profile)

	calories := 1673.75 * 1.55
	if !approx(target.Calories.Min, calories*0.90) || !approx(target.Calories.Max, calories*1.10) {
		t.Errorf("calorie band = %+v", target.Calories)
	}

	// male moderate: 2.0 g/kg
	protein := 70 * 2.0
	if !approx(target.Protein.Min, protein*0.85) || !approx(target.Protein.Max, protein*1.15) {
		t.Errorf("protein band = %+v", target.Protein)
	}

	fat := calories * 0.25 / 9
	if !approx(target.Fat.Mid(), fat) {
		t.Errorf("fat midpoint = %v, want %v", target.Fat.Mid(), fat)
	}

	carbs := (calories - protein*4 - fat*9) / 4
	if !approx(target.Carbs.Mid(), carbs) {
		t.Errorf("carb midpoint = %v, want %v", target.Carbs.Mid(), carbs)
	}

	if target.SodiumMG != 2300 || target.SugarG != 50 {
		t.Errorf("fixed targets = sodium %v, sugar %v", target.SodiumMG, target.SugarG)
	}
}

func TestCalculateTargetsAgeAdjustment(t *testing.T) {
	base := models.UserProfile{Gender: models.GenderFemale, WeightKG: 62, HeightCM: 165, ActivityLevel: models.ActivitySedentary}

	young := base
	young.Age = 20
	old := base
	old.Age = 55
	mid := base
	mid.Age = 35

	youngCal := CalculateTargets(young).Calories.Mid()
	oldCal := CalculateTargets(old).Calories.Mid()
	midCal := CalculateTargets(mid).Calories.Mid()

	if youngCal <= midCal {
		t.Errorf("under-25 should gain calories: %v vs %v", youngCal, midCal)
	}
	if oldCal >= midCal {
		t.Errorf("over-50 should lose calories: %v vs %v", oldCal, midCal)
	}
}

func TestFiberTargetAgeBands(t *testing.T) {
	tests := []struct {
		age  int
		want float64
	}{
		{16, 25},
		{18, 28},
		{50, 28},
		{51, 22},
	}
	for _, tt := range tests {
		profile := models.DefaultProfile("u")
		profile.Age = tt.age
		if got := CalculateTargets(profile).FiberG; got != tt.want {
			t.Errorf("fiber target at age %d = %v, want %v", tt.age, got, tt.want)
		}
	}
}

func TestCalculateTargetsDegenerateProfile(t *testing.T) {
	target := CalculateTargets(models.UserProfile{Gender: models.GenderFemale, Age: 30})
	if target.Calories.Min < 0 || target.Protein.Min < 0 || target.Carbs.Min < 0 {
		t.Errorf("degenerate profile produced negative bands: %+v", target)
	}
}
