package nutrition

import "github.com/mealsota/nutribot/internal/models"

// activityMultipliers maps activity levels to their TDEE multiplier. This is
// the single source of truth for valid activity levels.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// proteinMultipliers gives grams of protein per kg of body weight by gender
// and activity level.
var proteinMultipliers = map[models.Gender]map[models.ActivityLevel]float64{
	models.GenderMale: {
		models.ActivitySedentary:  1.6,
		models.ActivityLight:      1.8,
		models.ActivityModerate:   2.0,
		models.ActivityActive:     2.1,
		models.ActivityVeryActive: 2.2,
	},
	models.GenderFemale: {
		models.ActivitySedentary:  1.4,
		models.ActivityLight:      1.6,
		models.ActivityModerate:   1.8,
		models.ActivityActive:     2.0,
		models.ActivityVeryActive: 2.1,
	},
}

const (
	calorieSpread = 0.10
	macroSpread   = 0.15

	sodiumTargetMG = 2300
	sugarTargetG   = 50
)

// BMR computes basal metabolic rate via Mifflin-St Jeor
func BMR(user models.UserProfile) float64 {
	bmr := 10*user.WeightKG + 6.25*user.HeightCM - 5*float64(user.Age)
	if user.Gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr
}

// TDEE multiplies BMR by the activity multiplier. Unknown activity levels
// fall back to sedentary.
func TDEE(user models.UserProfile) float64 {
	mult, ok := activityMultipliers[user.ActivityLevel]
	if !ok {
		mult = activityMultipliers[models.ActivitySedentary]
	}
	return BMR(user) * mult
}

// CalculateTargets derives the personalized daily intake target from a user
// profile. Deterministic; invalid inputs propagate as degenerate but
// non-crashing ranges.
func CalculateTargets(user models.UserProfile) models.NutritionTarget {
	calories := TDEE(user)

	// Age adjustment on top of TDEE
	switch {
	case user.Age < 25:
		calories += 100
	case user.Age > 50:
		calories -= 100
	}
	if calories < 0 {
		calories = 0
	}

	proteinG := user.WeightKG * proteinMultiplier(user.Gender, user.ActivityLevel)
	fatG := calories * 0.25 / 9
	carbCalories := calories - proteinG*4 - fatG*9
	if carbCalories < 0 {
		carbCalories = 0
	}
	carbG := carbCalories / 4

	return models.NutritionTarget{
		Calories: models.NewRange(calories, calorieSpread),
		Protein:  models.NewRange(proteinG, macroSpread),
		Carbs:    models.NewRange(carbG, macroSpread),
		Fat:      models.NewRange(fatG, macroSpread),
		FiberG:   fiberTarget(user.Age),
		SodiumMG: sodiumTargetMG,
		SugarG:   sugarTargetG,
	}
}

func proteinMultiplier(gender models.Gender, level models.ActivityLevel) float64 {
	byLevel, ok := proteinMultipliers[gender]
	if !ok {
		byLevel = proteinMultipliers[models.GenderFemale]
	}
	if mult, ok := byLevel[level]; ok {
		return mult
	}
	return byLevel[models.ActivitySedentary]
}

// fiberTarget is age-banded: 25g under 18, 28g for 18-50, 22g over 50
func fiberTarget(age int) float64 {
	switch {
	case age < 18:
		return 25
	case age > 50:
		return 22
	default:
		return 28
	}
}
