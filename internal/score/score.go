// Package score implements the layered health-score pipeline. Each layer is
// a pure function over the previous layer's score; nothing here holds state.
package score

import (
	"fmt"

	"github.com/mealsota/nutribot/internal/analysis"
	"github.com/mealsota/nutribot/internal/models"
)

// Blend folds a new sub-score into a running score at the given weight
func Blend(running, sub, weight float64) float64 {
	return running*(1-weight) + sub*weight
}

// bandPenalty maps a fractional deviation to a penalty: free inside +-20%,
// then 10/20/30 points for the +-40%, +-60% and beyond bands.
func bandPenalty(deviation float64) float64 {
	switch {
	case deviation <= 0.20:
		return 0
	case deviation <= 0.40:
		return 10
	case deviation <= 0.60:
		return 20
	default:
		return 30
	}
}

// rangeDeviation is the fractional distance of actual from the target band,
// measured against the band midpoint. Zero inside the band.
func rangeDeviation(actual float64, target models.Range) float64 {
	if target.Contains(actual) {
		return 0
	}
	mid := target.Mid()
	if mid <= 0 {
		return 1
	}
	dev := (actual - mid) / mid
	if dev < 0 {
		dev = -dev
	}
	return dev
}

// CalorieScore scores calorie intake against the target band
func CalorieScore(calories float64, target models.Range) float64 {
	return 100 - bandPenalty(rangeDeviation(calories, target))
}

// MacroScore scores the macro balance: each macro against its band at
// weights 40% protein / 35% carbs / 25% fat, plus a +-10 point adjustment
// from how many macros sit inside their ideal calorie-share band.
func MacroScore(facts models.NutritionFacts, target models.NutritionTarget) float64 {
	protein := 100 - bandPenalty(rangeDeviation(facts.Protein, target.Protein))
	carbs := 100 - bandPenalty(rangeDeviation(facts.Carbs, target.Carbs))
	fat := 100 - bandPenalty(rangeDeviation(facts.Fat, target.Fat))

	score := protein*0.40 + carbs*0.35 + fat*0.25
	score += balanceAdjustment(facts)
	return models.Clamp(score, 0, 100)
}

// balanceAdjustment measures deviation from the ideal calorie shares
// (protein 20-30%, carbs 45-65%, fat 20-35%) and maps the in-band count to
// an adjustment between -10 and +10.
func balanceAdjustment(facts models.NutritionFacts) float64 {
	if facts.Calories <= 0 {
		return 0
	}
	proteinShare := facts.Protein * 4 / facts.Calories
	carbShare := facts.Carbs * 4 / facts.Calories
	fatShare := facts.Fat * 9 / facts.Calories

	inBand := 0
	if proteinShare >= 0.20 && proteinShare <= 0.30 {
		inBand++
	}
	if carbShare >= 0.45 && carbShare <= 0.65 {
		inBand++
	}
	if fatShare >= 0.20 && fatShare <= 0.35 {
		inBand++
	}
	return float64(inBand)/3*20 - 10
}

// MicroScore scores fiber, sodium and sugar at weights 40/30/30 against
// calorie-adjusted targets: fiber scales at 14g per 1000kcal and the sugar
// limit is capped at 10% of calories. Feedback lines are emitted for every
// sub-score below 70.
func MicroScore(facts models.NutritionFacts, target models.NutritionTarget) (float64, []string) {
	fiberTarget := target.FiberG
	if facts.Calories > 0 {
		fiberTarget = 14 * facts.Calories / 1000
	}
	sugarLimit := target.SugarG
	if facts.Calories > 0 {
		if capped := 0.10 * facts.Calories / 4; capped < sugarLimit {
			sugarLimit = capped
		}
	}

	fiber := attainmentScore(facts.FiberOrZero(), fiberTarget)
	sodium := limitScore(facts.SodiumOrZero(), target.SodiumMG)
	sugar := limitScore(facts.SugarOrZero(), sugarLimit)

	var feedback []string
	if fiber < 70 {
		feedback = append(feedback, fmt.Sprintf("Fiber intake is low (about %.0fg vs a %.0fg goal). Add whole grains and vegetables.", facts.FiberOrZero(), fiberTarget))
	}
	if sodium < 70 {
		feedback = append(feedback, fmt.Sprintf("Sodium is high (%.0fmg vs a %.0fmg limit). Watch soups, sauces and processed food.", facts.SodiumOrZero(), target.SodiumMG))
	}
	if sugar < 70 {
		feedback = append(feedback, fmt.Sprintf("Sugar is high (%.0fg vs a %.0fg limit). Cut back on sweetened drinks and snacks.", facts.SugarOrZero(), sugarLimit))
	}

	total := sodium*0.30 + fiber*0.40 + sugar*0.30
	return total, feedback
}

// attainmentScore rewards meeting a floor target: full marks at or above
// the target, proportional below it.
func attainmentScore(actual, target float64) float64 {
	if target <= 0 || actual >= target {
		return 100
	}
	return actual / target * 100
}

// limitScore rewards staying under a ceiling: full marks at or below the
// limit, then one point per percent of overshoot.
func limitScore(actual, limit float64) float64 {
	if limit <= 0 || actual <= limit {
		return 100
	}
	over := (actual/limit - 1) * 100
	return models.Clamp(100-over, 0, 100)
}

// NutritionScore is Layer 1: the nutrition-only composite. Starting from
// 100, calorie, macro and micro sub-scores are blended in at progressively
// smaller weights (0.4, 0.4, 0.2).
func NutritionScore(facts models.NutritionFacts, target models.NutritionTarget) models.HealthScore {
	calories := CalorieScore(facts.Calories, target.Calories)
	macros := MacroScore(facts, target)
	micros, feedback := MicroScore(facts, target)

	total := 100.0
	total = Blend(total, calories, 0.4)
	total = Blend(total, macros, 0.4)
	total = Blend(total, micros, 0.2)

	return models.HealthScore{
		Total: models.Clamp(total, 0, 100),
		Breakdown: map[string]float64{
			"calories": calories,
			"macros":   macros,
			"micros":   micros,
		},
		Feedback: feedback,
	}
}

// WithMealTiming is Layer 2: blends the cascaded meal-timing regularity
// score into the Layer-1 total at weight 0.2 and appends pattern feedback.
func WithMealTiming(base models.HealthScore, patterns models.PatternAnalysis) models.HealthScore {
	patternScore := analysis.PatternScore(patterns)
	total := Blend(base.Total, patternScore, 0.2)
	return base.WithLayer(total, "pattern", patternScore, analysis.PatternFeedback(patterns))
}

// WithVariety is Layer 3: blends the food-variety score into the Layer-2
// total at weight 0.15 and appends variety feedback. This is the entry
// point for a full report.
func WithVariety(base models.HealthScore, variety analysis.VarietyAnalysis) models.HealthScore {
	total := Blend(base.Total, variety.Score, 0.15)
	return base.WithLayer(total, "variety", variety.Score, analysis.VarietyFeedback(variety))
}

// FullReport runs all three layers over a day's nutrition and a window's
// pattern and variety analyses.
func FullReport(facts models.NutritionFacts, target models.NutritionTarget, patterns models.PatternAnalysis, variety analysis.VarietyAnalysis) models.HealthScore {
	return WithVariety(WithMealTiming(NutritionScore(facts, target), patterns), variety)
}
