package models

// Range is an acceptable band for a nutrient target, Min <= Max
type Range struct {
	Min float64 `bson:"min" json:"min"`
	Max float64 `bson:"max" json:"max"`
}

// NewRange builds a band around a point estimate using a fractional spread,
// flooring both bounds at zero so degenerate inputs stay non-crashing.
func NewRange(point, spread float64) Range {
	min := point * (1 - spread)
	max := point * (1 + spread)
	if min < 0 {
		min = 0
	}
	if max < 0 {
		max = 0
	}
	if min > max {
		min, max = max, min
	}
	return Range{Min: min, Max: max}
}

// Contains reports whether v falls inside the band
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Mid returns the band midpoint
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// NutritionTarget is the personalized daily intake target derived from a
// user profile. Immutable after calculation.
type NutritionTarget struct {
	Calories Range   `bson:"calories" json:"calories"`
	Protein  Range   `bson:"protein" json:"protein"`
	Carbs    Range   `bson:"carbs" json:"carbs"`
	Fat      Range   `bson:"fat" json:"fat"`
	FiberG   float64 `bson:"fiber_g" json:"fiber_g"`
	SodiumMG float64 `bson:"sodium_mg" json:"sodium_mg"`
	SugarG   float64 `bson:"sugar_g" json:"sugar_g"`
}

// Recommended returns the reference daily amount for the named nutrient,
// using band midpoints for ranged targets.
func (t NutritionTarget) Recommended(nutrient Nutrient) float64 {
	switch nutrient {
	case NutrientCalories:
		return t.Calories.Mid()
	case NutrientProtein:
		return t.Protein.Mid()
	case NutrientCarbs:
		return t.Carbs.Mid()
	case NutrientFat:
		return t.Fat.Mid()
	case NutrientFiber:
		return t.FiberG
	case NutrientSodium:
		return t.SodiumMG
	case NutrientSugar:
		return t.SugarG
	}
	return 0
}
