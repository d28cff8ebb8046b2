package models

import "strings"

// Nutrient is a canonical nutrient identifier. All external inputs (rule
// documents, food data, localized labels) are normalized to one of these
// at the boundary so the engine never dispatches on raw strings.
type Nutrient string

const (
	NutrientCalories Nutrient = "calories"
	NutrientProtein  Nutrient = "protein"
	NutrientCarbs    Nutrient = "carbs"
	NutrientFat      Nutrient = "fat"
	NutrientFiber    Nutrient = "fiber"
	NutrientSugar    Nutrient = "sugar"
	NutrientSodium   Nutrient = "sodium"
	NutrientIron     Nutrient = "iron"
	NutrientCalcium  Nutrient = "calcium"
	NutrientVitaminC Nutrient = "vitamin_c"
)

// nutrientAliases maps localized or legacy nutrient labels to canonical ids.
var nutrientAliases = map[string]Nutrient{
	"단백질":       NutrientProtein,
	"蛋白质":       NutrientProtein,
	"탄수화물":      NutrientCarbs,
	"지방":        NutrientFat,
	"식이섬유":      NutrientFiber,
	"나트륨":       NutrientSodium,
	"당류":        NutrientSugar,
	"vitaminc":  NutrientVitaminC,
	"vitamin c": NutrientVitaminC,
}

// NormalizeNutrient resolves a raw nutrient label to its canonical id.
// Unknown labels pass through lowercased so unknown-nutrient handling
// stays in one place downstream.
func NormalizeNutrient(raw string) Nutrient {
	key := toLowerTrim(raw)
	if n, ok := nutrientAliases[key]; ok {
		return n
	}
	return Nutrient(key)
}

// NutritionFacts holds nutrition values for a food, a meal or a day.
// Calories and the macros are always present; fiber, sugar and sodium are
// optional and stay nil until a data source provides them.
type NutritionFacts struct {
	Calories float64  `bson:"calories" json:"calories"`
	Protein  float64  `bson:"protein" json:"protein"`
	Carbs    float64  `bson:"carbs" json:"carbs"`
	Fat      float64  `bson:"fat" json:"fat"`
	Fiber    *float64 `bson:"fiber,omitempty" json:"fiber,omitempty"`
	Sugar    *float64 `bson:"sugar,omitempty" json:"sugar,omitempty"`
	Sodium   *float64 `bson:"sodium,omitempty" json:"sodium,omitempty"`
}

// Add returns the field-wise sum of two facts. An optional field is present
// in the result when it is present in either operand; the absent side
// contributes zero.
func (n NutritionFacts) Add(other NutritionFacts) NutritionFacts {
	sum := NutritionFacts{
		Calories: n.Calories + other.Calories,
		Protein:  n.Protein + other.Protein,
		Carbs:    n.Carbs + other.Carbs,
		Fat:      n.Fat + other.Fat,
	}
	sum.Fiber = addOptional(n.Fiber, other.Fiber)
	sum.Sugar = addOptional(n.Sugar, other.Sugar)
	sum.Sodium = addOptional(n.Sodium, other.Sodium)
	return sum
}

// Scale returns the facts multiplied by factor. Absent optional fields stay
// absent so a missing value is never mistaken for a measured zero.
func (n NutritionFacts) Scale(factor float64) NutritionFacts {
	scaled := NutritionFacts{
		Calories: n.Calories * factor,
		Protein:  n.Protein * factor,
		Carbs:    n.Carbs * factor,
		Fat:      n.Fat * factor,
	}
	scaled.Fiber = scaleOptional(n.Fiber, factor)
	scaled.Sugar = scaleOptional(n.Sugar, factor)
	scaled.Sodium = scaleOptional(n.Sodium, factor)
	return scaled
}

// FiberOrZero returns the fiber value, treating absent as zero.
func (n NutritionFacts) FiberOrZero() float64 { return optionalOrZero(n.Fiber) }

// SugarOrZero returns the sugar value, treating absent as zero.
func (n NutritionFacts) SugarOrZero() float64 { return optionalOrZero(n.Sugar) }

// SodiumOrZero returns the sodium value, treating absent as zero.
func (n NutritionFacts) SodiumOrZero() float64 { return optionalOrZero(n.Sodium) }

// Value returns the named nutrient's value, treating absent optionals as zero.
func (n NutritionFacts) Value(nutrient Nutrient) float64 {
	switch nutrient {
	case NutrientCalories:
		return n.Calories
	case NutrientProtein:
		return n.Protein
	case NutrientCarbs:
		return n.Carbs
	case NutrientFat:
		return n.Fat
	case NutrientFiber:
		return n.FiberOrZero()
	case NutrientSugar:
		return n.SugarOrZero()
	case NutrientSodium:
		return n.SodiumOrZero()
	}
	return 0
}

// Float64Ptr returns a pointer to v, for building optional nutrient fields.
func Float64Ptr(v float64) *float64 { return &v }

func toLowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func addOptional(a, b *float64) *float64 {
	if a == nil && b == nil {
		return nil
	}
	sum := optionalOrZero(a) + optionalOrZero(b)
	return &sum
}

func scaleOptional(v *float64, factor float64) *float64 {
	if v == nil {
		return nil
	}
	scaled := *v * factor
	return &scaled
}

func optionalOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
