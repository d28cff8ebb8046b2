package models

import "time"

// Location is a normalized eating-location string
type Location string

const (
	LocationCafeteria   Location = "cafeteria"
	LocationDelivery    Location = "delivery"
	LocationRestaurant  Location = "restaurant"
	LocationHomeCooking Location = "home_cooking"
	LocationFastFood    Location = "fast_food"
	LocationOther       Location = "other"
)

// locationAliases maps free-form location labels to normalized values
var locationAliases = map[string]Location{
	"cafeteria":  LocationCafeteria,
	"canteen":    LocationCafeteria,
	"구내식당":       LocationCafeteria,
	"delivery":   LocationDelivery,
	"배달":         LocationDelivery,
	"restaurant": LocationRestaurant,
	"외식":         LocationRestaurant,
	"home":       LocationHomeCooking,
	"home_cooking": LocationHomeCooking,
	"집밥":         LocationHomeCooking,
	"fast_food":  LocationFastFood,
	"fastfood":   LocationFastFood,
}

// NormalizeLocation resolves a raw location label, unknown labels become Other
func NormalizeLocation(raw string) Location {
	if loc, ok := locationAliases[toLowerTrim(raw)]; ok {
		return loc
	}
	return LocationOther
}

// BudgetRange buckets a user's meal budget
type BudgetRange string

const (
	BudgetLow    BudgetRange = "low"
	BudgetMedium BudgetRange = "medium"
	BudgetHigh   BudgetRange = "high"
)

// PatternAnalysis is the output of the meal-timing and variety analyzers
// consumed by the recommendation layer.
type PatternAnalysis struct {
	RegularityScore    float64              `json:"regularity_score"`
	MealRegularity     map[MealType]float64 `json:"meal_regularity"`
	LateNightFrequency float64              `json:"late_night_frequency"`
	FoodVarietyCount   int                  `json:"food_variety_count"`
	TimeDistribution   map[MealType]int     `json:"time_distribution"`
	UnhealthyPatterns  []string             `json:"unhealthy_patterns"`
}

// RecommendationContext is the read-only snapshot every generator and the
// rule evaluator consume. Assembled once per invocation; generators never
// reach into storage directly.
type RecommendationContext struct {
	UserID              string
	Now                 time.Time
	Hour                int
	Gaps                []NutritionalGap
	Patterns            PatternAnalysis
	HealthScore         *HealthScore
	RecentMeals         []MealRecord
	ActiveGoals         []Goal
	Location            Location
	MealType            MealType
	Budget              BudgetRange
	DietaryRestrictions []string
	IsFirstTimeUser     bool
	CaloriesToday       float64
	Target              NutritionTarget
}

// ActiveGoalOfType returns the first active goal of the given type
func (c *RecommendationContext) ActiveGoalOfType(t GoalType) (Goal, bool) {
	for _, g := range c.ActiveGoals {
		if g.Type == t && g.IsActive() {
			return g, true
		}
	}
	return Goal{}, false
}

// HasMealToday reports whether a meal of the given type was recorded on the
// snapshot's calendar day.
func (c *RecommendationContext) HasMealToday(t MealType) bool {
	day := c.Now.Format("2006-01-02")
	for _, m := range c.RecentMeals {
		if m.MealType == t && m.Day() == day {
			return true
		}
	}
	return false
}
