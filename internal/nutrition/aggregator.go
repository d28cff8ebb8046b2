// Package nutrition computes nutrition totals and personalized intake
// targets. Everything here is pure; the only state is the optional
// memoization cache, which is scoped per Calculator.
package nutrition

import (
	"fmt"
	"sync"

	"github.com/mealsota/nutribot/internal/models"
)

// FoodNutrition scales a food's per-100g facts to the given gram amount.
// Zero grams yields all-zero facts; absent optional nutrients stay absent.
func FoodNutrition(food models.NutritionFacts, grams float64) models.NutritionFacts {
	return food.Scale(grams / 100)
}

// MealNutrition sums the nutrition of all items in a meal. Summation is
// commutative, so item order never changes the result.
func MealNutrition(items []models.FoodItem) models.NutritionFacts {
	var total models.NutritionFacts
	for _, item := range items {
		total = total.Add(FoodNutrition(item.PerHundred, item.Grams))
	}
	return total
}

// DailyNutrition sums the nutrition of all meals in a day
func DailyNutrition(meals []models.MealRecord) models.NutritionFacts {
	var total models.NutritionFacts
	for _, meal := range meals {
		total = total.Add(MealNutrition(meal.Items))
	}
	return total
}

// DailyAverages divides summed nutrition over the number of distinct days
// with at least one record. A window with zero days yields an all-zero map
// rather than dividing by zero.
func DailyAverages(meals []models.MealRecord) map[models.Nutrient]float64 {
	averages := map[models.Nutrient]float64{
		models.NutrientCalories: 0,
		models.NutrientProtein:  0,
		models.NutrientCarbs:    0,
		models.NutrientFat:      0,
		models.NutrientFiber:    0,
		models.NutrientSugar:    0,
		models.NutrientSodium:   0,
	}

	days := make(map[string]struct{})
	for _, meal := range meals {
		days[meal.Day()] = struct{}{}
	}
	if len(days) == 0 {
		return averages
	}

	total := DailyNutrition(meals)
	n := float64(len(days))
	averages[models.NutrientCalories] = total.Calories / n
	averages[models.NutrientProtein] = total.Protein / n
	averages[models.NutrientCarbs] = total.Carbs / n
	averages[models.NutrientFat] = total.Fat / n
	averages[models.NutrientFiber] = total.FiberOrZero() / n
	averages[models.NutrientSugar] = total.SugarOrZero() / n
	averages[models.NutrientSodium] = total.SodiumOrZero() / n
	return averages
}

// Calculator is a memoizing variant of the aggregation functions. It caches
// per-(food, grams) results so repeated portions across a long window are
// computed once. The cache is unbounded; scope one Calculator per analysis
// session. Safe for concurrent use.
type Calculator struct {
	mu    sync.RWMutex
	cache map[string]models.NutritionFacts
}

// NewCalculator creates an empty memoizing calculator
func NewCalculator() *Calculator {
	return &Calculator{cache: make(map[string]models.NutritionFacts)}
}

// FoodNutrition is the cached equivalent of the package-level function and
// returns bit-identical results to it.
func (c *Calculator) FoodNutrition(foodID string, food models.NutritionFacts, grams float64) models.NutritionFacts {
	key := fmt.Sprintf("%s|%g", foodID, grams)

	c.mu.RLock()
	cached, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	result := FoodNutrition(food, grams)
	c.mu.Lock()
	c.cache[key] = result
	c.mu.Unlock()
	return result
}

// MealNutrition sums a meal's items through the cache
func (c *Calculator) MealNutrition(items []models.FoodItem) models.NutritionFacts {
	var total models.NutritionFacts
	for _, item := range items {
		total = total.Add(c.FoodNutrition(item.FoodID, item.PerHundred, item.Grams))
	}
	return total
}

// DailyNutrition sums a day's meals through the cache
func (c *Calculator) DailyNutrition(meals []models.MealRecord) models.NutritionFacts {
	var total models.NutritionFacts
	for _, meal := range meals {
		total = total.Add(c.MealNutrition(meal.Items))
	}
	return total
}

// Invalidate drops all cached entries
func (c *Calculator) Invalidate() {
	c.mu.Lock()
	c.cache = make(map[string]models.NutritionFacts)
	c.mu.Unlock()
}
