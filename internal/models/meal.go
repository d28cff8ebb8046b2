package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealType identifies which meal of the day a record belongs to
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// FoodCategory is one of the coverage categories used by the variety analyzer
type FoodCategory string

const (
	CategoryGrains     FoodCategory = "grains"
	CategoryVegetables FoodCategory = "vegetables"
	CategoryFruits     FoodCategory = "fruits"
	CategoryProtein    FoodCategory = "protein"
	CategoryDairy      FoodCategory = "dairy"
	CategoryOther      FoodCategory = "other"
)

// CoreCategories are the categories that contribute to the variety score
var CoreCategories = []FoodCategory{
	CategoryGrains,
	CategoryVegetables,
	CategoryFruits,
	CategoryProtein,
	CategoryDairy,
}

// Food is a catalogue entry with nutrition facts per 100g
type Food struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Category   FoodCategory       `bson:"category" json:"category"`
	PerHundred NutritionFacts     `bson:"per_hundred" json:"per_hundred"`
	Source     string             `bson:"source" json:"source"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	IsActive   bool               `bson:"is_active" json:"is_active"`
}

// NewFood creates a catalogue entry
func NewFood(name string, category FoodCategory, perHundred NutritionFacts, source string) *Food {
	return &Food{
		Name:       name,
		Category:   category,
		PerHundred: perHundred,
		Source:     source,
		CreatedAt:  time.Now(),
		IsActive:   true,
	}
}

// FoodItem is one portion of food inside a meal record. The per-100g facts
// are snapshotted at logging time so the analytical core never reaches back
// into the catalogue.
type FoodItem struct {
	FoodID     string         `bson:"food_id" json:"food_id"`
	Name       string         `bson:"name" json:"name"`
	Category   FoodCategory   `bson:"category" json:"category"`
	Grams      float64        `bson:"grams" json:"grams"`
	PerHundred NutritionFacts `bson:"per_hundred" json:"per_hundred"`
}

// MealRecord is one logged meal
type MealRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID   string             `bson:"user_id" json:"user_id"`
	MealType MealType           `bson:"meal_type" json:"meal_type"`
	EatenAt  time.Time          `bson:"eaten_at" json:"eaten_at"`
	Items    []FoodItem         `bson:"items" json:"items"`
}

// NewMealRecord creates a meal record eaten now
func NewMealRecord(userID string, mealType MealType, items []FoodItem) *MealRecord {
	return &MealRecord{
		UserID:   userID,
		MealType: mealType,
		EatenAt:  time.Now(),
		Items:    items,
	}
}

// Day returns the record's calendar day in its own location
func (m *MealRecord) Day() string {
	return m.EatenAt.Format("2006-01-02")
}
