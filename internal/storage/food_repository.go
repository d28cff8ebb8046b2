package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mealsota/nutribot/internal/models"
)

// FoodRepository handles persistence for the food catalogue
type FoodRepository struct {
	db  *MongoDB
	log *zap.Logger
}

// NewFoodRepository creates a new food repository
func NewFoodRepository(db *MongoDB, log *zap.Logger) *FoodRepository {
	return &FoodRepository{
		db:  db,
		log: log.Named("food-repository"),
	}
}

// SaveFood stores a catalogue entry, rejecting duplicate names
func (r *FoodRepository) SaveFood(ctx context.Context, food *models.Food) error {
	collection := r.db.Collection("foods")

	count, err := collection.CountDocuments(ctx, bson.M{"name": food.Name, "is_active": true})
	if err != nil {
		return fmt.Errorf("failed to check for existing food: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("food %q already exists", food.Name)
	}

	if _, err := collection.InsertOne(ctx, food); err != nil {
		return fmt.Errorf("failed to save food: %w", err)
	}

	r.log.Debug("Saved food", zap.String("name", food.Name), zap.String("category", string(food.Category)))
	return nil
}

// UpsertFood inserts or refreshes a catalogue entry by name. Used by the
// crawler so repeated runs keep facts current without duplicating entries.
func (r *FoodRepository) UpsertFood(ctx context.Context, food *models.Food) error {
	collection := r.db.Collection("foods")

	filter := bson.M{"name": food.Name}
	update := bson.M{"$set": bson.M{
		"category":    food.Category,
		"per_hundred": food.PerHundred,
		"source":      food.Source,
		"is_active":   true,
	}, "$setOnInsert": bson.M{
		"created_at": food.CreatedAt,
	}}
	opts := options.Update().SetUpsert(true)

	if _, err := collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert food: %w", err)
	}
	return nil
}

// FindFood looks a food up by name, case-insensitively
func (r *FoodRepository) FindFood(ctx context.Context, name string) (*models.Food, error) {
	collection := r.db.Collection("foods")

	filter := bson.M{
		"name":      bson.M{"$regex": "^" + strings.TrimSpace(name) + "$", "$options": "i"},
		"is_active": true,
	}

	var food models.Food
	err := collection.FindOne(ctx, filter).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("food %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find food: %w", err)
	}
	return &food, nil
}

// ListFoods returns active catalogue entries for a category
func (r *FoodRepository) ListFoods(ctx context.Context, category models.FoodCategory) ([]models.Food, error) {
	collection := r.db.Collection("foods")

	filter := bson.M{"category": category, "is_active": true}
	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	defer cursor.Close(ctx)

	var foods []models.Food
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("failed to decode foods: %w", err)
	}
	return foods, nil
}
