package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mealsota/nutribot/internal/models"
)

// MealRepository handles persistence for meal records. It implements the
// engine's MealProvider and RecordCountProvider contracts.
type MealRepository struct {
	db  *MongoDB
	log *zap.Logger
}

// NewMealRepository creates a new meal repository
func NewMealRepository(db *MongoDB, log *zap.Logger) *MealRepository {
	return &MealRepository{
		db:  db,
		log: log.Named("meal-repository"),
	}
}

// SaveMeal stores a meal record
func (r *MealRepository) SaveMeal(ctx context.Context, meal *models.MealRecord) error {
	collection := r.db.Collection("meals")

	result, err := collection.InsertOne(ctx, meal)
	if err != nil {
		return fmt.Errorf("failed to save meal: %w", err)
	}

	r.log.Debug("Saved meal record",
		zap.String("user_id", meal.UserID),
		zap.String("meal_type", string(meal.MealType)),
		zap.Any("id", result.InsertedID))
	return nil
}

// FetchMealRecords returns a user's meal records in [from, to), newest last
func (r *MealRepository) FetchMealRecords(ctx context.Context, userID string, from, to time.Time) ([]models.MealRecord, error) {
	collection := r.db.Collection("meals")

	filter := bson.M{
		"user_id": userID,
		"eaten_at": bson.M{
			"$gte": from,
			"$lt":  to,
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "eaten_at", Value: 1}})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find meals: %w", err)
	}
	defer cursor.Close(ctx)

	var meals []models.MealRecord
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, fmt.Errorf("failed to decode meals: %w", err)
	}
	return meals, nil
}

// FetchRecentRecordCount returns the user's total meal record count
func (r *MealRepository) FetchRecentRecordCount(ctx context.Context, userID string) (int, error) {
	collection := r.db.Collection("meals")

	count, err := collection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to count meals: %w", err)
	}
	return int(count), nil
}
