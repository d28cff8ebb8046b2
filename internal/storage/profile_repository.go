package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mealsota/nutribot/internal/models"
)

// ProfileRepository handles persistence for user profiles and goals. It
// implements the engine's ProfileProvider and GoalProvider contracts.
type ProfileRepository struct {
	db  *MongoDB
	log *zap.Logger
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *MongoDB, log *zap.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:  db,
		log: log.Named("profile-repository"),
	}
}

// SaveProfile upserts a user's profile
func (r *ProfileRepository) SaveProfile(ctx context.Context, profile *models.UserProfile) error {
	collection := r.db.Collection("profiles")

	filter := bson.M{"user_id": profile.UserID}
	update := bson.M{"$set": profile}
	opts := options.Update().SetUpsert(true)

	if _, err := collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// FetchUserProfile returns the user's profile, or nil when none exists.
// Absence is a valid state, not an error.
func (r *ProfileRepository) FetchUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	collection := r.db.Collection("profiles")

	var profile models.UserProfile
	err := collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return &profile, nil
}

// SaveGoal stores a new goal
func (r *ProfileRepository) SaveGoal(ctx context.Context, goal *models.Goal) error {
	collection := r.db.Collection("goals")

	if _, err := collection.InsertOne(ctx, goal); err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	return nil
}

// FetchActiveGoals returns the user's active goals
func (r *ProfileRepository) FetchActiveGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	collection := r.db.Collection("goals")

	filter := bson.M{
		"user_id": userID,
		"status":  models.GoalStatusActive,
	}
	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find goals: %w", err)
	}
	defer cursor.Close(ctx)

	var goals []models.Goal
	if err := cursor.All(ctx, &goals); err != nil {
		return nil, fmt.Errorf("failed to decode goals: %w", err)
	}
	return goals, nil
}
