package engine

import (
	"context"
	"time"

	"github.com/mealsota/nutribot/internal/models"
)

// MealProvider supplies meal records for a user and date range
type MealProvider interface {
	FetchMealRecords(ctx context.Context, userID string, from, to time.Time) ([]models.MealRecord, error)
}

// ProfileProvider supplies the user's physical profile. A nil profile with
// a nil error means no profile exists; the engine falls back to a default.
type ProfileProvider interface {
	FetchUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
}

// GoalProvider supplies the user's active goals
type GoalProvider interface {
	FetchActiveGoals(ctx context.Context, userID string) ([]models.Goal, error)
}

// RecordCountProvider supplies the user's total record count, used for
// first-time-user detection.
type RecordCountProvider interface {
	FetchRecentRecordCount(ctx context.Context, userID string) (int, error)
}

// SessionInfo carries the per-session context a provider knows about the
// user's current situation.
type SessionInfo struct {
	Location            string
	MealType            models.MealType
	Budget              models.BudgetRange
	DietaryRestrictions []string
}

// Providers bundles the external collaborators the engine reads from
type Providers struct {
	Meals    MealProvider
	Profiles ProfileProvider
	Goals    GoalProvider
	Counts   RecordCountProvider
}
