package models

// Gender of a user profile
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel describes habitual physical activity
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// GoalType classifies a user goal
type GoalType string

const (
	GoalWeightLoss        GoalType = "weight_loss"
	GoalWeightGain        GoalType = "weight_gain"
	GoalMuscleGain        GoalType = "muscle_gain"
	GoalBodyFatReduction  GoalType = "body_fat_reduction"
	GoalHealthImprovement GoalType = "health_improvement"
	GoalNutrientBalance   GoalType = "nutrient_balance"
)

// GoalStatus is the lifecycle state of a goal
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusAbandoned GoalStatus = "abandoned"
)

// UserProfile is the read-only physical profile used to derive targets
type UserProfile struct {
	UserID        string        `bson:"user_id" json:"user_id"`
	Gender        Gender        `bson:"gender" json:"gender"`
	Age           int           `bson:"age" json:"age"`
	WeightKG      float64       `bson:"weight_kg" json:"weight_kg"`
	HeightCM      float64       `bson:"height_cm" json:"height_cm"`
	ActivityLevel ActivityLevel `bson:"activity_level" json:"activity_level"`
	Goal          GoalType      `bson:"goal" json:"goal"`
}

// DefaultProfile is the fallback used when no profile exists for a user.
// Targets derived from it are generic but safe.
func DefaultProfile(userID string) UserProfile {
	return UserProfile{
		UserID:        userID,
		Gender:        GenderFemale,
		Age:           30,
		WeightKG:      62,
		HeightCM:      165,
		ActivityLevel: ActivityModerate,
		Goal:          GoalHealthImprovement,
	}
}

// Goal is a user goal tracked by the product
type Goal struct {
	ID       string     `bson:"_id,omitempty" json:"id,omitempty"`
	UserID   string     `bson:"user_id" json:"user_id"`
	Type     GoalType   `bson:"type" json:"type"`
	Status   GoalStatus `bson:"status" json:"status"`
	Progress float64    `bson:"progress" json:"progress"` // 0-1
}

// IsActive reports whether the goal is still being pursued
func (g Goal) IsActive() bool {
	return g.Status == GoalStatusActive
}
