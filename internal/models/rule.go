package models

import "time"

// Comparison is one of the six comparison operators a simple rule
// condition may use.
type Comparison string

const (
	CompareGT  Comparison = "gt"
	CompareLT  Comparison = "lt"
	CompareGTE Comparison = "gte"
	CompareLTE Comparison = "lte"
	CompareEQ  Comparison = "eq"
	CompareNEQ Comparison = "neq"
)

// Evaluate applies the operator to (value, threshold)
func (c Comparison) Evaluate(value, threshold float64) bool {
	switch c {
	case CompareGT:
		return value > threshold
	case CompareLT:
		return value < threshold
	case CompareGTE:
		return value >= threshold
	case CompareLTE:
		return value <= threshold
	case CompareEQ:
		return value == threshold
	case CompareNEQ:
		return value != threshold
	}
	return false
}

// Valid reports whether the operator is one of the six known ones
func (c Comparison) Valid() bool {
	switch c {
	case CompareGT, CompareLT, CompareGTE, CompareLTE, CompareEQ, CompareNEQ:
		return true
	}
	return false
}

// LogicalOperator combines sub-conditions in a composite condition
type LogicalOperator string

const (
	OperatorAnd LogicalOperator = "and"
	OperatorOr  LogicalOperator = "or"
)

// RuleCondition is the closed set of condition variants the evaluator
// dispatches on. The unexported marker keeps the set closed to this package.
type RuleCondition interface {
	conditionVariant()
}

// NutrientGapCondition matches when the named nutrient's gap percentage
// compares true against the threshold. False when no such gap exists.
type NutrientGapCondition struct {
	Nutrient   Nutrient   `bson:"nutrient" json:"nutrient"`
	Threshold  float64    `bson:"threshold" json:"threshold"`
	Comparison Comparison `bson:"comparison" json:"comparison"`
}

// MealPatternCondition matches against a named pattern metric, e.g. the
// late-night-meal frequency or a meal-type regularity score.
type MealPatternCondition struct {
	Pattern    string     `bson:"pattern" json:"pattern"`
	Frequency  float64    `bson:"frequency" json:"frequency"`
	Comparison Comparison `bson:"comparison" json:"comparison"`
}

// HealthScoreCondition matches against the composite health score total
type HealthScoreCondition struct {
	Score      float64    `bson:"score" json:"score"`
	Comparison Comparison `bson:"comparison" json:"comparison"`
}

// GoalProgressCondition matches against the progress of an active goal of
// the named type. False when no such goal is active.
type GoalProgressCondition struct {
	GoalType   GoalType   `bson:"goal_type" json:"goal_type"`
	Progress   float64    `bson:"progress" json:"progress"`
	Comparison Comparison `bson:"comparison" json:"comparison"`
}

// CompositeCondition nests sub-conditions under AND/OR. An empty AND is
// vacuously true, an empty OR vacuously false.
type CompositeCondition struct {
	Operator   LogicalOperator `bson:"operator" json:"operator"`
	Conditions []RuleCondition `bson:"conditions" json:"conditions"`
}

func (NutrientGapCondition) conditionVariant()  {}
func (MealPatternCondition) conditionVariant()  {}
func (HealthScoreCondition) conditionVariant()  {}
func (GoalProgressCondition) conditionVariant() {}
func (CompositeCondition) conditionVariant()    {}

// RuleAction is the closed set of action variants a matched rule selects.
// The core only selects actions; executing them is the caller's concern.
type RuleAction interface {
	actionVariant()
}

// SuggestFoodsAction proposes concrete foods rich in a nutrient
type SuggestFoodsAction struct {
	Nutrient Nutrient `bson:"nutrient" json:"nutrient"`
	Foods    []string `bson:"foods" json:"foods"`
}

// SuggestHabitAction proposes a behavioral change
type SuggestHabitAction struct {
	Habit string `bson:"habit" json:"habit"`
}

// ShowEducationalTipAction surfaces an educational snippet
type ShowEducationalTipAction struct {
	Topic string `bson:"topic" json:"topic"`
	Tip   string `bson:"tip" json:"tip"`
}

// CreateMealPlanAction asks the meal planner to build a plan
type CreateMealPlanAction struct {
	PlanType     string `bson:"plan_type" json:"plan_type"`
	DurationDays int    `bson:"duration_days" json:"duration_days"`
}

// UpdateGoalAction asks the goal tracker to adjust a goal
type UpdateGoalAction struct {
	GoalType   GoalType `bson:"goal_type" json:"goal_type"`
	Adjustment string   `bson:"adjustment" json:"adjustment"`
}

func (SuggestFoodsAction) actionVariant()       {}
func (SuggestHabitAction) actionVariant()       {}
func (ShowEducationalTipAction) actionVariant() {}
func (CreateMealPlanAction) actionVariant()     {}
func (UpdateGoalAction) actionVariant()         {}

// RecommendationRule pairs a condition with the action to take when it
// matches. Rules are built once and read-only during evaluation.
type RecommendationRule struct {
	ID         string        `bson:"_id,omitempty" json:"id,omitempty"`
	Name       string        `bson:"name" json:"name"`
	Type       string        `bson:"type" json:"type"`
	Condition  RuleCondition `bson:"-" json:"-"`
	Action     RuleAction    `bson:"-" json:"-"`
	Priority   Priority      `bson:"priority" json:"priority"`
	Message    string        `bson:"message" json:"message"`
	Cooldown   time.Duration `bson:"cooldown" json:"cooldown"`
	Expiration *time.Time    `bson:"expiration,omitempty" json:"expiration,omitempty"`
	IsActive   bool          `bson:"is_active" json:"is_active"`
}

// Expired reports whether the rule has passed its expiration instant
func (r *RecommendationRule) Expired(now time.Time) bool {
	return r.Expiration != nil && now.After(*r.Expiration)
}
