package models

// RecommendationType classifies a recommendation
type RecommendationType string

const (
	RecTypeNutritionGap     RecommendationType = "nutrition_gap"
	RecTypeMealPlan         RecommendationType = "meal_plan"
	RecTypeFoodSuggestion   RecommendationType = "food_suggestion"
	RecTypeHabitImprovement RecommendationType = "habit_improvement"
	RecTypeEducational      RecommendationType = "educational"
)

// Priority is the primary recommendation sort key
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var priorityRank = map[Priority]int{
	PriorityLow:    1,
	PriorityMedium: 2,
	PriorityHigh:   3,
}

// Rank returns the sort rank of the priority, higher first
func (p Priority) Rank() int {
	return priorityRank[p]
}

// SeverityConfidence maps a gap severity to the confidence assigned to
// recommendations built from it.
func SeverityConfidence(s GapSeverity) float64 {
	switch s {
	case SeveritySevere:
		return 0.9
	case SeverityModerate:
		return 0.7
	default:
		return 0.4
	}
}

// SeverityPriority maps a gap severity to a recommendation priority
func SeverityPriority(s GapSeverity) Priority {
	switch s {
	case SeveritySevere:
		return PriorityHigh
	case SeverityModerate:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Recommendation is one ranked, explainable suggestion returned to the
// caller. Immutable once built.
type Recommendation struct {
	ID          string             `bson:"_id,omitempty" json:"id,omitempty"`
	Type        RecommendationType `bson:"type" json:"type"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Priority    Priority           `bson:"priority" json:"priority"`
	Confidence  float64            `bson:"confidence" json:"confidence"`
	Reason      string             `bson:"reason" json:"reason"`
	Actions     []RuleAction       `bson:"-" json:"-"`
	Metadata    map[string]string  `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// DedupKey identifies semantically equal recommendations
func (r Recommendation) DedupKey() string {
	return string(r.Type) + "|" + r.Title + "|" + r.Reason
}
