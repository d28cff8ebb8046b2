package rules

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mealsota/nutribot/internal/models"
)

// ruleSetDocument is the top-level shape of an external rule document
type ruleSetDocument struct {
	Rules []ruleDocument `json:"rules"`
}

// ruleDocument is the wire shape of one rule
type ruleDocument struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Type            string            `json:"type"`
	Priority        string            `json:"priority"`
	Message         string            `json:"message"`
	CooldownMinutes int               `json:"cooldown_minutes"`
	Expiration      *time.Time        `json:"expiration,omitempty"`
	Condition       json.RawMessage   `json:"condition"`
	Action          json.RawMessage   `json:"action"`
}

// typeEnvelope extracts the type discriminator of a condition or action
type typeEnvelope struct {
	Type string `json:"type"`
}

// ParseRuleSet decodes a JSON rule document into recommendation rules.
// Rules with an unknown condition or action type are skipped with a log
// line; a malformed individual rule never aborts the rest of the set.
func ParseRuleSet(data []byte, log *zap.Logger) ([]*models.RecommendationRule, error) {
	log = log.Named("rule-parser")

	var doc ruleSetDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode rule set: %w", err)
	}

	var rules []*models.RecommendationRule
	for i, raw := range doc.Rules {
		rule, err := parseRule(raw)
		if err != nil {
			log.Warn("skipping unparseable rule",
				zap.Int("index", i),
				zap.String("name", raw.Name),
				zap.Error(err))
			continue
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func parseRule(doc ruleDocument) (*models.RecommendationRule, error) {
	condition, err := parseCondition(doc.Condition)
	if err != nil {
		return nil, fmt.Errorf("condition: %w", err)
	}
	action, err := parseAction(doc.Action)
	if err != nil {
		return nil, fmt.Errorf("action: %w", err)
	}

	priority := models.Priority(doc.Priority)
	if priority.Rank() == 0 {
		priority = models.PriorityMedium
	}

	return &models.RecommendationRule{
		ID:         doc.ID,
		Name:       doc.Name,
		Type:       doc.Type,
		Condition:  condition,
		Action:     action,
		Priority:   priority,
		Message:    doc.Message,
		Cooldown:   time.Duration(doc.CooldownMinutes) * time.Minute,
		Expiration: doc.Expiration,
		IsActive:   true,
	}, nil
}

func parseCondition(raw json.RawMessage) (models.RuleCondition, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("missing condition")
	}
	var envelope typeEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}

	switch envelope.Type {
	case "nutrient_gap":
		var c struct {
			Nutrient   string  `json:"nutrient"`
			Threshold  float64 `json:"threshold"`
			Comparison string  `json:"comparison"`
		}
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return models.NutrientGapCondition{
			Nutrient:   models.NormalizeNutrient(c.Nutrient),
			Threshold:  c.Threshold,
			Comparison: models.Comparison(c.Comparison),
		}, nil

	case "meal_pattern":
		var c struct {
			Pattern    string  `json:"pattern"`
			Frequency  float64 `json:"frequency"`
			Comparison string  `json:"comparison"`
		}
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return models.MealPatternCondition{
			Pattern:    c.Pattern,
			Frequency:  c.Frequency,
			Comparison: models.Comparison(c.Comparison),
		}, nil

	case "health_score":
		var c struct {
			Score      float64 `json:"score"`
			Comparison string  `json:"comparison"`
		}
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return models.HealthScoreCondition{
			Score:      c.Score,
			Comparison: models.Comparison(c.Comparison),
		}, nil

	case "goal_progress":
		var c struct {
			GoalType   string  `json:"goal_type"`
			Progress   float64 `json:"progress"`
			Comparison string  `json:"comparison"`
		}
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return models.GoalProgressCondition{
			GoalType:   models.GoalType(c.GoalType),
			Progress:   c.Progress,
			Comparison: models.Comparison(c.Comparison),
		}, nil

	case "composite":
		var c struct {
			Operator   string            `json:"operator"`
			Conditions []json.RawMessage `json:"conditions"`
		}
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		composite := models.CompositeCondition{Operator: models.LogicalOperator(c.Operator)}
		for _, sub := range c.Conditions {
			parsed, err := parseCondition(sub)
			if err != nil {
				return nil, err
			}
			composite.Conditions = append(composite.Conditions, parsed)
		}
		return composite, nil

	default:
		return nil, fmt.Errorf("unknown condition type %q", envelope.Type)
	}
}

func parseAction(raw json.RawMessage) (models.RuleAction, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("missing action")
	}
	var envelope typeEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}

	switch envelope.Type {
	case "suggest_foods":
		var a struct {
			Nutrient string   `json:"nutrient"`
			Foods    []string `json:"foods"`
		}
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
		return models.SuggestFoodsAction{
			Nutrient: models.NormalizeNutrient(a.Nutrient),
			Foods:    a.Foods,
		}, nil

	case "suggest_habit":
		var a struct {
			Habit string `json:"habit"`
		}
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
		return models.SuggestHabitAction{Habit: a.Habit}, nil

	case "show_educational_tip":
		var a struct {
			Topic string `json:"topic"`
			Tip   string `json:"tip"`
		}
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
		return models.ShowEducationalTipAction{Topic: a.Topic, Tip: a.Tip}, nil

	case "create_meal_plan":
		var a struct {
			PlanType     string `json:"plan_type"`
			DurationDays int    `json:"duration_days"`
		}
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
		return models.CreateMealPlanAction{PlanType: a.PlanType, DurationDays: a.DurationDays}, nil

	case "update_goal":
		var a struct {
			GoalType   string `json:"goal_type"`
			Adjustment string `json:"adjustment"`
		}
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
		return models.UpdateGoalAction{
			GoalType:   models.GoalType(a.GoalType),
			Adjustment: a.Adjustment,
		}, nil

	default:
		return nil, fmt.Errorf("unknown action type %q", envelope.Type)
	}
}
