// Package rules implements the declarative rule model: condition
// evaluation against a context snapshot, confidence scoring, and loading
// rule sets from JSON documents.
package rules

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mealsota/nutribot/internal/models"
)

// Evaluator matches recommendation rules against a context snapshot.
// A condition-evaluation failure never reaches the caller: the rule is
// treated as non-matching and the failure is logged.
type Evaluator struct {
	log *zap.Logger
	now func() time.Time
}

// NewEvaluator creates an evaluator
func NewEvaluator(log *zap.Logger) *Evaluator {
	return &Evaluator{
		log: log.Named("rule-evaluator"),
		now: time.Now,
	}
}

// Matches reports whether the rule applies to the context: the rule must be
// active, unexpired, and its condition must evaluate true.
func (e *Evaluator) Matches(rule *models.RecommendationRule, ctx *models.RecommendationContext) bool {
	if !rule.IsActive || rule.Expired(e.now()) {
		return false
	}
	matched, err := e.evalCondition(rule.Condition, ctx)
	if err != nil {
		e.log.Warn("rule condition evaluation failed, treating as non-matching",
			zap.String("rule", rule.Name),
			zap.Error(err))
		return false
	}
	return matched
}

// MatchAll returns the rules that match the context, in input order
func (e *Evaluator) MatchAll(rules []*models.RecommendationRule, ctx *models.RecommendationContext) []*models.RecommendationRule {
	var matched []*models.RecommendationRule
	for _, rule := range rules {
		if e.Matches(rule, ctx) {
			matched = append(matched, rule)
		}
	}
	return matched
}

// Confidence returns how strongly a matched rule applies, in [0,1].
// Non-matching rules score zero.
func (e *Evaluator) Confidence(rule *models.RecommendationRule, ctx *models.RecommendationContext) float64 {
	if !e.Matches(rule, ctx) {
		return 0
	}
	conf, err := e.evalConfidence(rule.Condition, ctx)
	if err != nil {
		return 0
	}
	return models.Clamp(conf, 0, 1)
}

func (e *Evaluator) evalCondition(cond models.RuleCondition, ctx *models.RecommendationContext) (bool, error) {
	switch c := cond.(type) {
	case models.NutrientGapCondition:
		if !c.Comparison.Valid() {
			return false, fmt.Errorf("invalid comparison %q", c.Comparison)
		}
		gap, ok := models.FindGap(ctx.Gaps, c.Nutrient)
		if !ok {
			return false, nil
		}
		return c.Comparison.Evaluate(gap.GapPercentage, c.Threshold), nil

	case models.MealPatternCondition:
		if !c.Comparison.Valid() {
			return false, fmt.Errorf("invalid comparison %q", c.Comparison)
		}
		value, err := patternMetric(c.Pattern, ctx)
		if err != nil {
			return false, err
		}
		return c.Comparison.Evaluate(value, c.Frequency), nil

	case models.HealthScoreCondition:
		if !c.Comparison.Valid() {
			return false, fmt.Errorf("invalid comparison %q", c.Comparison)
		}
		if ctx.HealthScore == nil {
			return false, nil
		}
		return c.Comparison.Evaluate(ctx.HealthScore.Total, c.Score), nil

	case models.GoalProgressCondition:
		if !c.Comparison.Valid() {
			return false, fmt.Errorf("invalid comparison %q", c.Comparison)
		}
		goal, ok := ctx.ActiveGoalOfType(c.GoalType)
		if !ok {
			return false, nil
		}
		return c.Comparison.Evaluate(goal.Progress, c.Progress), nil

	case models.CompositeCondition:
		return e.evalComposite(c, ctx)

	case nil:
		return false, fmt.Errorf("nil condition")

	default:
		return false, fmt.Errorf("unknown condition variant %T", cond)
	}
}

// evalComposite applies AND/OR over the sub-conditions. An empty AND is
// vacuously true and an empty OR vacuously false, per standard boolean
// algebra convention.
func (e *Evaluator) evalComposite(c models.CompositeCondition, ctx *models.RecommendationContext) (bool, error) {
	switch c.Operator {
	case models.OperatorAnd:
		for _, sub := range c.Conditions {
			matched, err := e.evalCondition(sub, ctx)
			if err != nil {
				return false, err
			}
			if !matched {
				return false, nil
			}
		}
		return true, nil

	case models.OperatorOr:
		for _, sub := range c.Conditions {
			matched, err := e.evalCondition(sub, ctx)
			if err != nil {
				return false, err
			}
			if matched {
				return true, nil
			}
		}
		return false, nil

	default:
		return false, fmt.Errorf("unknown logical operator %q", c.Operator)
	}
}

func (e *Evaluator) evalConfidence(cond models.RuleCondition, ctx *models.RecommendationContext) (float64, error) {
	switch c := cond.(type) {
	case models.NutrientGapCondition:
		gap, ok := models.FindGap(ctx.Gaps, c.Nutrient)
		if !ok {
			return 0, nil
		}
		return models.SeverityConfidence(gap.Severity), nil

	case models.MealPatternCondition:
		value, err := patternMetric(c.Pattern, ctx)
		if err != nil {
			return 0, err
		}
		return thresholdConfidence(value, c.Frequency), nil

	case models.HealthScoreCondition:
		if ctx.HealthScore == nil {
			return 0, nil
		}
		return thresholdConfidence(ctx.HealthScore.Total, c.Score), nil

	case models.GoalProgressCondition:
		goal, ok := ctx.ActiveGoalOfType(c.GoalType)
		if !ok {
			return 0, nil
		}
		return thresholdConfidence(goal.Progress, c.Progress), nil

	case models.CompositeCondition:
		return e.compositeConfidence(c, ctx)

	default:
		return 0, fmt.Errorf("unknown condition variant %T", cond)
	}
}

// compositeConfidence propagates min over AND and max over OR. An empty AND
// keeps the min identity 1, an empty OR the max identity 0.
func (e *Evaluator) compositeConfidence(c models.CompositeCondition, ctx *models.RecommendationContext) (float64, error) {
	switch c.Operator {
	case models.OperatorAnd:
		conf := 1.0
		for _, sub := range c.Conditions {
			subConf, err := e.evalConfidence(sub, ctx)
			if err != nil {
				return 0, err
			}
			if subConf < conf {
				conf = subConf
			}
		}
		return conf, nil

	case models.OperatorOr:
		conf := 0.0
		for _, sub := range c.Conditions {
			subConf, err := e.evalConfidence(sub, ctx)
			if err != nil {
				return 0, err
			}
			if subConf > conf {
				conf = subConf
			}
		}
		return conf, nil

	default:
		return 0, fmt.Errorf("unknown logical operator %q", c.Operator)
	}
}

// thresholdConfidence grows with the relative distance of value from the
// threshold: a bare match scores 0.5 and a 100% overshoot saturates at 1.
func thresholdConfidence(value, threshold float64) float64 {
	if threshold == 0 {
		return 0.5
	}
	distance := value - threshold
	if distance < 0 {
		distance = -distance
	}
	ref := threshold
	if ref < 0 {
		ref = -ref
	}
	return models.Clamp(0.5+distance/ref/2, 0, 1)
}

// patternMetric extracts a named numeric metric from the context's pattern
// analysis.
func patternMetric(name string, ctx *models.RecommendationContext) (float64, error) {
	switch name {
	case "regularity_score":
		return ctx.Patterns.RegularityScore, nil
	case "late_night_frequency":
		return ctx.Patterns.LateNightFrequency, nil
	case "breakfast_regularity":
		return ctx.Patterns.MealRegularity[models.MealTypeBreakfast], nil
	case "lunch_regularity":
		return ctx.Patterns.MealRegularity[models.MealTypeLunch], nil
	case "dinner_regularity":
		return ctx.Patterns.MealRegularity[models.MealTypeDinner], nil
	case "food_variety_count":
		return float64(ctx.Patterns.FoodVarietyCount), nil
	default:
		return 0, fmt.Errorf("unknown pattern metric %q", name)
	}
}
