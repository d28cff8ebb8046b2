// Package engine is the outbound call surface of the analytical core: it
// assembles context snapshots from external collaborators and exposes the
// scoring, gap and recommendation operations.
package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mealsota/nutribot/internal/analysis"
	"github.com/mealsota/nutribot/internal/models"
	"github.com/mealsota/nutribot/internal/nutrition"
	"github.com/mealsota/nutribot/internal/recommend"
	"github.com/mealsota/nutribot/internal/rules"
	"github.com/mealsota/nutribot/internal/score"
)

// firstTimeUserThreshold is the record count below which a user is treated
// as new.
const firstTimeUserThreshold = 3

// analysisWindowDays is the rolling window for gaps, patterns and variety
const analysisWindowDays = 7

// Engine wires the pure computation layers to the provider collaborators.
// All computation is deterministic over the fetched inputs; the engine
// itself holds no mutable state and is safe for concurrent use.
type Engine struct {
	log         *zap.Logger
	providers   Providers
	recommender *recommend.Recommender
	evaluator   *rules.Evaluator
	now         func() time.Time
}

// New creates an engine over the given collaborators
func New(providers Providers, log *zap.Logger) *Engine {
	return &Engine{
		log:         log.Named("engine"),
		providers:   providers,
		recommender: recommend.NewRecommender(log),
		evaluator:   rules.NewEvaluator(log),
		now:         time.Now,
	}
}

// DailyAnalysis is the result of analyzing a single day
type DailyAnalysis struct {
	Date      time.Time
	Nutrition models.NutritionFacts
	Target    models.NutritionTarget
	Score     models.HealthScore
	Records   []models.MealRecord
}

// ComputeDailyAnalysis aggregates one calendar day of meals, derives the
// user's targets and produces the nutrition-only score. A day with zero
// records returns ErrNoRecords.
func (e *Engine) ComputeDailyAnalysis(ctx context.Context, userID string, date time.Time) (*DailyAnalysis, error) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	to := from.AddDate(0, 0, 1)

	records, err := e.providers.Meals.FetchMealRecords(ctx, userID, from, to)
	if err != nil {
		return nil, newCalcError("compute_daily_analysis", err)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	target := e.targetsFor(ctx, userID)
	calc := nutrition.NewCalculator()
	facts := calc.DailyNutrition(records)

	return &DailyAnalysis{
		Date:      from,
		Nutrition: facts,
		Target:    target,
		Score:     score.NutritionScore(facts, target),
		Records:   records,
	}, nil
}

// ComputeHealthScore runs the full three-layer report: the day's
// nutrition-only score plus the week's meal-timing and variety layers.
func (e *Engine) ComputeHealthScore(weekRecords []models.MealRecord, day *DailyAnalysis) models.HealthScore {
	patterns := analysis.AnalyzePatterns(weekRecords)
	variety := analysis.AnalyzeVariety(weekRecords)
	return score.FullReport(day.Nutrition, day.Target, patterns, variety)
}

// WeekRecords fetches the user's records over the rolling analysis window
func (e *Engine) WeekRecords(ctx context.Context, userID string) ([]models.MealRecord, error) {
	to := e.now()
	from := to.AddDate(0, 0, -analysisWindowDays)
	records, err := e.providers.Meals.FetchMealRecords(ctx, userID, from, to)
	if err != nil {
		return nil, newCalcError("week_records", err)
	}
	return records, nil
}

// IdentifyNutritionalGaps compares the user's rolling average intake over
// the given number of days against their personalized targets. An empty
// window degrades to all-zero averages, reporting every tracked nutrient
// as a full gap.
func (e *Engine) IdentifyNutritionalGaps(ctx context.Context, userID string, days int) ([]models.NutritionalGap, error) {
	to := e.now()
	from := to.AddDate(0, 0, -days)

	records, err := e.providers.Meals.FetchMealRecords(ctx, userID, from, to)
	if err != nil {
		return nil, newCalcError("identify_nutritional_gaps", err)
	}

	target := e.targetsFor(ctx, userID)
	averages := nutrition.DailyAverages(records)
	return analysis.IdentifyGaps(averages, target), nil
}

// GenerateDailyRecommendations produces the ranked daily digest for an
// assembled context snapshot.
func (e *Engine) GenerateDailyRecommendations(ctx context.Context, snapshot *models.RecommendationContext) []models.Recommendation {
	return e.recommender.DailyDigest(ctx, snapshot)
}

// GenerateContextualRecommendations produces the shorter in-the-moment list
func (e *Engine) GenerateContextualRecommendations(ctx context.Context, snapshot *models.RecommendationContext) []models.Recommendation {
	return e.recommender.ContextualDigest(ctx, snapshot)
}

// EvaluateRules returns the rules whose conditions match the snapshot
func (e *Engine) EvaluateRules(ruleSet []*models.RecommendationRule, snapshot *models.RecommendationContext) []*models.RecommendationRule {
	return e.evaluator.MatchAll(ruleSet, snapshot)
}

// RuleConfidence exposes the evaluator's confidence for a single rule
func (e *Engine) RuleConfidence(rule *models.RecommendationRule, snapshot *models.RecommendationContext) float64 {
	return e.evaluator.Confidence(rule, snapshot)
}

// targetsFor derives targets from the stored profile, falling back to the
// generic default profile when none exists. Absence is a valid state, not
// an error.
func (e *Engine) targetsFor(ctx context.Context, userID string) models.NutritionTarget {
	profile, err := e.providers.Profiles.FetchUserProfile(ctx, userID)
	if err != nil {
		e.log.Warn("profile fetch failed, using default profile",
			zap.String("user_id", userID),
			zap.Error(err))
	}
	if profile == nil {
		fallback := models.DefaultProfile(userID)
		profile = &fallback
	}
	return nutrition.CalculateTargets(*profile)
}
