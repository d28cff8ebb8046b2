package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mealsota/nutribot/internal/analysis"
	"github.com/mealsota/nutribot/internal/models"
	"github.com/mealsota/nutribot/internal/nutrition"
	"github.com/mealsota/nutribot/internal/score"
)

// BuildContext assembles the recommendation context snapshot. The meal,
// profile, goal and record-count fetches have no ordering dependency and
// run concurrently; the assembly point below the group wait is the
// synchronization barrier, so a snapshot is never observed half-built.
func (e *Engine) BuildContext(ctx context.Context, userID string, session SessionInfo) (*models.RecommendationContext, error) {
	now := e.now()
	from := now.AddDate(0, 0, -analysisWindowDays)

	var (
		meals       []models.MealRecord
		profile     *models.UserProfile
		goals       []models.Goal
		recordCount int
	)

	g, grpCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		meals, err = e.providers.Meals.FetchMealRecords(grpCtx, userID, from, now)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = e.providers.Profiles.FetchUserProfile(grpCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = e.providers.Goals.FetchActiveGoals(grpCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		recordCount, err = e.providers.Counts.FetchRecentRecordCount(grpCtx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, newCalcError("build_context", err)
	}

	if profile == nil {
		fallback := models.DefaultProfile(userID)
		profile = &fallback
	}
	target := nutrition.CalculateTargets(*profile)
	averages := nutrition.DailyAverages(meals)
	gaps := analysis.IdentifyGaps(averages, target)
	patterns := analysis.AnalyzePatterns(meals)
	variety := analysis.AnalyzeVariety(meals)

	var todayMeals []models.MealRecord
	day := now.Format("2006-01-02")
	for _, meal := range meals {
		if meal.Day() == day {
			todayMeals = append(todayMeals, meal)
		}
	}
	dayFacts := nutrition.DailyNutrition(todayMeals)
	health := score.FullReport(dayFacts, target, patterns, variety)

	return &models.RecommendationContext{
		UserID:              userID,
		Now:                 now,
		Hour:                now.Hour(),
		Gaps:                gaps,
		Patterns:            patterns,
		HealthScore:         &health,
		RecentMeals:         meals,
		ActiveGoals:         goals,
		Location:            models.NormalizeLocation(session.Location),
		MealType:            session.MealType,
		Budget:              session.Budget,
		DietaryRestrictions: session.DietaryRestrictions,
		IsFirstTimeUser:     recordCount < firstTimeUserThreshold,
		CaloriesToday:       dayFacts.Calories,
		Target:              target,
	}, nil
}
