package recommend

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mealsota/nutribot/internal/models"
)

// Digest sizes for the two consumers of the ranked list
const (
	DailyDigestLimit      = 10
	ContextualDigestLimit = 5
)

// Recommender fans the context snapshot out to all generators and ranks
// the merged result. A failing generator contributes an empty list; it
// never suppresses the output of the others.
type Recommender struct {
	log        *zap.Logger
	generators []Generator
}

// NewRecommender creates a recommender with the standard five generators
func NewRecommender(log *zap.Logger) *Recommender {
	return &Recommender{
		log: log.Named("recommender"),
		generators: []Generator{
			NewGapGenerator(),
			NewGoalGenerator(),
			NewTimeGenerator(),
			NewLocationGenerator(),
			NewComboGenerator(),
		},
	}
}

// Generate runs every generator concurrently over the snapshot and returns
// the ranked, deduplicated list truncated to limit.
func (r *Recommender) Generate(ctx context.Context, snapshot *models.RecommendationContext, limit int) []models.Recommendation {
	lists := make([][]models.Recommendation, len(r.generators))

	g, _ := errgroup.WithContext(ctx)
	for i, gen := range r.generators {
		i, gen := i, gen
		g.Go(func() error {
			recs, err := gen.Generate(snapshot)
			if err != nil {
				r.log.Warn("generator failed, substituting empty list",
					zap.String("generator", gen.Name()),
					zap.Error(err))
				recs = nil
			}
			lists[i] = recs
			return nil
		})
	}
	// Generators report failures through logging only, never through the group
	_ = g.Wait()

	return Rank(lists, limit)
}

// DailyDigest is the ranked top-10 for the daily digest consumer
func (r *Recommender) DailyDigest(ctx context.Context, snapshot *models.RecommendationContext) []models.Recommendation {
	return r.Generate(ctx, snapshot, DailyDigestLimit)
}

// ContextualDigest is the ranked top-5 for in-the-moment surfaces
func (r *Recommender) ContextualDigest(ctx context.Context, snapshot *models.RecommendationContext) []models.Recommendation {
	return r.Generate(ctx, snapshot, ContextualDigestLimit)
}
