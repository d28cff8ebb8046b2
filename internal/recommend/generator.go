// Package recommend turns gaps, goals, time-of-day and location context
// into ranked, deduplicated, confidence-scored recommendations.
package recommend

import (
	"fmt"
	"hash/fnv"

	"github.com/mealsota/nutribot/internal/models"
)

// Generator produces recommendations from a context snapshot. Generators
// are independent: each applies its own heuristics over the same snapshot
// and a failure in one never suppresses the others.
type Generator interface {
	Name() string
	Generate(ctx *models.RecommendationContext) ([]models.Recommendation, error)
}

// newRecommendation builds an immutable recommendation with a deterministic
// id derived from its semantic identity, so re-running the engine over the
// same inputs yields the same ids.
func newRecommendation(recType models.RecommendationType, title, description string, priority models.Priority, confidence float64, reason string) models.Recommendation {
	rec := models.Recommendation{
		Type:        recType,
		Title:       title,
		Description: description,
		Priority:    priority,
		Confidence:  models.Clamp(confidence, 0, 1),
		Reason:      reason,
	}
	rec.ID = deterministicID(rec.DedupKey())
	return rec
}

func deterministicID(key string) string {
	h := fnv.New64a()
	h.Write([]byte(key))
	return fmt.Sprintf("rec-%016x", h.Sum64())
}
