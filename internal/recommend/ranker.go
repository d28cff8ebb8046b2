package recommend

import (
	"sort"

	"github.com/mealsota/nutribot/internal/models"
)

// Rank merges generator outputs into one list: duplicates are removed by
// semantic key keeping the first occurrence, the result is stably sorted by
// priority then confidence, and truncated to limit. A non-positive limit
// returns the full ranked list.
func Rank(lists [][]models.Recommendation, limit int) []models.Recommendation {
	var merged []models.Recommendation
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, rec := range list {
			key := rec.DedupKey()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, rec)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Priority.Rank() != merged[j].Priority.Rank() {
			return merged[i].Priority.Rank() > merged[j].Priority.Rank()
		}
		return merged[i].Confidence > merged[j].Confidence
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
