package sources

import (
	"context"

	"github.com/mealsota/nutribot/internal/models"
)

// Source defines the interface for all food-data sources
type Source interface {
	// Crawl fetches and parses food entries from the source
	Crawl(ctx context.Context) ([]models.Food, error)

	// Name returns the name of the source
	Name() string
}
