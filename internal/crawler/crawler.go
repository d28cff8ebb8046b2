package crawler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mealsota/nutribot/internal/models"
	"github.com/mealsota/nutribot/internal/storage"
	"github.com/mealsota/nutribot/pkg/config"
)

// Source is implemented by every food-data source. Declared here to avoid
// an import cycle with the sources package.
type Source interface {
	Crawl(ctx context.Context) ([]models.Food, error)
	Name() string
}

// Stats tracks statistics about crawler operation
type Stats struct {
	TotalFoods  int       `json:"total_foods"`
	NewFoods    int       `json:"new_foods"`
	LastRun     time.Time `json:"last_run"`
	RunCount    int       `json:"run_count"`
	LastError   string    `json:"last_error,omitempty"`
	SourceFoods map[string]int `json:"source_foods"`
}

// Crawler refreshes the food catalogue from external composition tables
type Crawler struct {
	config     *config.Config
	log        *zap.Logger
	db         *storage.MongoDB
	foods      *storage.FoodRepository
	sources    []Source
	stats      Stats
	statsMutex sync.RWMutex
}

// New creates a crawler over the given sources
func New(cfg *config.Config, log *zap.Logger, sources ...Source) (*Crawler, error) {
	db, err := storage.NewMongoDB(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Crawler{
		config:  cfg,
		log:     log.Named("crawler"),
		db:      db,
		foods:   storage.NewFoodRepository(db, log),
		sources: sources,
		stats:   Stats{SourceFoods: make(map[string]int)},
	}, nil
}

// Close releases the crawler's resources
func (c *Crawler) Close() error {
	return c.db.Disconnect()
}

// RunOnce crawls every source concurrently and upserts the results into
// the food catalogue. A failing source never blocks the others.
func (c *Crawler) RunOnce(ctx context.Context) {
	c.log.Info("Starting crawl run", zap.Int("sources", len(c.sources)))
	start := time.Now()

	results := make([][]models.Food, len(c.sources))

	var wg sync.WaitGroup
	wg.Add(len(c.sources))
	for i, source := range c.sources {
		go func(i int, source Source) {
			defer wg.Done()
			foods, err := source.Crawl(ctx)
			if err != nil {
				c.log.Error("Source crawl failed",
					zap.String("source", source.Name()),
					zap.Error(err))
				c.recordError(err)
				return
			}
			results[i] = foods
			c.recordSource(source.Name(), len(foods))
		}(i, source)
	}
	wg.Wait()

	saved := 0
	for _, foods := range results {
		for i := range foods {
			if err := c.foods.UpsertFood(ctx, &foods[i]); err != nil {
				c.log.Warn("Failed to upsert food",
					zap.String("name", foods[i].Name),
					zap.Error(err))
				continue
			}
			saved++
		}
	}

	c.statsMutex.Lock()
	c.stats.TotalFoods += saved
	c.stats.LastRun = time.Now()
	c.stats.RunCount++
	c.statsMutex.Unlock()

	c.log.Info("Crawl run completed",
		zap.Int("foods_saved", saved),
		zap.Duration("elapsed", time.Since(start)))
}

// StartScheduledRuns runs the crawler immediately and then on the given
// interval until the context is canceled.
func (c *Crawler) StartScheduledRuns(ctx context.Context, interval time.Duration) {
	c.RunOnce(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.log.Info("Scheduled runs stopped")
			return
		case <-ticker.C:
			c.RunOnce(ctx)
		}
	}
}

// GetStats returns a copy of the crawler statistics
func (c *Crawler) GetStats() Stats {
	c.statsMutex.RLock()
	defer c.statsMutex.RUnlock()

	stats := c.stats
	stats.SourceFoods = make(map[string]int, len(c.stats.SourceFoods))
	for name, count := range c.stats.SourceFoods {
		stats.SourceFoods[name] = count
	}
	return stats
}

func (c *Crawler) recordError(err error) {
	c.statsMutex.Lock()
	c.stats.LastError = err.Error()
	c.statsMutex.Unlock()
}

func (c *Crawler) recordSource(name string, count int) {
	c.statsMutex.Lock()
	c.stats.SourceFoods[name] = count
	c.statsMutex.Unlock()
}
