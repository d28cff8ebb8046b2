package sources

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/mealsota/nutribot/internal/crawler"
	"github.com/mealsota/nutribot/internal/models"
)

const foodDBBaseURL = "https://www.fooddb.example.org/foods/common"

// categoryLabels maps the site's category labels to our coverage categories
var categoryLabels = map[string]models.FoodCategory{
	"grains":     models.CategoryGrains,
	"cereal":     models.CategoryGrains,
	"vegetables": models.CategoryVegetables,
	"fruits":     models.CategoryFruits,
	"meat":       models.CategoryProtein,
	"fish":       models.CategoryProtein,
	"eggs":       models.CategoryProtein,
	"legumes":    models.CategoryProtein,
	"dairy":      models.CategoryDairy,
}

// FoodDBCrawler scrapes per-100g nutrition facts from the public food
// composition tables.
type FoodDBCrawler struct {
	*crawler.BaseCrawler
}

// NewFoodDBCrawler creates a new food composition crawler
func NewFoodDBCrawler(log *zap.Logger) *FoodDBCrawler {
	return &FoodDBCrawler{
		BaseCrawler: crawler.NewBaseCrawler(log.Named("fooddb-crawler")),
	}
}

// Name returns the name of the source
func (c *FoodDBCrawler) Name() string {
	return "FoodDB"
}

// Crawl fetches and parses the food composition table
func (c *FoodDBCrawler) Crawl(ctx context.Context) ([]models.Food, error) {
	c.Logger.Info("Starting FoodDB crawl")

	content, err := c.FetchURL(ctx, foodDBBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch FoodDB: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(content)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var foods []models.Food
	doc.Find("table.food-table tbody tr").Each(func(i int, s *goquery.Selection) {
		food, err := c.parseFood(s)
		if err != nil {
			c.Logger.Debug("Skipping unparseable row", zap.Int("row", i), zap.Error(err))
			return
		}
		foods = append(foods, *food)
	})

	c.Logger.Info("FoodDB crawl completed", zap.Int("foods_found", len(foods)))
	return foods, nil
}

// parseFood extracts one food entry from a table row. Expected columns:
// name, category, calories, protein, carbs, fat, fiber, sugar, sodium.
func (c *FoodDBCrawler) parseFood(s *goquery.Selection) (*models.Food, error) {
	cells := s.Find("td")
	if cells.Length() < 6 {
		return nil, fmt.Errorf("row has %d cells, need at least 6", cells.Length())
	}

	name := strings.TrimSpace(cells.Eq(0).Text())
	if name == "" {
		return nil, fmt.Errorf("empty food name")
	}

	category := models.CategoryOther
	if mapped, ok := categoryLabels[strings.ToLower(strings.TrimSpace(cells.Eq(1).Text()))]; ok {
		category = mapped
	}

	calories, err := parseCell(cells, 2)
	if err != nil {
		return nil, fmt.Errorf("calories: %w", err)
	}
	protein, err := parseCell(cells, 3)
	if err != nil {
		return nil, fmt.Errorf("protein: %w", err)
	}
	carbs, err := parseCell(cells, 4)
	if err != nil {
		return nil, fmt.Errorf("carbs: %w", err)
	}
	fat, err := parseCell(cells, 5)
	if err != nil {
		return nil, fmt.Errorf("fat: %w", err)
	}

	facts := models.NutritionFacts{
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
	// Optional columns: absent or blank cells stay absent, not zero
	if v, err := parseCell(cells, 6); err == nil {
		facts.Fiber = models.Float64Ptr(v)
	}
	if v, err := parseCell(cells, 7); err == nil {
		facts.Sugar = models.Float64Ptr(v)
	}
	if v, err := parseCell(cells, 8); err == nil {
		facts.Sodium = models.Float64Ptr(v)
	}

	return models.NewFood(name, category, facts, c.Name()), nil
}

func parseCell(cells *goquery.Selection, index int) (float64, error) {
	if index >= cells.Length() {
		return 0, fmt.Errorf("no cell at index %d", index)
	}
	text := strings.TrimSpace(cells.Eq(index).Text())
	text = strings.TrimSuffix(text, "mg")
	text = strings.TrimSuffix(text, "g")
	text = strings.ReplaceAll(text, ",", "")
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable value %q", text)
	}
	if value < 0 {
		return 0, fmt.Errorf("negative value %q", text)
	}
	return value, nil
}
