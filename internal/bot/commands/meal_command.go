package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/mealsota/nutribot/internal/models"
	"github.com/mealsota/nutribot/internal/nutrition"
	"github.com/mealsota/nutribot/internal/storage"
)

// MealCommand handles meal logging and food catalogue lookups
type MealCommand struct {
	log    *zap.Logger
	prefix string
	meals  *storage.MealRepository
	foods  *storage.FoodRepository
}

// NewMealCommand creates a new meal command handler
func NewMealCommand(log *zap.Logger, db *storage.MongoDB, prefix string) *MealCommand {
	return &MealCommand{
		log:    log.Named("meal-command"),
		prefix: prefix,
		meals:  storage.NewMealRepository(db, log),
		foods:  storage.NewFoodRepository(db, log),
	}
}

// Register registers the command handlers
func (c *MealCommand) Register(session *discordgo.Session) {
	session.AddHandler(c.handleLogMeal)
	session.AddHandler(c.handleListFoods)
}

// handleLogMeal handles "!meal <type> <food> <grams>"
func (c *MealCommand) handleLogMeal(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore messages from the bot itself
	if m.Author.ID == s.State.User.ID {
		return
	}

	if !strings.HasPrefix(m.Content, c.prefix+"meal ") {
		return
	}

	parts := strings.Fields(strings.TrimPrefix(m.Content, c.prefix+"meal"))
	if len(parts) < 3 {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Usage: %smeal <breakfast|lunch|dinner|snack> <food> <grams>", c.prefix))
		return
	}

	mealType := models.MealType(strings.ToLower(parts[0]))
	switch mealType {
	case models.MealTypeBreakfast, models.MealTypeLunch, models.MealTypeDinner, models.MealTypeSnack:
	default:
		s.ChannelMessageSend(m.ChannelID, "Meal type must be breakfast, lunch, dinner or snack.")
		return
	}

	grams, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil || grams <= 0 {
		s.ChannelMessageSend(m.ChannelID, "The last argument must be the amount in grams.")
		return
	}
	foodName := strings.Join(parts[1:len(parts)-1], " ")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	food, err := c.foods.FindFood(ctx, foodName)
	if err != nil {
		c.log.Warn("Food lookup failed", zap.String("name", foodName), zap.Error(err))
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("I don't know %q yet. Try %sfoods to see the catalogue.", foodName, c.prefix))
		return
	}

	item := models.FoodItem{
		FoodID:     food.ID.Hex(),
		Name:       food.Name,
		Category:   food.Category,
		Grams:      grams,
		PerHundred: food.PerHundred,
	}
	record := models.NewMealRecord(m.Author.ID, mealType, []models.FoodItem{item})

	if err := c.meals.SaveMeal(ctx, record); err != nil {
		c.log.Error("Failed to save meal", zap.Error(err))
		s.ChannelMessageSend(m.ChannelID, "Something went wrong saving that meal.")
		return
	}

	facts := nutrition.MealNutrition(record.Items)
	embed := &discordgo.MessageEmbed{
		Title: "Meal logged",
		Description: fmt.Sprintf("**%s**: %.0fg of %s\n%.0f kcal · %.1fg protein · %.1fg carbs · %.1fg fat",
			mealType, grams, food.Name, facts.Calories, facts.Protein, facts.Carbs, facts.Fat),
		Color: 0x00FF00, // Green
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Logged by %s", m.Author.Username),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}

// handleListFoods handles "!foods [category]"
func (c *MealCommand) handleListFoods(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore messages from the bot itself
	if m.Author.ID == s.State.User.ID {
		return
	}

	if !strings.HasPrefix(m.Content, c.prefix+"foods") {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	parts := strings.Fields(m.Content)
	category := models.CategoryProtein
	if len(parts) > 1 {
		category = models.FoodCategory(strings.ToLower(parts[1]))
	}

	foods, err := c.foods.ListFoods(ctx, category)
	if err != nil {
		c.log.Error("Failed to list foods", zap.Error(err), zap.String("category", string(category)))
		s.ChannelMessageSend(m.ChannelID, "Something went wrong listing the catalogue.")
		return
	}

	var names []string
	for _, food := range foods {
		names = append(names, food.Name)
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Foods in %s", category),
		Description: fmt.Sprintf("**%d entries**: %s", len(foods), strings.Join(names, ", ")),
		Color:       0x3366FF, // Blue
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Requested by %s", m.Author.Username),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}
