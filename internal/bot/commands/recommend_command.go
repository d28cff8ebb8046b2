package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/mealsota/nutribot/internal/engine"
	"github.com/mealsota/nutribot/internal/models"
	"github.com/mealsota/nutribot/pkg/config"
)

// RecommendCommand produces the recommendation digests
type RecommendCommand struct {
	log    *zap.Logger
	engine *engine.Engine
	cfg    *config.Config
}

// NewRecommendCommand creates a new recommendation command handler
func NewRecommendCommand(log *zap.Logger, eng *engine.Engine, cfg *config.Config) *RecommendCommand {
	return &RecommendCommand{
		log:    log.Named("recommend-command"),
		engine: eng,
		cfg:    cfg,
	}
}

// Register registers the command handlers
func (c *RecommendCommand) Register(session *discordgo.Session) {
	session.AddHandler(c.handleRecommend)
	session.AddHandler(c.handleTips)
}

// handleRecommend handles "!recommend [location]" with the daily digest
func (c *RecommendCommand) handleRecommend(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore messages from the bot itself
	if m.Author.ID == s.State.User.ID {
		return
	}

	if !strings.HasPrefix(m.Content, c.cfg.CommandPrefix+"recommend") {
		return
	}

	recs, ok := c.generate(s, m, false)
	if !ok {
		return
	}
	c.sendDigest(s, m, "Today's recommendations", recs)
}

// handleTips handles "!tips [location]" with the shorter contextual digest
func (c *RecommendCommand) handleTips(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore messages from the bot itself
	if m.Author.ID == s.State.User.ID {
		return
	}

	if !strings.HasPrefix(m.Content, c.cfg.CommandPrefix+"tips") {
		return
	}

	recs, ok := c.generate(s, m, true)
	if !ok {
		return
	}
	c.sendDigest(s, m, "Right now", recs)
}

func (c *RecommendCommand) generate(s *discordgo.Session, m *discordgo.MessageCreate, contextual bool) ([]models.Recommendation, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Optional location argument, e.g. "!recommend cafeteria"
	location := ""
	if parts := strings.Fields(m.Content); len(parts) > 1 {
		location = parts[1]
	}

	snapshot, err := c.engine.BuildContext(ctx, m.Author.ID, engine.SessionInfo{Location: location})
	if err != nil {
		c.log.Error("Context assembly failed", zap.String("user_id", m.Author.ID), zap.Error(err))
		s.ChannelMessageSend(m.ChannelID, "Something went wrong building your recommendations.")
		return nil, false
	}

	if contextual {
		return c.engine.GenerateContextualRecommendations(ctx, snapshot), true
	}
	return c.engine.GenerateDailyRecommendations(ctx, snapshot), true
}

func (c *RecommendCommand) sendDigest(s *discordgo.Session, m *discordgo.MessageCreate, title string, recs []models.Recommendation) {
	if len(recs) == 0 {
		s.ChannelMessageSend(m.ChannelID, "Nothing to recommend right now. Keep logging meals!")
		return
	}

	var lines []string
	for i, rec := range recs {
		lines = append(lines, fmt.Sprintf("**%d. %s** (%s)\n%s\n_%s_", i+1, rec.Title, rec.Priority, rec.Description, rec.Reason))
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: strings.Join(lines, "\n\n"),
		Color:       0x3366FF, // Blue
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Requested by %s", m.Author.Username),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}
