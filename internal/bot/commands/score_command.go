package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/mealsota/nutribot/internal/engine"
)

// ScoreCommand produces the daily health-score report
type ScoreCommand struct {
	log    *zap.Logger
	engine *engine.Engine
	prefix string
}

// NewScoreCommand creates a new score command handler
func NewScoreCommand(log *zap.Logger, eng *engine.Engine, prefix string) *ScoreCommand {
	return &ScoreCommand{
		log:    log.Named("score-command"),
		engine: eng,
		prefix: prefix,
	}
}

// Register registers the command handler
func (c *ScoreCommand) Register(session *discordgo.Session) {
	session.AddHandler(c.handleScore)
}

// handleScore handles "!score"
func (c *ScoreCommand) handleScore(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore messages from the bot itself
	if m.Author.ID == s.State.User.ID {
		return
	}

	if !strings.EqualFold(m.Content, c.prefix+"score") {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	day, err := c.engine.ComputeDailyAnalysis(ctx, m.Author.ID, time.Now())
	if errors.Is(err, engine.ErrNoRecords) {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("No meals logged today yet. Log one with %smeal to get a score.", c.prefix))
		return
	}
	if err != nil {
		c.log.Error("Daily analysis failed", zap.String("user_id", m.Author.ID), zap.Error(err))
		s.ChannelMessageSend(m.ChannelID, "Something went wrong computing your score.")
		return
	}

	week, err := c.engine.WeekRecords(ctx, m.Author.ID)
	if err != nil {
		c.log.Error("Week fetch failed", zap.String("user_id", m.Author.ID), zap.Error(err))
		s.ChannelMessageSend(m.ChannelID, "Something went wrong computing your score.")
		return
	}
	health := c.engine.ComputeHealthScore(week, day)

	var lines []string
	lines = append(lines, fmt.Sprintf("**Total: %.0f / 100**", health.Total))
	for _, name := range []string{"calories", "macros", "micros", "pattern", "variety"} {
		if sub, ok := health.Breakdown[name]; ok {
			lines = append(lines, fmt.Sprintf("%s: %.0f", name, sub))
		}
	}
	if len(health.Feedback) > 0 {
		lines = append(lines, "")
		for _, fb := range health.Feedback {
			lines = append(lines, "• "+fb)
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Today's health score",
		Description: strings.Join(lines, "\n"),
		Color:       scoreColor(health.Total),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Requested by %s", m.Author.Username),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}

func scoreColor(total float64) int {
	switch {
	case total >= 80:
		return 0x00FF00 // Green
	case total >= 50:
		return 0xFF9900 // Orange
	default:
		return 0xFF0000 // Red
	}
}
