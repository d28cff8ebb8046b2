package commands

import (
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// PingCommand replies with the round-trip latency
type PingCommand struct {
	prefix string
}

// NewPingCommand creates a new ping command
func NewPingCommand(prefix string) *PingCommand {
	return &PingCommand{prefix: prefix}
}

// Register registers the command handler
func (c *PingCommand) Register(session *discordgo.Session) {
	session.AddHandler(c.handlePing)
}

func (c *PingCommand) handlePing(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore messages from the bot itself
	if m.Author.ID == s.State.User.ID {
		return
	}

	if !strings.EqualFold(m.Content, c.prefix+"ping") {
		return
	}

	start := time.Now()
	msg, err := s.ChannelMessageSend(m.ChannelID, "Pinging...")
	if err != nil {
		return
	}

	elapsed := time.Since(start)

	_, err = s.ChannelMessageEdit(m.ChannelID, msg.ID,
		"Pong! Latency: "+elapsed.Round(time.Millisecond).String())
	if err != nil {
		s.ChannelMessageSend(m.ChannelID,
			"Pong! Latency: "+elapsed.Round(time.Millisecond).String())
	}
}
