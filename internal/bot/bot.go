package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/mealsota/nutribot/internal/bot/commands"
	"github.com/mealsota/nutribot/internal/engine"
	"github.com/mealsota/nutribot/internal/storage"
	"github.com/mealsota/nutribot/pkg/config"
)

// Bot is the Discord surface of the diet tracker
type Bot struct {
	session  *discordgo.Session
	config   *config.Config
	log      *zap.Logger
	commands *commands.Registry
	db       *storage.MongoDB
	engine   *engine.Engine
}

// New creates a new Bot instance
func New(cfg *config.Config, log *zap.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	db, err := storage.NewMongoDB(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	meals := storage.NewMealRepository(db, log)
	profiles := storage.NewProfileRepository(db, log)

	analyticsEngine := engine.New(engine.Providers{
		Meals:    meals,
		Profiles: profiles,
		Goals:    profiles,
		Counts:   meals,
	}, log)

	bot := &Bot{
		session:  session,
		config:   cfg,
		log:      log.Named("bot"),
		commands: commands.NewRegistry(cfg.CommandPrefix),
		db:       db,
		engine:   analyticsEngine,
	}

	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onMessageCreate)

	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	bot.registerCommands()

	return bot, nil
}

// Start connects the bot and blocks until the context is canceled
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	b.log.Info("Bot is running. Press CTRL-C to exit.")

	<-ctx.Done()

	return b.Close()
}

// Close releases the bot's resources
func (b *Bot) Close() error {
	if err := b.session.Close(); err != nil {
		return fmt.Errorf("failed to close Discord session: %w", err)
	}

	if err := b.db.Disconnect(); err != nil {
		return fmt.Errorf("failed to disconnect MongoDB: %w", err)
	}

	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info("Bot logged in",
		zap.String("username", r.User.Username),
		zap.String("discriminator", r.User.Discriminator))

	if err := s.UpdateGameStatus(0, "tracking meals"); err != nil {
		b.log.Error("Failed to set status", zap.Error(err))
	}
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore messages from the bot itself
	if m.Author.ID == s.State.User.ID {
		return
	}

	b.log.Debug("Message received",
		zap.String("guild_id", m.GuildID),
		zap.String("channel_id", m.ChannelID),
		zap.String("user_id", m.Author.ID),
		zap.String("content", m.Content))

	b.commands.Handle(s, m)
}

// registerCommands registers all command handlers
func (b *Bot) registerCommands() {
	pingCmd := commands.NewPingCommand(b.config.CommandPrefix)
	pingCmd.Register(b.session)

	mealCmd := commands.NewMealCommand(b.log, b.db, b.config.CommandPrefix)
	mealCmd.Register(b.session)

	scoreCmd := commands.NewScoreCommand(b.log, b.engine, b.config.CommandPrefix)
	scoreCmd.Register(b.session)

	recommendCmd := commands.NewRecommendCommand(b.log, b.engine, b.config)
	recommendCmd.Register(b.session)
}
