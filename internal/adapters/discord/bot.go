package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"sitecopy/internal/ports/input"
)

// Bot is the Discord adapter: a copy-review bot for the content team.
type Bot struct {
	session *discordgo.Session
	handler *Handler
}

// NewBot creates a Bot wired to the locale use case.
func NewBot(token string, locales input.LocaleUseCase) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord: create session: %w", err)
	}

	bot := &Bot{
		session: s,
		handler: NewHandler(locales),
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	switch i.ApplicationCommandData().Name {
	case commandCopy:
		b.handler.HandleCopy(s, i)
	case commandLocales:
		b.handler.HandleLocales(s, i)
	}
}

// Start opens the session, registers commands, and blocks until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("discord: open session: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range Commands() {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", cmd); err != nil {
			log.Warn().Str("sys", "discord").Str("command", cmd.Name).Err(err).Msg("Command registration failed")
		}
	}

	log.Info().Str("sys", "discord").Str("user", b.session.State.User.Username).Msg("Bot online")
	<-ctx.Done()
	return nil
}
