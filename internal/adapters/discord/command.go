package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "sitecopy/pkg/discord"
)

const (
	commandCopy    = "copy"
	commandLocales = "locales"

	optionKey    = "key"
	optionLocale = "locale"
)

// Commands returns the slash commands the bot registers.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        commandCopy,
			Description: "Show site copy for a key path",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionKey,
					Description: "Key path, e.g. hero.title or features.items[1].title",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionLocale,
					Description: "Locale, e.g. en-US or zh-CN (defaults to your Discord language)",
					Required:    false,
				},
			},
		},
		{Name: commandLocales, Description: "List supported site locales"},
	}
}

// copyRequest is the parsed /copy invocation.
type copyRequest struct {
	Key    string
	Locale string
}

func parseCopyOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) copyRequest {
	var req copyRequest
	for _, o := range opts {
		switch o.Name {
		case optionKey:
			req.Key = strings.TrimSpace(o.StringValue())
		case optionLocale:
			req.Locale = strings.TrimSpace(o.StringValue())
		}
	}
	return req
}

// resolveCopy looks up the value a /copy request asks for. An explicit
// locale must be supported; otherwise the user's Discord locale is matched.
func (h *Handler) resolveCopy(req copyRequest, userLocale string) (*discordgo.MessageEmbed, error) {
	locale := req.Locale
	if locale == "" {
		locale = h.locales.Resolve(userLocale)
	}
	v, err := h.locales.Get(locale, req.Key)
	if err != nil {
		return nil, err
	}
	return pkgdiscord.BuildValueEmbed(locale, req.Key, v), nil
}

func (h *Handler) HandleCopy(s *discordgo.Session, i *discordgo.InteractionCreate) {
	req := parseCopyOptions(i.ApplicationCommandData().Options)
	embed, err := h.resolveCopy(req, string(i.Locale))
	if err != nil {
		respondEphemeral(s, i.Interaction, pkgdiscord.DomainErrorMessage(err))
		return
	}
	respondEmbed(s, i.Interaction, embed)
}

func (h *Handler) HandleLocales(s *discordgo.Session, i *discordgo.InteractionCreate) {
	info := h.locales.Locales()
	respondEmbed(s, i.Interaction, pkgdiscord.BuildLocalesEmbed(info.Locales, info.Active, info.Reference))
}
