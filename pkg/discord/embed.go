package discord

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"

	"sitecopy/internal/domain/entities"
)

const (
	embedColor = 0x5865F2

	// Discord rejects embed descriptions longer than this.
	maxDescription = 4096
)

// BuildValueEmbed renders one locale table value for review. Structures are
// listed in the table's display order.
func BuildValueEmbed(locale, key string, value any) *discordgo.MessageEmbed {
	desc := FormatValue(entities.Ordered(key, value))
	if desc == "" {
		desc = "*(empty)*"
	}
	if len(desc) > maxDescription {
		desc = truncate(desc, maxDescription-1) + "…"
	}
	return &discordgo.MessageEmbed{
		Title:       key,
		Description: desc,
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: locale},
	}
}

// BuildLocalesEmbed lists supported locales, marking the active and reference ones.
func BuildLocalesEmbed(locales []string, active, reference string) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, l := range locales {
		b.WriteString("- `" + l + "`")
		if l == active {
			b.WriteString(" • active")
		}
		if l == reference {
			b.WriteString(" • reference")
		}
		b.WriteString("\n")
	}
	return &discordgo.MessageEmbed{
		Title:       "Supported locales",
		Description: strings.TrimSuffix(b.String(), "\n"),
		Color:       embedColor,
	}
}

// FormatValue renders strings verbatim and structures as indented lines.
func FormatValue(v any) string {
	var b strings.Builder
	writeValue(&b, v, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func writeValue(b *strings.Builder, v any, depth int) {
	indent := strings.Repeat("  ", depth)
	switch x := v.(type) {
	case string:
		if depth == 0 {
			b.WriteString(x)
			return
		}
		b.WriteString(x + "\n")
	case []any:
		if depth == 0 && len(x) == 0 {
			return
		}
		for i, e := range x {
			if s, ok := e.(string); ok {
				fmt.Fprintf(b, "%s%d. %s\n", indent, i+1, s)
				continue
			}
			fmt.Fprintf(b, "%s%d.\n", indent, i+1)
			writeValue(b, e, depth+1)
		}
	case []entities.Field:
		for _, f := range x {
			if s, ok := f.Value.(string); ok {
				fmt.Fprintf(b, "%s**%s**: %s\n", indent, f.Key, s)
				continue
			}
			fmt.Fprintf(b, "%s**%s**:\n", indent, f.Key)
			writeValue(b, f.Value, depth+1)
		}
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(x)) {
			if s, ok := x[k].(string); ok {
				fmt.Fprintf(b, "%s**%s**: %s\n", indent, k, s)
				continue
			}
			fmt.Fprintf(b, "%s**%s**:\n", indent, k)
			writeValue(b, x[k], depth+1)
		}
	default:
		fmt.Fprintf(b, "%s%v\n", indent, x)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func utf8RuneStart(b byte) bool { return b&0xC0 != 0x80 }
