package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

type Config struct {
	HTTPAddr        string
	DefaultLocale   string
	ReferenceLocale string
	LocaleDir       string
	DatabaseURL     string
	DiscordToken    string
	AdminToken      string
	LogLevel        zerolog.Level
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, ...).
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:        os.Getenv("HTTP_ADDR"),
		DefaultLocale:   os.Getenv("DEFAULT_LOCALE"),
		ReferenceLocale: os.Getenv("REFERENCE_LOCALE"),
		LocaleDir:       os.Getenv("LOCALE_DIR"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DiscordToken:    os.Getenv("DISCORD_TOKEN"),
		AdminToken:      os.Getenv("ADMIN_TOKEN"),
	}

	if err := cfg.validate(os.Getenv("LOG_LEVEL")); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies defaults and checks every loaded value.
func (c *Config) validate(logLevel string) error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		c.HTTPAddr = ":8080"
	}
	if !strings.Contains(c.HTTPAddr, ":") {
		return fmt.Errorf("config: HTTP_ADDR must be host:port, got %q", c.HTTPAddr)
	}

	var err error
	if c.ReferenceLocale, err = canonicalLocale("REFERENCE_LOCALE", c.ReferenceLocale); err != nil {
		return err
	}
	if c.DefaultLocale, err = canonicalLocale("DEFAULT_LOCALE", c.DefaultLocale); err != nil {
		return err
	}

	if c.LocaleDir != "" {
		info, err := os.Stat(c.LocaleDir)
		if err != nil {
			return fmt.Errorf("config: LOCALE_DIR: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("config: LOCALE_DIR %q is not a directory", c.LocaleDir)
		}
	}

	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
	}

	c.DiscordToken = strings.TrimSpace(c.DiscordToken)
	c.AdminToken = strings.TrimSpace(c.AdminToken)
	if c.AdminToken != "" && len(c.AdminToken) < 16 {
		return fmt.Errorf("config: ADMIN_TOKEN must be at least 16 characters")
	}

	if strings.TrimSpace(logLevel) == "" {
		logLevel = "info"
	}
	if c.LogLevel, err = zerolog.ParseLevel(strings.ToLower(logLevel)); err != nil {
		return fmt.Errorf("config: invalid LOG_LEVEL (%q): %w", logLevel, err)
	}

	return nil
}

func canonicalLocale(name, v string) (string, error) {
	if strings.TrimSpace(v) == "" {
		return "en-US", nil
	}
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(v), "_", "-"))
	if err != nil {
		return "", fmt.Errorf("config: invalid %s (%q): %w", name, v, err)
	}
	return tag.String(), nil
}
