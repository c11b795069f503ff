package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"sitecopy/internal/adapters/discord"
	httpapi "sitecopy/internal/adapters/http"
	"sitecopy/internal/application"
	"sitecopy/internal/config"
	"sitecopy/internal/infrastructure/database"
	"sitecopy/internal/infrastructure/i18n"
	"sitecopy/internal/ports/output"
)

const (
	readHeaderTimeout = 15 * time.Second
	shutdownDeadline  = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Application failed")
	}
}

func run() error {
	log.Logger = log.Output(logWriter(os.Stderr))

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tables, err := loadTables(cfg.LocaleDir)
	if err != nil {
		return fmt.Errorf("load locale tables: %w", err)
	}
	catalog, err := i18n.NewCatalog(cfg.ReferenceLocale, tables...)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}
	if _, err := catalog.Switch(cfg.DefaultLocale); err != nil {
		return fmt.Errorf("default locale: %w", err)
	}
	holder := i18n.NewHolder(catalog)

	var repo output.LocaleRepository
	if cfg.DatabaseURL != "" {
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			return err
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer pool.Close()
		repo = database.NewLocaleRepository(pool)
	}

	service := application.NewLocaleService(holder, repo, cfg.ReferenceLocale)
	if repo != nil {
		if err := service.Sync(ctx); err != nil {
			return err
		}
	}

	translator, err := i18n.NewTranslator(holder.Load())
	if err != nil {
		return fmt.Errorf("translator: %w", err)
	}
	translator.Follow(holder)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.New(service, translator).WithAdminToken(cfg.AdminToken).Routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("sys", "http").Str("addr", cfg.HTTPAddr).Strs("locales", holder.Load().Locales()).Msg("Listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownDeadline)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.DiscordToken != "" {
		bot, err := discord.NewBot(cfg.DiscordToken, service)
		if err != nil {
			return err
		}
		g.Go(func() error { return bot.Start(ctx) })
	} else {
		log.Info().Str("sys", "discord").Msg("DISCORD_TOKEN not set, bot disabled")
	}

	return g.Wait()
}

func loadTables(dir string) ([]*i18n.Table, error) {
	if dir == "" {
		return i18n.LoadEmbedded()
	}
	return i18n.LoadDir(dir)
}

func logWriter(f *os.File) io.Writer {
	if isatty.IsTerminal(f.Fd()) {
		return zerolog.ConsoleWriter{Out: f, TimeFormat: time.DateTime}
	}
	return f
}
