package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mymmrac/telego"

	"voicebrief/internal/ai"
	"voicebrief/internal/bot"
	"voicebrief/internal/config"
	"voicebrief/internal/logger"
	"voicebrief/internal/media"
	"voicebrief/internal/pipeline"
	"voicebrief/internal/session"
	"voicebrief/pkg/executor"
	"voicebrief/pkg/failover"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "Voicebrief bot starting")

	if cfg.Telegram.Token == "" {
		log.Error(ctx, "BOT_TOKEN is not set")
		os.Exit(1)
	}

	tgBot, err := telego.NewBot(cfg.Telegram.Token, telego.WithDefaultLogger(false, true))
	if err != nil {
		log.Error(ctx, "Failed to create bot: %v", err)
		os.Exit(1)
	}

	engines, err := ai.BuildRegistry(ctx, cfg.AI)
	if err != nil {
		log.Error(ctx, "Failed to set up AI engines: %v", err)
		os.Exit(1)
	}
	log.Info(ctx, "AI engines available: %v (default: %s)", engines.Names(), cfg.AI.DefaultEngine)

	exec := executor.New(2 * time.Minute)
	normalizer := media.New(bot.NewFetcher(tgBot), exec, log, cfg.Media.MaxFileSize, cfg.Media.FFmpegPath)

	policy := failover.Config{
		PrimaryAttempts:  cfg.AI.PrimaryAttempts,
		FallbackAttempts: cfg.AI.FallbackAttempts,
		Backoff:          cfg.AI.Backoff(),
		RetryIf:          failover.IsTransient,
	}
	pipe := pipeline.New(normalizer, engines, log, policy, cfg.Telegram.MaxMessageLength)

	app := bot.New(tgBot, cfg, log, pipe, session.NewMemoryStore(), engines)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- app.Run(ctx)
	}()

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		<-errChan
	case err := <-errChan:
		if err != nil {
			log.Error(ctx, "Bot stopped: %v", err)
			os.Exit(1)
		}
	}

	log.Info(ctx, "Voicebrief bot stopped")
}
