package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"voicebrief/internal/ai"
	"voicebrief/internal/config"
	"voicebrief/internal/export"
	"voicebrief/internal/logger"
	"voicebrief/internal/media"
	"voicebrief/internal/pipeline"
	"voicebrief/internal/watch"
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
	log.Info(ctx, "Voicebrief batch mode starting")
	log.Info(ctx, "Monitoring: %s", cfg.Batch.Input)
	log.Info(ctx, "Output: %s", cfg.Batch.Output)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	engines, err := ai.BuildRegistry(ctx, cfg.AI)
	if err != nil {
		log.Error(ctx, "Failed to set up AI engines: %v", err)
		os.Exit(1)
	}

	exec := executor.New(2 * time.Minute)
	normalizer := media.New(media.NewFileFetcher(), exec, log, cfg.Media.MaxFileSize, cfg.Media.FFmpegPath)

	policy := failover.Config{
		PrimaryAttempts:  cfg.AI.PrimaryAttempts,
		FallbackAttempts: cfg.AI.FallbackAttempts,
		Backoff:          cfg.AI.Backoff(),
		RetryIf:          failover.IsTransient,
	}
	pipe := pipeline.New(normalizer, engines, log, policy, cfg.Telegram.MaxMessageLength)

	handler := func(ctx context.Context, filePath string) error {
		item := itemFromPath(filePath)

		res, err := pipe.Run(ctx, item, cfg.AI.DefaultEngine)
		if err != nil {
			return err
		}

		base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		outputPath := filepath.Join(cfg.Batch.Output, base+".docx")
		if err := export.WriteReport(filepath.Base(filePath), res.Transcript, res.Summary, outputPath); err != nil {
			return fmt.Errorf("write report: %w", err)
		}

		log.Info(ctx, "Report written: %s", outputPath)
		return nil
	}

	w, err := watch.New(cfg.Batch.Input, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Voicebrief batch mode stopped")
}

// itemFromPath classifies a dropped file by extension. Video containers
// get the audio-extraction transcode, everything else the audio profile.
func itemFromPath(path string) media.Item {
	kind := media.KindAudio
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".mov", ".mkv", ".webm":
		kind = media.KindVideo
	case ".oga", ".ogg":
		kind = media.KindVoice
	}

	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}

	return media.Item{Kind: kind, FileRef: path, FileName: filepath.Base(path), Size: size}
}

func ensureDirectories(cfg *config.Config) error {
	for _, dir := range []string{cfg.Batch.Input, cfg.Batch.Output} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
