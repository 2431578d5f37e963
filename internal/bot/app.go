package bot

import (
	"context"
	"fmt"
	"sync"

	"github.com/mymmrac/telego"

	"voicebrief/internal/ai"
	"voicebrief/internal/config"
	"voicebrief/internal/logger"
	"voicebrief/internal/pipeline"
	"voicebrief/internal/session"
)

// App is the Telegram front end. It receives updates over long polling
// and hands media messages to the pipeline, a bounded number at a time.
type App struct {
	bot      *telego.Bot
	cfg      *config.Config
	logger   logger.Logger
	pipe     pipeline.Pipeline
	sessions session.Store
	engines  *ai.Registry
	sem      chan struct{}
	wg       sync.WaitGroup
}

func New(bot *telego.Bot, cfg *config.Config, log logger.Logger, pipe pipeline.Pipeline, sessions session.Store, engines *ai.Registry) *App {
	maxConcurrent := cfg.Performance.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &App{
		bot:      bot,
		cfg:      cfg,
		logger:   log,
		pipe:     pipe,
		sessions: sessions,
		engines:  engines,
		sem:      make(chan struct{}, maxConcurrent),
	}
}

// Run consumes updates until ctx is cancelled, then waits for running
// jobs to finish.
func (a *App) Run(ctx context.Context) error {
	updates, err := a.bot.UpdatesViaLongPolling(ctx, nil)
	if err != nil {
		return fmt.Errorf("start long polling: %w", err)
	}
	a.logger.Info(ctx, "Bot is listening for updates")

	for update := range updates {
		a.dispatch(ctx, update)
	}

	a.wg.Wait()
	return nil
}

func (a *App) dispatch(ctx context.Context, update telego.Update) {
	switch {
	case update.CallbackQuery != nil:
		a.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		msg := update.Message
		if item, ok := mediaItem(msg); ok {
			a.wg.Add(1)
			go func() {
				defer a.wg.Done()
				a.sem <- struct{}{}
				defer func() { <-a.sem }()
				a.handleMedia(ctx, msg, item)
			}()
			return
		}
		a.handleText(ctx, msg)
	}
}
