package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cactus-tim/ml-project/internal/config"
	"github.com/cactus-tim/ml-project/internal/history"
	"github.com/cactus-tim/ml-project/internal/registry"
	"github.com/cactus-tim/ml-project/internal/session"
	"github.com/cactus-tim/ml-project/internal/survey"
	"github.com/cactus-tim/ml-project/internal/transport"
)

// #region main
func main() {
	cfg, err := config.Load(os.Getenv("SURVEY_CONFIG"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.TelegramToken == "" {
		log.Fatal("TOKEN_API is not set")
	}

	// The registry must be complete before the first message is accepted.
	reg, err := registry.Load(cfg.ModelPath)
	if err != nil {
		log.Fatalf("model registry: %v", err)
	}
	log.Printf("[BOT] registry loaded: %d classifiers from %s", len(reg.Names()), cfg.ModelPath)

	hist, err := history.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("history store: %v", err)
	}
	defer hist.Close()

	store := session.NewStore()
	machine := survey.NewMachine(store, reg, hist)

	bot, err := transport.NewTelegramBot(cfg.TelegramToken, cfg.PollTimeoutSeconds, cfg.Workers, machine.HandleMessage)
	if err != nil {
		log.Fatalf("telegram: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sweepLoop(ctx, store, cfg.SweepEvery(), cfg.SweepAfter())

	log.Printf("[BOT] ready: db=%s workers=%d", cfg.DBPath, cfg.Workers)
	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("bot: %v", err)
	}
	log.Println("Bot stopped!")
}

// #endregion main

// #region sweeper
func sweepLoop(ctx context.Context, store *session.Store, every, maxAge time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if dropped := store.Sweep(maxAge); dropped > 0 {
				log.Printf("[BOT] swept %d abandoned sessions", dropped)
			}
		}
	}
}

// #endregion sweeper
