package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/DoyleJ11/lol-cooldown-tracker/internal/champion"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/clock"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/config"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/httpapi"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/hub"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/logging"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/notify"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := champion.NewFileSource(cfg.DataDir, log.Named("champion"))
	h := hub.NewHub(ctx, session.Options{
		Clock:    clock.Real{},
		Interval: cfg.TickInterval,
		Notifier: notify.NewLogNotifier(log.Named("notify")),
		Log:      log.Named("session"),
	})

	// Build the router *with* the hub injected
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.SetupRoutes(h, src, log.Named("http"), cfg.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", cfg.Addr), zap.Duration("tick", cfg.TickInterval))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		select {
		case h.Inbox() <- hub.ShutdownHub{}:
		case <-h.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
