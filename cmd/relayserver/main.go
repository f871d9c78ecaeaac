package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/eurotax/satoshi-bot/internal/collector"
	"github.com/eurotax/satoshi-bot/internal/config"
	"github.com/eurotax/satoshi-bot/internal/metrics"
	"github.com/eurotax/satoshi-bot/internal/notifier"
	"github.com/eurotax/satoshi-bot/internal/relay"
	"github.com/eurotax/satoshi-bot/internal/retry"
	"github.com/eurotax/satoshi-bot/internal/server"
)

// Will be set by go-build
var Version string

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	version := Version
	if version == "" {
		version = "dev"
	}
	logrus.Infof("relay server %s starting...", version)

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("config validation: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logrus.SetLevel(level)
	}

	// Telegram notifier; absent credentials degrade telegram_alert to a
	// structured "not configured" result instead of refusing to start.
	tn := notifier.NewTelegramNotifier(cfg.Telegram.APIBase, cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	if !tn.IsConfigured() {
		logrus.Warn("Telegram credentials absent; telegram_alert will report not configured")
	}

	pairs := collector.NewScreenerFetcher(cfg.Screener.BaseURL, cfg.Proxy)
	tickers := collector.NewBybitFetcher(cfg.Bybit.BaseURL, cfg.Proxy)

	// Single attempt unless retries are opted in.
	var policy retry.Policy
	if cfg.Telegram.SendRetries > 0 {
		policy = retry.Policy{
			MaxAttempts: cfg.Telegram.SendRetries + 1,
			BaseDelay:   time.Second,
			MaxDelay:    30 * time.Second,
			Jitter:      0.2,
		}
		logrus.Infof("telegram delivery retries enabled: %d", cfg.Telegram.SendRetries)
	}

	registry := relay.NewRegistry(
		&relay.PairOp{Fetcher: pairs},
		&relay.AlertOp{Sender: tn, Policy: policy},
		&relay.TickerOp{Fetcher: tickers},
	)
	logrus.Infof("tools registered: %v", registry.Names())

	gin.SetMode(gin.ReleaseMode)
	handler := server.NewRelayHandler(registry, tn, metrics.NewMetrics())
	router := server.NewRelayRouter(handler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logrus.Infof("relay server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logrus.Info("shutdown signal received, stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("shutdown: %v", err)
	}
	logrus.Info("relay server stopped")
}
