package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"davenews/api"
	"davenews/config"
	"davenews/feed"
	"davenews/logger"
	"davenews/newsclient"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	configPath := flag.String("config", "", "Optional config file (yaml, json, toml or env)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	client := newsclient.New(newsclient.Config{
		APIKey:  cfg.News.APIKey,
		BaseURL: cfg.News.BaseURL,
		Country: cfg.News.Country,
		Timeout: cfg.News.HTTPTimeout,
	}, newsclient.WithLogger(log.Named("newsclient")))

	if err := client.Validate(); err != nil {
		log.Warn("news API key missing; every fetch will fail until it is set", zap.Error(err))
	}

	view := feed.NewView(client, log.Named("feed"))
	server := api.NewServer(view, cfg.Addr(), log.Named("api"))

	if err := server.Start(); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
	if err := server.StartCron(cfg.Server.RefreshSchedule); err != nil {
		log.Fatal("failed to schedule refresh", zap.Error(err))
	}

	log.Info("feed server ready",
		zap.String("addr", cfg.Addr()),
		zap.Strings("routes", []string{
			"GET  /",
			"POST /search",
			"POST /category/:name",
			"GET  /api/feed",
			"POST /api/feed/category",
			"POST /api/feed/search",
			"POST /api/feed/refresh",
			"GET  /api/categories",
			"GET  /api/health",
		}),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}
