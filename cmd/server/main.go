package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/auranode/auranode/internal/config"
	"github.com/auranode/auranode/internal/panel"
	"github.com/auranode/auranode/internal/services/account"
	"github.com/auranode/auranode/internal/session"
	"github.com/auranode/auranode/internal/web"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found; relying on existing environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create the session store
	var sessions session.Store
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		redisCfg := session.DefaultRedisConfig()
		redisCfg.URL = cfg.RedisURL
		redisStore, err := session.NewRedisStore(redisCfg)
		if err != nil {
			logger.Error("failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() { _ = redisStore.Close() }()
		sessions = redisStore
	default:
		sessions = session.NewMemoryStore()
	}

	panelClient := panel.New(cfg.PanelURL, cfg.PanelAPIKey, logger)
	accounts := account.New(panelClient, sessions, account.Config{
		PanelURL:   cfg.PanelURL,
		SessionTTL: cfg.SessionTTL,
	}, logger)
	codec := session.NewCodec(cfg.SessionSecret)

	router := web.NewRouter(web.RouterConfig{
		Logger:    logger,
		Accounts:  accounts,
		Codec:     codec,
		StaticDir: findStaticDir(),
	})

	serverConfig := web.DefaultServerConfig()
	serverConfig.Port = cfg.Port
	server := web.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// findStaticDir looks for the static files directory.
func findStaticDir() string {
	candidates := []string{
		"internal/web/static",
		"./internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	return ""
}
