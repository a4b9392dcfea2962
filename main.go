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

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/community-support-hub/server/internal/core"
	"github.com/community-support-hub/server/internal/hub/api"
	"github.com/community-support-hub/server/internal/hub/catalog"
	"github.com/community-support-hub/server/internal/hub/graph"
	"github.com/community-support-hub/server/internal/hub/intake"
	"github.com/community-support-hub/server/internal/hub/model"
	"github.com/community-support-hub/server/internal/hub/repo"
	logx "github.com/community-support-hub/server/pkg/logger"
	pkgredis "github.com/community-support-hub/server/pkg/redis"
)

// AppConfig defines all configurable parameters of the hub server,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Infrastructure
	Redis  pkgredis.Config
	Server model.ServerConfig

	// Hub configs
	Catalog      model.CatalogConfig
	Conversation model.ConversationConfig
	Intake       model.IntakeConfig
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	envErr := godotenv.Load(".env")

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to process environment config: %v\n", err)
		os.Exit(1)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(cfg.Environment)})
	if envErr != nil {
		logx.Warn().Err(envErr).Msg("Could not load .env file")
	}

	if err := run(ctx, cfg); err != nil {
		logx.Fatal().Err(err).Msg("Server stopped with error")
	}
}

func run(ctx context.Context, cfg AppConfig) error {
	cat := catalog.New(nil)
	if cfg.Catalog.FetchEnabled && cfg.Catalog.RemoteURL != "" {
		// the bundled catalog serves until the one remote merge lands
		go cat.Load(ctx, catalog.NewHTTPFetcher(cfg.Catalog.RemoteURL, cfg.Catalog.FetchTimeout))
	}

	conversationRepo, closeRepo, err := newConversationRepo(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	runner, err := graph.BuildTurnGraph(ctx, graph.Config{
		Catalog:          cat,
		Conversation:     cfg.Conversation,
		ConversationRepo: conversationRepo,
	})
	if err != nil {
		return fmt.Errorf("build turn graph: %w", err)
	}

	delivery, err := newDelivery(ctx, cfg.Intake)
	if err != nil {
		return err
	}

	e := api.NewServer(api.NewHandler(cat, runner, intake.NewService(delivery)))

	errCh := make(chan error, 1)
	go func() {
		logx.Info().Str("addr", cfg.Server.Addr).Msg("Community support hub listening")
		if err := e.Start(cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logx.Info().Msg("Shutting down")
	return e.Shutdown(shutdownCtx)
}

func newConversationRepo(cfg AppConfig) (model.ConversationRepository, func(), error) {
	if !cfg.Redis.Enabled() {
		logx.Info().Dur("ttl", cfg.Conversation.TTL).Msg("REDIS_URL not set, keeping sessions in memory")
		return repo.NewMemoryConversationRepository(cfg.Conversation.TTL), func() {}, nil
	}

	rdb, err := cfg.Redis.New()
	if err != nil {
		return nil, nil, fmt.Errorf("initialise redis client: %w", err)
	}
	logx.Info().Msg("Connected to Redis successfully")
	return repo.NewRedisConversationRepository(rdb, cfg.Conversation.TTL), func() { _ = rdb.Close() }, nil
}

func newDelivery(ctx context.Context, cfg model.IntakeConfig) (intake.Delivery, error) {
	switch cfg.Delivery {
	case "ses":
		d, err := intake.NewSESDeliveryFromConfig(ctx, cfg.SES.Region, cfg.SES.Sender, cfg.SES.Recipient)
		if err != nil {
			return nil, fmt.Errorf("ses delivery: %w", err)
		}
		return d, nil
	case "", "http":
		return intake.NewHTTPDelivery(cfg.Endpoint, cfg.Timeout), nil
	}
	return nil, fmt.Errorf("unknown INTAKE_DELIVERY %q", cfg.Delivery)
}
