package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ignite/campaign-chat/internal/api"
	"github.com/ignite/campaign-chat/internal/config"
	"github.com/ignite/campaign-chat/internal/pkg/latency"
	"github.com/ignite/campaign-chat/internal/pkg/logger"
	"github.com/ignite/campaign-chat/internal/service/campaign"
	"github.com/ignite/campaign-chat/internal/service/datasource"
)

const shutdownTimeout = 10 * time.Second

// listen binds the server port up front so a stale process holding it is
// reported clearly instead of surfacing as a generic serve error.
func listen(host string, port int) (net.Listener, error) {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("port %d is already in use (addr %s): %v\n"+
			"  Hint: Run 'lsof -i :%d' to find the blocking process", port, addr, err, port)
	}
	return ln, nil
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config/config.yaml"
}

func main() {
	cfg, err := config.LoadFromEnv(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	level := cfg.Log.Level
	if cfg.IsDebug() && cfg.IsDevelopment() {
		level = "debug"
	}
	logger.Init(logger.Config{Level: level, Format: cfg.Log.Format, RedactSecrets: true})

	if err := run(cfg); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Pre-flight check: verify the target port is available
	host := cfg.Server.GetHost()
	ln, err := listen(host, cfg.Server.Port)
	if err != nil {
		return fmt.Errorf("pre-flight check failed: %w", err)
	}
	logger.Info("pre-flight check passed", "addr", ln.Addr().String())

	delayer := latency.TimerDelayer{}

	registry := datasource.NewRegistry()
	sources := datasource.NewService(registry, delayer, cfg.Simulation.ConnectDelay())

	rng := campaign.NewRand(cfg.Simulation.Seed)
	generator := campaign.NewGenerator(rng)
	renderer := campaign.NewRenderer()
	minDelay, maxDelay := cfg.Simulation.ChatDelay()
	chat := campaign.NewService(generator, renderer, delayer, rng, campaign.LatencyConfig{
		Before: latency.Range{Min: minDelay, Max: maxDelay},
		After:  latency.Fixed(cfg.Simulation.PostDelay()),
	})

	handlers := api.NewHandlers(sources, chat)
	health := api.NewHealthChecker(registry, renderer)
	server := api.NewServer(cfg, handlers, health)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server",
			"addr", ln.Addr().String(),
			"environment", cfg.Environment,
			"cors_origins", cfg.CORS.AllowedOrigins,
		)
		return server.Serve(ln)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("server stopped")
	return nil
}
