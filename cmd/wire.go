package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	configadapter "github.com/bnema/guard-limiter-cli/internal/adapters/config"
	"github.com/bnema/guard-limiter-cli/internal/adapters/gateway/httprpc"
	"github.com/bnema/guard-limiter-cli/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	cfg     configadapter.Config
	gateway ports.EnforcementGateway
	logger  *slog.Logger
}

func wireApp() (*app, error) {
	cfg, err := configadapter.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	return &app{
		cfg:     cfg,
		gateway: httprpc.NewClient(cfg.GatewayURL, http.DefaultClient),
		logger:  logger,
	}, nil
}

func logLevel() slog.Level {
	if os.Getenv("GL_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

func (a *app) callTimeout() time.Duration {
	if a.cfg.CallTimeout > 0 {
		return a.cfg.CallTimeout
	}
	return configadapter.DefaultCallTimeout
}
