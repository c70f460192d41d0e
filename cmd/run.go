package cmd

import (
	"context"

	"github.com/bnema/guard-limiter-cli/internal/adapters/dashboard"
	"github.com/bnema/guard-limiter-cli/internal/application"
	"github.com/bnema/guard-limiter-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	var aggressive bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the live monitoring dashboard",
		Long:  "Opens the interactive dashboard. Starting monitoring from it arms the agent timer and enforces restriction every 60 seconds until stopped.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			events := application.NewEventLog(app.cfg.LogCapacity, nil)
			controller := application.NewSessionController(app.gateway, events, app.logger, app.callTimeout())
			poller := application.NewPerfPoller(app.gateway, app.logger, 0)
			facade := application.NewFacade(controller, poller, events)

			if aggressive || app.cfg.Aggressive {
				if err := facade.SetMode(domain.ModeAggressive); err != nil {
					return err
				}
			}

			// Best effort: a dead agent should not keep the dashboard from
			// opening, it just loses the system info header.
			if info, err := app.gateway.GetSystemInfo(ctx); err == nil {
				facade.SetSystemInfo(info)
			} else {
				app.logger.Warn("fetch system info", "error", err)
			}

			go controller.Run(ctx)
			go poller.Run(ctx)

			return dashboard.Run(ctx, facade)
		},
	}

	cmd.Flags().BoolVar(&aggressive, "aggressive", false, "Use aggressive restriction mode for this session")

	return cmd
}
