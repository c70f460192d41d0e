package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	statusrender "github.com/bnema/guard-limiter-cli/internal/adapters/render/status"
	"github.com/bnema/guard-limiter-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newOnceCmd(app *app) *cobra.Command {
	var aggressive bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "once",
		Short: "Run a single enforcement pass without a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), app.callTimeout())
			defer cancel()

			useAggressive := aggressive || app.cfg.Aggressive

			var status domain.ProcessStatus
			restrict := func(ctx context.Context) error {
				var err error
				status, err = app.gateway.RestrictProcesses(ctx, useAggressive)
				return err
			}

			if asJSON {
				if err := restrict(ctx); err != nil {
					return err
				}

				data, err := json.MarshalIndent(statusJSON(status), "", "  ")
				if err != nil {
					return fmt.Errorf("encode enforcement result: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}

			if err := runAgentCallSpinner(ctx, cmd.ErrOrStderr(), "Restricting tracked processes...", restrict); err != nil {
				return err
			}

			output, err := statusrender.RenderEnforcement(status)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().BoolVar(&aggressive, "aggressive", false, "Use aggressive restriction mode")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

type processReportJSON struct {
	Name       string `json:"name"`
	Found      bool   `json:"found"`
	Restricted bool   `json:"restricted"`
}

type enforcementJSON struct {
	TargetCore *int                `json:"target_core"`
	Processes  []processReportJSON `json:"processes"`
	Message    string              `json:"message"`
}

func statusJSON(status domain.ProcessStatus) enforcementJSON {
	out := enforcementJSON{
		TargetCore: status.TargetCore,
		Processes:  make([]processReportJSON, 0, len(status.Reports)),
		Message:    status.Message,
	}
	for _, report := range status.Reports {
		out.Processes = append(out.Processes, processReportJSON{
			Name:       report.Process.Name,
			Found:      report.Found,
			Restricted: report.Restricted,
		})
	}
	return out
}
