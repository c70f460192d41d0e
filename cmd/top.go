package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	statusrender "github.com/bnema/guard-limiter-cli/internal/adapters/render/status"
	"github.com/spf13/cobra"
)

type perfSampleJSON struct {
	PID        int     `json:"pid"`
	Name       string  `json:"name"`
	CPUPercent float64 `json:"cpu_usage"`
	MemoryMB   float64 `json:"memory_mb"`
}

func newTopCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show one performance sample of the tracked processes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), app.callTimeout())
			defer cancel()

			samples, err := app.gateway.GetProcessPerformance(ctx)
			if err != nil {
				return err
			}

			if asJSON {
				out := make([]perfSampleJSON, 0, len(samples))
				for _, sample := range samples {
					out = append(out, perfSampleJSON{
						PID:        sample.PID,
						Name:       sample.Name,
						CPUPercent: sample.CPUPercent,
						MemoryMB:   sample.MemoryMB,
					})
				}
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return fmt.Errorf("encode performance samples: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}

			output, err := statusrender.RenderPerformance(samples)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
