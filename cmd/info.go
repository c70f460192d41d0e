package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	statusrender "github.com/bnema/guard-limiter-cli/internal/adapters/render/status"
	"github.com/spf13/cobra"
)

type systemInfoJSON struct {
	CPUModel        string  `json:"cpu_model"`
	CPUCores        int     `json:"cpu_cores"`
	CPULogicalCores int     `json:"cpu_logical_cores"`
	OSName          string  `json:"os_name"`
	OSVersion       string  `json:"os_version"`
	IsAdmin         bool    `json:"is_admin"`
	TotalMemoryGB   float64 `json:"total_memory_gb"`
}

func newInfoCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the agent's view of the system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), app.callTimeout())
			defer cancel()

			info, err := app.gateway.GetSystemInfo(ctx)
			if err != nil {
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(systemInfoJSON{
					CPUModel:        info.CPUModel,
					CPUCores:        info.CPUCores,
					CPULogicalCores: info.CPULogicalCores,
					OSName:          info.OSName,
					OSVersion:       info.OSVersion,
					IsAdmin:         info.IsAdmin,
					TotalMemoryGB:   info.TotalMemoryGB,
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("encode system info: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}

			output, err := statusrender.RenderSystemInfo(info)
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
