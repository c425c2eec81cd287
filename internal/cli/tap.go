package cli

import (
	"github.com/spf13/cobra"
)

func newTapCmd() *cobra.Command {
	var clicks, energyAfter int
	var cargoAfter float64

	cmd := &cobra.Command{
		Use:   "tap",
		Short: "Submit a batch of manual taps",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"player_id":    cfg.PlayerID,
				"clicks":       clicks,
				"energy_after": energyAfter,
				"cargo_after":  cargoAfter,
			}
			var result Player

			if err := client.Post("/api/v1/tap-batch", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&clicks, "clicks", 0, "Taps performed since the last batch (required)")
	cmd.Flags().IntVar(&energyAfter, "energy-after", 0, "Energy remaining after the batch (required)")
	cmd.Flags().Float64Var(&cargoAfter, "cargo-after", 0, "Cargo balance after the batch (required)")
	_ = cmd.MarkFlagRequired("clicks")
	_ = cmd.MarkFlagRequired("energy-after")
	_ = cmd.MarkFlagRequired("cargo-after")

	return cmd
}
