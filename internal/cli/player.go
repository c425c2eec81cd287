package cli

import (
	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player state commands",
	}

	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerCollectCmd())

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the player's current state",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get("/api/v1/players/"+cfg.PlayerID, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerCollectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collect",
		Short: "Move mined cargo into the CCC balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"player_id": cfg.PlayerID}
			var result Player

			if err := client.Post("/api/v1/collect-cargo", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
