package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Purchase drones, asteroids and cargo upgrades",
	}

	cmd.AddCommand(newShopDroneCmd())
	cmd.AddCommand(newShopAsteroidCmd())
	cmd.AddCommand(newShopCargoCmd())

	return cmd
}

func newShopDroneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drone <id>",
		Short: "Buy a drone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			droneID, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			req := map[string]any{
				"player_id": cfg.PlayerID,
				"drone_id":  droneID,
			}
			var result Player

			if err := client.Post("/api/v1/buy-drone", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newShopAsteroidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "asteroid <id>",
		Short: "Buy an asteroid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asteroidID, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			req := map[string]any{
				"player_id":   cfg.PlayerID,
				"asteroid_id": asteroidID,
			}
			var result Player

			if err := client.Post("/api/v1/buy-asteroid", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newShopCargoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cargo <level>",
		Short: "Upgrade the cargo hold to the given level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			req := map[string]any{
				"player_id": cfg.PlayerID,
				"level":     level,
			}
			var result Player

			if err := client.Post("/api/v1/upgrade-cargo", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
