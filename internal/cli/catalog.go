package cli

import (
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the static game tables",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "drones",
		Short: "List the drone table",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Drone
			if err := client.Get("/api/v1/catalog/drones", &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "asteroids",
		Short: "List the asteroid table",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Asteroid
			if err := client.Get("/api/v1/catalog/asteroids", &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "cargo-tiers",
		Short: "List the cargo tier table",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []CargoTier
			if err := client.Get("/api/v1/catalog/cargo-tiers", &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	return cmd
}
