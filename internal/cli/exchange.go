package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newExchangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Currency exchange commands",
	}

	cmd.AddCommand(newExchangeConvertCmd("ccc-to-cs", "Convert CCC to CS (100 CCC = 1 CS)"))
	cmd.AddCommand(newExchangeConvertCmd("cs-to-ccc", "Convert CS to CCC (1 CS = 50 CCC)"))
	cmd.AddCommand(newExchangeHistoryCmd())

	return cmd
}

func newExchangeConvertCmd(direction, short string) *cobra.Command {
	return &cobra.Command{
		Use:   direction + " <amount>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return err
			}

			req := map[string]any{
				"player_id": cfg.PlayerID,
				"amount":    amount,
			}
			var result ExchangeResult

			if err := client.Post("/api/v1/exchange/"+direction, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newExchangeHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List the player's exchanges, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ExchangeHistory

			if err := client.Get("/api/v1/players/"+cfg.PlayerID+"/exchanges", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
