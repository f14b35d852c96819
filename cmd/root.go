package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "lp-bot",
	Short: "Polymarket liquidity rewards bot",
	Long: `Polymarket liquidity rewards bot that scans for reward-bearing
markets, ranks them by reward per dollar of capital, rests two-sided
quotes at the edge of the reward band, and monitors open positions for
fill risk.

The bot polls the Gamma API for reward markets, places maker orders via
the CLOB API, and rescans hourly to stay on the best opportunities.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
