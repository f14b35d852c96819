package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/polymaker/lp-bot/internal/app"
	"github.com/polymaker/lp-bot/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the liquidity rewards bot",
	Long: `Starts the liquidity rewards bot, which will:
1. Scan the Gamma API for reward-bearing markets
2. Rank them by reward per dollar of capital
3. Rest two-sided quotes on the top markets
4. Monitor fill risk every refresh interval and rescan hourly

Use --dry-run to compute and log quotes without placing orders.`,
	Args: cobra.NoArgs,
	RunE: runBot,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("dry-run", false, "Scan and monitor without placing orders")
}

func runBot(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	application, err := app.New(cfg, logger, &app.Options{
		DryRun: dryRun,
	})
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}

	err = application.Run()
	if err != nil {
		return fmt.Errorf("run app: %w", err)
	}

	return nil
}
