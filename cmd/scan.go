package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/polymaker/lp-bot/internal/discovery"
	"github.com/polymaker/lp-bot/internal/display"
	"github.com/polymaker/lp-bot/internal/scanner"
	"github.com/polymaker/lp-bot/pkg/config"
	"github.com/polymaker/lp-bot/pkg/types"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan reward markets once and print the ranking",
	Long: `Runs one full market scan against the Gamma API, ranks the
reward-eligible markets by reward per dollar, and prints the result as a
table. No orders are placed.

Examples:
  # Rank everything that passes the thresholds
  lp-bot scan

  # Show only the top 10
  lp-bot scan --limit 10`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().Int("limit", 0, "Show only the top N markets (0 = all)")
}

func runScan(cmd *cobra.Command, args []string) error {
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

	s := scanner.New(&scanner.Config{
		Client: discovery.NewClient(cfg.GammaAPIURL, cfg.ScanPageLimit, logger),
		Thresholds: scanner.Thresholds{
			MinDays:        cfg.MinDaysToResolution,
			MinDailyReward: cfg.MinDailyReward,
			MaxCompetition: cfg.MaxCompetitionScore,
		},
		Logger: logger,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	ranked, err := s.Scan(ctx)
	if err != nil {
		return fmt.Errorf("scan markets: %w", err)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	display.NewConsoleRenderer().RenderMarkets(marketPtrs(ranked))

	return nil
}

func marketPtrs(markets []types.Market) []*types.Market {
	out := make([]*types.Market, len(markets))
	for i := range markets {
		out[i] = &markets[i]
	}
	return out
}
