package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/polymaker/lp-bot/pkg/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var cancelOrdersCmd = &cobra.Command{
	Use:   "cancel-orders",
	Short: "Cancel all open orders for the configured account",
	Long: `Fetches every live order for the configured account and cancels
them one by one.

Use --dry-run to preview orders without canceling.

Examples:
  # Preview orders without canceling
  lp-bot cancel-orders --dry-run

  # Cancel all orders immediately
  lp-bot cancel-orders`,
	Args: cobra.NoArgs,
	RunE: runCancelOrders,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(cancelOrdersCmd)
	cancelOrdersCmd.Flags().Bool("dry-run", false, "Preview orders without canceling")
}

func runCancelOrders(cmd *cobra.Command, args []string) error {
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

	client, err := newOrderClient(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	orders, err := client.ListOpenOrders(ctx)
	if err != nil {
		return fmt.Errorf("list open orders: %w", err)
	}

	if len(orders) == 0 {
		fmt.Println("No open orders found.")
		return nil
	}

	renderOrdersTable(orders)
	fmt.Printf("\nTotal: %d orders, $%.2f locked\n", len(orders), lockedCapital(orders))

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		fmt.Println("\n[DRY RUN] No orders were canceled.")
		return nil
	}

	fmt.Println("\nCanceling all orders...")

	canceled := 0
	failed := 0
	for _, order := range orders {
		if err := client.CancelOrder(ctx, order.OrderID); err != nil {
			failed++
			logger.Warn("cancel-failed",
				zap.String("order-id", order.OrderID),
				zap.Error(err))
			continue
		}
		canceled++
	}

	fmt.Printf("\nCanceled: %d orders\n", canceled)
	if failed > 0 {
		fmt.Printf("Failed:   %d orders (see log for details)\n", failed)
	}

	return nil
}
