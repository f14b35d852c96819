package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/polymaker/lp-bot/pkg/config"
	"github.com/polymaker/lp-bot/pkg/types"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show all open orders for the configured account",
	Long: `Fetches the live orders resting on the CLOB for the configured
account and prints them as a table, with the total capital locked.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	orders, err := client.ListOpenOrders(ctx)
	if err != nil {
		return fmt.Errorf("list open orders: %w", err)
	}

	if len(orders) == 0 {
		fmt.Println("No open orders.")
		return nil
	}

	renderOrdersTable(orders)
	fmt.Printf("\nTotal: %d orders, $%.2f locked\n", len(orders), lockedCapital(orders))

	return nil
}

func renderOrdersTable(orders []types.OrderInfo) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Order ID", "Market", "Side", "Price", "Size", "Matched", "Status")

	for _, order := range orders {
		table.Append(
			shortID(order.OrderID),
			shortID(order.Market),
			order.Side,
			fmt.Sprintf("%.3f", order.Price),
			fmt.Sprintf("%.0f", order.OriginalSize),
			fmt.Sprintf("%.0f", order.SizeMatched),
			order.Status,
		)
	}

	table.Render()
}

// lockedCapital sums the USDC still resting across open BUY orders.
func lockedCapital(orders []types.OrderInfo) float64 {
	total := 0.0
	for _, order := range orders {
		remaining := order.OriginalSize - order.SizeMatched
		if remaining > 0 {
			total += order.Price * remaining
		}
	}
	return total
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12] + "..."
	}
	return id
}
