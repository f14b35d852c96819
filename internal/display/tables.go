// Package display renders scan results and position status as console
// tables for the scan and dashboard commands.
package display

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/polymaker/lp-bot/pkg/types"
)

// Renderer writes human-readable tables to a writer.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer for the given writer.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// NewConsoleRenderer creates a renderer writing to stdout.
func NewConsoleRenderer() *Renderer {
	return &Renderer{out: os.Stdout}
}

// RenderMarkets prints ranked markets, best opportunity first.
func (r *Renderer) RenderMarkets(markets []*types.Market) {
	if len(markets) == 0 {
		fmt.Fprintf(r.out, "[%s] no eligible reward markets found\n", time.Now().Format("15:04:05"))
		return
	}

	fmt.Fprintf(r.out, "\n[%s] %d eligible reward markets\n",
		time.Now().Format("15:04:05"), len(markets))

	table := tablewriter.NewWriter(r.out)
	table.Header("#", "Market", "Rwd/day", "Spread", "Mid", "Days", "Comp", "Risk", "Rwd/$")

	for i, m := range markets {
		table.Append(
			fmt.Sprintf("%d", i+1),
			truncate(m.Question, 40),
			fmt.Sprintf("$%.2f", m.DailyReward),
			fmt.Sprintf("%.3f", m.MaxSpread),
			fmt.Sprintf("%.3f", m.Midpoint),
			fmt.Sprintf("%.0f", m.DaysToResolution),
			fmt.Sprintf("%.0f", m.CompetitionScore),
			fmt.Sprintf("%.0f", m.RiskScore),
			fmt.Sprintf("%.4f", m.RewardPerDollar),
		)
	}

	table.Render()
}

// RenderPositions prints open positions ordered by fill risk, most at
// risk first.
func (r *Renderer) RenderPositions(positions []*types.Position) {
	if len(positions) == 0 {
		fmt.Fprintf(r.out, "[%s] no open positions\n", time.Now().Format("15:04:05"))
		return
	}

	sorted := make([]*types.Position, len(positions))
	copy(sorted, positions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return riskSortKey(sorted[i].RiskLevel) < riskSortKey(sorted[j].RiskLevel)
	})

	fmt.Fprintf(r.out, "\n[%s] %d open positions\n",
		time.Now().Format("15:04:05"), len(sorted))

	table := tablewriter.NewWriter(r.out)
	table.Header("Risk", "Market", "Bid", "Ask", "Mid", "Size", "Placed")

	for _, p := range sorted {
		midLabel := "-"
		if p.LastMidpoint > 0 {
			midLabel = fmt.Sprintf("%.3f", p.LastMidpoint)
		}

		table.Append(
			p.RiskLevel.String(),
			truncate(p.Market.Question, 40),
			fmt.Sprintf("%.3f", p.OurBidPrice),
			fmt.Sprintf("%.3f", p.OurAskPrice),
			midLabel,
			fmt.Sprintf("%.0f", p.Size),
			p.PlacedAt.Format("01-02 15:04"),
		)
	}

	table.Render()
}

// riskSortKey orders levels most severe first, with never-checked
// positions at the bottom.
func riskSortKey(level types.RiskLevel) int {
	if level == types.RiskUnknown {
		return int(types.RiskSafe) + 1
	}
	return int(level)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
