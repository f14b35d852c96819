package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/polymaker/lp-bot/pkg/types"
	"go.uber.org/zap"
)

// rebalance runs one full rescan-and-requote cycle: cancel whatever is
// resting, scan for the current best markets, and quote the top N. The
// old positions are dropped even when the new scan comes back empty; a
// canceled order must never be tracked as live.
func (a *App) rebalance(ctx context.Context) error {
	start := time.Now()

	a.cancelPositions(ctx, a.PositionsSnapshot())
	a.setPositions(nil)

	ranked, err := a.scanner.Scan(ctx)
	if err != nil {
		return fmt.Errorf("scan markets: %w", err)
	}

	a.markScanned()
	a.healthChecker.SetReady(true)

	if err := a.store.StoreScan(ctx, marketPointers(ranked)); err != nil {
		a.logger.Warn("scan-store-failed", zap.Error(err))
	}

	if len(ranked) > a.cfg.MaxMarkets {
		ranked = ranked[:a.cfg.MaxMarkets]
	}

	positions := make([]*types.Position, 0, len(ranked))
	for i := range ranked {
		pos := a.quoteMarket(ctx, &ranked[i])
		if pos != nil {
			positions = append(positions, pos)
		}
	}
	a.setPositions(positions)

	RebalancesTotal.Inc()
	OpenPositionsGauge.Set(float64(len(positions)))

	a.logger.Info("rebalance-complete",
		zap.Int("ranked", len(ranked)),
		zap.Int("positions", len(positions)),
		zap.Duration("duration", time.Since(start)))

	if len(positions) > 0 {
		a.notifyBestEffort(fmt.Sprintf(
			"<b>Quotes updated</b>\nresting on %d market(s)", len(positions)))
	}

	return nil
}

// quoteMarket builds and places a two-sided quote on one market. In
// dry-run mode the position is tracked without order handles so the
// monitor still exercises the full risk path.
func (a *App) quoteMarket(ctx context.Context, market *types.Market) *types.Position {
	plan := a.strategist.BuildPlan(market, a.cfg.CapitalPerMarket)

	pos := &types.Position{
		ID:           uuid.New().String(),
		Market:       *market,
		OurBidPrice:  plan.BidPrice,
		OurAskPrice:  plan.AskPrice,
		Size:         plan.BidSize,
		PlacedAt:     time.Now(),
		LastMidpoint: market.Midpoint,
	}

	if a.orders == nil {
		a.logger.Info("quote-planned-dry-run",
			zap.String("market", market.Question),
			zap.Float64("bid", plan.BidPrice),
			zap.Float64("ask", plan.AskPrice),
			zap.Float64("no-price", plan.NoPrice))
		return pos
	}

	result := a.orders.PlaceQuotes(ctx, market, &plan)
	if !result.Placed() {
		a.logger.Error("quote-placement-failed",
			zap.String("market", market.Question),
			zap.NamedError("yes-error", result.ErrYes),
			zap.NamedError("no-error", result.ErrNo))
		return nil
	}

	pos.OrderIDYes = result.OrderIDYes
	pos.OrderIDNo = result.OrderIDNo

	if result.PartiallyPlaced() {
		a.logger.Warn("quote-partially-placed",
			zap.String("market", market.Question),
			zap.String("order-id-yes", result.OrderIDYes),
			zap.String("order-id-no", result.OrderIDNo))
	}

	return pos
}

// cancelPositions cancels every live order across the given positions.
// Each order handle gets exactly one attempt; a failure is logged and
// never blocks the remaining handles.
func (a *App) cancelPositions(ctx context.Context, positions []*types.Position) {
	if a.orders == nil {
		return
	}

	for _, pos := range positions {
		for _, orderID := range pos.OrderIDs() {
			if err := a.orders.CancelOrder(ctx, orderID); err != nil {
				a.logger.Error("order-cancel-failed",
					zap.String("position-id", pos.ID),
					zap.String("order-id", orderID),
					zap.Error(err))
			}
		}
	}
}

func (a *App) markScanned() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastScan = time.Now()
}

func marketPointers(markets []types.Market) []*types.Market {
	out := make([]*types.Market, len(markets))
	for i := range markets {
		out[i] = &markets[i]
	}
	return out
}
