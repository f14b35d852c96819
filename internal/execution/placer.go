package execution

import (
	"context"

	"github.com/polymaker/lp-bot/pkg/types"
	"go.uber.org/zap"
)

// PlaceQuotes submits both sides of a quote plan: a BUY on the YES token
// at the bid price and a BUY on the NO token at the complement price.
// Each side fails independently; the result records whatever placed.
func (c *OrderClient) PlaceQuotes(ctx context.Context, market *types.Market, plan *types.QuotePlan) *types.QuoteResult {
	result := &types.QuoteResult{}

	result.OrderIDYes, result.ErrYes = c.SubmitOrder(ctx, market.TokenIDYes, plan.BidPrice, plan.BidSize)
	if result.ErrYes != nil {
		c.logger.Warn("yes-side-placement-failed",
			zap.String("market", market.Question),
			zap.Float64("price", plan.BidPrice),
			zap.Error(result.ErrYes))
	}

	result.OrderIDNo, result.ErrNo = c.SubmitOrder(ctx, market.TokenIDNo, plan.NoPrice, plan.AskSize)
	if result.ErrNo != nil {
		c.logger.Warn("no-side-placement-failed",
			zap.String("market", market.Question),
			zap.Float64("price", plan.NoPrice),
			zap.Error(result.ErrNo))
	}

	return result
}
