package storage

import (
	"context"

	"github.com/polymaker/lp-bot/pkg/types"
	"go.uber.org/zap"
)

// ConsoleStorage implements Storage by logging instead of persisting.
// The default when no database is configured.
type ConsoleStorage struct {
	logger *zap.Logger
}

// NewConsoleStorage creates a new console storage.
func NewConsoleStorage(logger *zap.Logger) *ConsoleStorage {
	logger.Info("console-storage-initialized")
	return &ConsoleStorage{
		logger: logger,
	}
}

// StoreScan logs a one-line summary per ranked market.
func (c *ConsoleStorage) StoreScan(ctx context.Context, markets []*types.Market) error {
	for i, m := range markets {
		c.logger.Info("scan-result",
			zap.Int("rank", i+1),
			zap.String("question", m.Question),
			zap.Float64("daily-reward", m.DailyReward),
			zap.Float64("reward-per-dollar", m.RewardPerDollar),
			zap.Float64("competition-score", m.CompetitionScore),
			zap.Float64("risk-score", m.RiskScore))
	}
	return nil
}

// StoreAlert logs the alert.
func (c *ConsoleStorage) StoreAlert(ctx context.Context, pos *types.Position) error {
	c.logger.Warn("fill-alert",
		zap.String("position-id", pos.ID),
		zap.String("question", pos.Market.Question),
		zap.String("risk-level", pos.RiskLevel.String()),
		zap.Float64("midpoint", pos.LastMidpoint),
		zap.Float64("bid", pos.OurBidPrice),
		zap.Float64("ask", pos.OurAskPrice))
	return nil
}

// Close is a no-op for console storage.
func (c *ConsoleStorage) Close() error {
	c.logger.Info("closing-console-storage")
	return nil
}
