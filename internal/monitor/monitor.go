package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/polymaker/lp-bot/internal/markets"
	"github.com/polymaker/lp-bot/internal/notify"
	"github.com/polymaker/lp-bot/pkg/types"
	"go.uber.org/zap"
)

// Monitor assesses fill risk on open positions each tick and raises
// operator alerts for positions in the critical or warning bands.
type Monitor struct {
	midpoints markets.MidpointSource
	notifier  notify.Notifier
	threshold float64
	logger    *zap.Logger
}

// Config holds monitor configuration.
type Config struct {
	// FillAlertThreshold is the midpoint-to-quote distance below which
	// a position is considered critical.
	FillAlertThreshold float64
}

// New creates a fill-risk monitor.
func New(
	midpoints markets.MidpointSource,
	notifier notify.Notifier,
	cfg *Config,
	logger *zap.Logger,
) *Monitor {
	return &Monitor{
		midpoints: midpoints,
		notifier:  notifier,
		threshold: cfg.FillAlertThreshold,
		logger:    logger,
	}
}

// Check refreshes the midpoint of every position, reclassifies its risk
// level in place, and alerts on positions that are at or near a fill.
// Positions whose midpoint cannot be fetched fall back to the last
// known value; positions with no known midpoint at all are skipped.
func (m *Monitor) Check(ctx context.Context, positions []*types.Position) {
	start := time.Now()
	counts := make(map[types.RiskLevel]int)

	for _, pos := range positions {
		mid, err := m.midpoints.GetMidpoint(ctx, pos.Market.TokenIDYes)
		if err != nil {
			if pos.LastMidpoint <= 0 {
				m.logger.Warn("midpoint-unavailable-skipping-position",
					zap.String("position-id", pos.ID),
					zap.String("market", pos.Market.Question),
					zap.Error(err))
				continue
			}
			mid = pos.LastMidpoint
			m.logger.Warn("midpoint-stale-using-last-known",
				zap.String("position-id", pos.ID),
				zap.Float64("last-midpoint", mid),
				zap.Error(err))
		} else {
			pos.LastMidpoint = mid
		}

		level := ClassifyRisk(mid, pos.OurBidPrice, pos.OurAskPrice, m.threshold)
		pos.RiskLevel = level
		counts[level]++

		if level.Alerting() {
			m.alert(ctx, pos, mid, level)
		}
	}

	for _, level := range []types.RiskLevel{types.RiskCritical, types.RiskWarning, types.RiskWatch, types.RiskSafe} {
		PositionsByRiskLevel.WithLabelValues(level.String()).Set(float64(counts[level]))
	}
	MonitorTicksTotal.Inc()

	m.logger.Info("fill-risk-check-complete",
		zap.Int("positions", len(positions)),
		zap.Int("critical", counts[types.RiskCritical]),
		zap.Int("warning", counts[types.RiskWarning]),
		zap.Int("watch", counts[types.RiskWatch]),
		zap.Int("safe", counts[types.RiskSafe]),
		zap.Duration("duration", time.Since(start)))
}

// alert delivers a fill-risk notification. Delivery failures are logged
// and swallowed so a broken notifier never stalls the monitoring loop.
func (m *Monitor) alert(ctx context.Context, pos *types.Position, mid float64, level types.RiskLevel) {
	msg := fmt.Sprintf(
		"<b>FILL RISK %s</b>\n%s\nmid %.3f | bid %.3f | ask %.3f",
		level, pos.Market.Question, mid, pos.OurBidPrice, pos.OurAskPrice)

	if err := m.notifier.Notify(ctx, msg); err != nil {
		m.logger.Warn("fill-risk-alert-failed",
			zap.String("position-id", pos.ID),
			zap.Error(err))
		return
	}
	AlertsSentTotal.WithLabelValues(level.String()).Inc()
}
