// Package scanner turns raw Gamma market records into a ranked list of
// reward-farming opportunities: normalize each record defensively, score
// it, then filter and order by risk-adjusted attractiveness.
package scanner

import (
	"context"
	"fmt"
	"time"

	"github.com/polymaker/lp-bot/internal/discovery"
	"github.com/polymaker/lp-bot/pkg/types"
	"go.uber.org/zap"
)

// Scanner runs full market scans against the Gamma API.
type Scanner struct {
	client     *discovery.Client
	thresholds Thresholds
	logger     *zap.Logger
}

// Config holds scanner configuration.
type Config struct {
	Client     *discovery.Client
	Thresholds Thresholds
	Logger     *zap.Logger
}

// New creates a new scanner.
func New(cfg *Config) *Scanner {
	return &Scanner{
		client:     cfg.Client,
		thresholds: cfg.Thresholds,
		logger:     cfg.Logger,
	}
}

// Scan fetches every active market, normalizes the records, and returns
// the ranked opportunity list. A pagination failure mid-fetch degrades to
// ranking whatever was fetched before the failure; Scan only errors when
// nothing at all came back.
func (s *Scanner) Scan(ctx context.Context) ([]types.Market, error) {
	start := time.Now()
	defer func() {
		ScanDurationSeconds.Observe(time.Since(start).Seconds())
	}()

	raws, err := s.client.ListAllMarkets(ctx)
	if err != nil {
		if len(raws) == 0 {
			ScanErrorsTotal.Inc()
			return nil, fmt.Errorf("list markets: %w", err)
		}
		s.logger.Warn("scan-partial-fetch",
			zap.Int("fetched", len(raws)),
			zap.Error(err))
	}

	normalized := make([]types.Market, 0, len(raws))
	rejected := 0
	rewardEligible := 0

	for i := range raws {
		m := Normalize(&raws[i])
		if m == nil {
			rejected++
			continue
		}
		if m.RewardEligible() {
			rewardEligible++
		}
		normalized = append(normalized, *m)
	}

	MarketsNormalizedTotal.Add(float64(len(normalized)))
	MarketsRejectedTotal.Add(float64(rejected))

	ranked := Select(normalized, s.thresholds)
	OpportunitiesGauge.Set(float64(len(ranked)))

	s.logger.Info("scan-complete",
		zap.Int("fetched", len(raws)),
		zap.Int("normalized", len(normalized)),
		zap.Int("reward-eligible", rewardEligible),
		zap.Int("ranked", len(ranked)),
		zap.Duration("duration", time.Since(start)))

	return ranked, nil
}
