// Package quoting decides where to rest two-sided quotes on a reward
// market. The strategy rests each side at the outer edge of the
// reward-eligible spread band around the midpoint, nudged further out by a
// fixed safety margin: maximum reward eligibility, minimum fill
// probability.
package quoting

import (
	"math"

	"github.com/polymaker/lp-bot/pkg/types"
)

const (
	// Valid CLOB price band for binary outcome tokens.
	minPrice = 0.01
	maxPrice = 0.99
)

// Strategist computes quote plans. It is pure: it never talks to the
// network, it just prices and sizes the two sides.
type Strategist struct {
	safetyMargin float64
}

// NewStrategist creates a strategist with the given extra distance from
// the band edge.
func NewStrategist(safetyMargin float64) *Strategist {
	return &Strategist{safetyMargin: safetyMargin}
}

// BuildPlan prices both sides of a market for the given capital
// allocation. The venue only accepts BUY orders per outcome token, so the
// ask side comes back as a buy of the NO token at the complement of the
// ask price. Sizes are capital/price per side, raised to the program's
// minimum resting size when they fall short.
func (s *Strategist) BuildPlan(m *types.Market, capital float64) types.QuotePlan {
	bidPrice := clampPrice(roundTick(m.Midpoint - m.MaxSpread + s.safetyMargin))
	askPrice := clampPrice(roundTick(m.Midpoint + m.MaxSpread - s.safetyMargin))
	noPrice := clampPrice(roundTick(1 - askPrice))

	bidSize := capital / bidPrice
	askSize := capital / noPrice

	if bidSize < m.MinSize {
		bidSize = m.MinSize
	}
	if askSize < m.MinSize {
		askSize = m.MinSize
	}

	return types.QuotePlan{
		BidPrice: bidPrice,
		AskPrice: askPrice,
		NoPrice:  noPrice,
		BidSize:  bidSize,
		AskSize:  askSize,
	}
}

// roundTick rounds to the program's 3-decimal tick size.
func roundTick(p float64) float64 {
	return math.Round(p*1000) / 1000
}

func clampPrice(p float64) float64 {
	return math.Max(minPrice, math.Min(maxPrice, p))
}
