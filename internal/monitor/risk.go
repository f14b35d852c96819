// Package monitor watches open quoting positions for fill risk as market
// midpoints drift toward our resting orders.
package monitor

import (
	"math"

	"github.com/polymaker/lp-bot/pkg/types"
)

// ClassifyRisk grades a position by how close the current midpoint sits
// to either of our quotes. threshold is the distance below which a fill
// is considered imminent; the warning and watch bands extend to 2x and
// 3x that distance.
func ClassifyRisk(midpoint, bidPrice, askPrice, threshold float64) types.RiskLevel {
	distance := math.Min(
		math.Abs(midpoint-bidPrice),
		math.Abs(midpoint-askPrice),
	)

	switch {
	case distance < threshold:
		return types.RiskCritical
	case distance < 2*threshold:
		return types.RiskWarning
	case distance < 3*threshold:
		return types.RiskWatch
	default:
		return types.RiskSafe
	}
}
