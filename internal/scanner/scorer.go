package scanner

import "math"

// Scoring heuristics for ranking reward markets. These formulas are tuned
// against live behavior; changing constants here changes which markets the
// bot quotes, so keep tests in sync.

// deriveSpread returns the spread plus best bid/ask. When both book sides
// are known it uses them directly; otherwise it approximates the spread
// from the outcome-price imbalance and reconstructs a synthetic bid/ask
// symmetric around the midpoint.
func deriveSpread(yesPrice, noPrice, bestBid, bestAsk float64) (spread, bid, ask float64) {
	if bestBid > 0 && bestAsk > 0 {
		return bestAsk - bestBid, bestBid, bestAsk
	}

	if noPrice != 0 {
		spread = math.Abs(yesPrice - (1 - noPrice))
	}
	bid = yesPrice - spread/2
	ask = yesPrice + spread/2
	return spread, bid, ask
}

// competitionScore estimates how crowded the reward pool is, 0-100 with
// lower meaning less competition. Markets with no reward at all score the
// maximum so they sink even if an eligibility filter upstream is
// misconfigured.
func competitionScore(liquidity, dailyReward float64) float64 {
	if dailyReward <= 0 {
		return 100
	}
	return math.Min(100, (liquidity/(dailyReward*100))*10)
}

// riskScore combines three penalty terms, 0-100 with lower meaning safer:
// near-term resolution, midpoint near a coin flip, and heavy recent volume
// as a proxy for directional momentum. Only the combined mean is clamped;
// the time term is allowed to run past 100 for very near resolutions
// before the outer bound catches it.
func riskScore(daysToResolution, midpoint, volume24h float64) float64 {
	timeRisk := math.Max(0, 50-daysToResolution) * 2
	priceRisk := (1 - math.Abs(midpoint-0.5)*2) * 50
	volumeRisk := math.Min(50, volume24h/1000*10)

	return math.Min(100, (timeRisk+priceRisk+volumeRisk)/3)
}

// rewardPerDollar relates the daily reward to the capital required to
// quote both sides at the program minimum. Markets without a published
// minimum get a $100 floor so tiny programs don't rank artificially high.
func rewardPerDollar(dailyReward, minSize float64) float64 {
	if dailyReward <= 0 {
		return 0
	}

	capitalNeeded := 100.0
	if minSize > 0 {
		capitalNeeded = minSize * 2
	}

	return dailyReward / math.Max(capitalNeeded, 1)
}
