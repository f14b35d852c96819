package scanner

import (
	"math"
	"time"

	"github.com/polymaker/lp-bot/internal/discovery"
	"github.com/polymaker/lp-bot/pkg/types"
)

// defaultHorizonDays is assumed when a market carries no parsable end date.
const defaultHorizonDays = 365

// fieldSource is one named extraction strategy for a raw numeric field.
// Sources are tried in order and the first non-zero value wins, so new
// Gamma field-name vintages slot in without touching scoring logic.
type fieldSource struct {
	name    string
	extract func(*discovery.RawMarket) float64
}

var maxSpreadSources = []fieldSource{
	{"rewardsMaxSpread", func(r *discovery.RawMarket) float64 { return r.RewardsMaxSpread.Float64() }},
	{"rewards_max_spread", func(r *discovery.RawMarket) float64 { return r.SnakeMaxSpread.Float64() }},
	{"max_incentive_spread", func(r *discovery.RawMarket) float64 { return r.MaxIncentiveSpread.Float64() }},
}

var minSizeSources = []fieldSource{
	{"rewardsMinSize", func(r *discovery.RawMarket) float64 { return r.RewardsMinSize.Float64() }},
	{"rewards_min_size", func(r *discovery.RawMarket) float64 { return r.SnakeMinSize.Float64() }},
	{"min_incentive_size", func(r *discovery.RawMarket) float64 { return r.MinIncentiveSize.Float64() }},
}

var dailyRewardSources = []fieldSource{
	{"rewards[]", func(r *discovery.RawMarket) float64 {
		var sum float64
		for i := range r.Rewards {
			sum += r.Rewards[i].Rate()
		}
		return sum
	}},
	{"rewardsDailyRate", func(r *discovery.RawMarket) float64 { return r.RewardsDailyRate.Float64() }},
	{"rewards_daily_rate", func(r *discovery.RawMarket) float64 { return r.SnakeDailyRate.Float64() }},
}

var volumeSources = []fieldSource{
	{"volume24hr", func(r *discovery.RawMarket) float64 { return r.Volume24h.Float64() }},
	{"volume_num", func(r *discovery.RawMarket) float64 { return r.VolumeNum.Float64() }},
}

var liquiditySources = []fieldSource{
	{"liquidity", func(r *discovery.RawMarket) float64 { return r.Liquidity.Float64() }},
	{"liquidityNum", func(r *discovery.RawMarket) float64 { return r.LiquidityNum.Float64() }},
}

func firstNonZero(raw *discovery.RawMarket, sources []fieldSource) float64 {
	for _, src := range sources {
		if v := src.extract(raw); v != 0 {
			return v
		}
	}
	return 0
}

// endDateLayouts covers the formats Gamma has shipped for end dates.
var endDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02",
}

// Normalize converts one raw Gamma record into a canonical, fully scored
// Market. It returns nil for records the bot cannot trade: a missing or
// short token-id list is the only hard rejection. Every other missing or
// malformed field degrades to a defined default so one odd record among
// thousands never aborts a scan; a panic anywhere during derivation
// likewise discards just that record.
func Normalize(raw *discovery.RawMarket) (m *types.Market) {
	defer func() {
		if recover() != nil {
			m = nil
		}
	}()

	tokens := raw.TokenIDs()
	if len(tokens) < 2 {
		// No tradable outcome pair.
		return nil
	}

	maxSpread := firstNonZero(raw, maxSpreadSources)
	minSize := firstNonZero(raw, minSizeSources)
	dailyReward := firstNonZero(raw, dailyRewardSources)

	// Spreads arrive either as a decimal price fraction or in cents.
	if maxSpread > 1 {
		maxSpread = maxSpread / 100.0
	}

	endDate := raw.EndDate
	if endDate == "" {
		endDate = raw.EndDateISO
	}
	daysToResolution := float64(defaultHorizonDays)
	if endDate != "" {
		if end, ok := parseEndDate(endDate); ok {
			daysToResolution = math.Max(0, time.Until(end).Seconds()/86400)
		}
	}

	prices, ok := raw.Prices()
	if !ok {
		prices = []float64{0.5, 0.5}
	}
	yesPrice, noPrice := 0.5, 0.5
	if len(prices) > 0 {
		yesPrice = prices[0]
	}
	if len(prices) > 1 {
		noPrice = prices[1]
	}
	midpoint := yesPrice

	volume24h := firstNonZero(raw, volumeSources)
	liquidity := firstNonZero(raw, liquiditySources)

	spread, bestBid, bestAsk := deriveSpread(yesPrice, noPrice, raw.BestBid.Float64(), raw.BestAsk.Float64())

	conditionID := raw.ConditionID
	if conditionID == "" {
		conditionID = raw.ConditionIDSnake
	}

	question := raw.Question
	if question == "" {
		question = "Unknown"
	}

	return &types.Market{
		ConditionID:      conditionID,
		Question:         question,
		Slug:             raw.Slug,
		TokenIDYes:       tokens[0],
		TokenIDNo:        tokens[1],
		EndDate:          endDate,
		DaysToResolution: daysToResolution,
		DailyReward:      dailyReward,
		MaxSpread:        maxSpread,
		MinSize:          minSize,
		Midpoint:         midpoint,
		BestBid:          bestBid,
		BestAsk:          bestAsk,
		Spread:           spread,
		Volume24h:        volume24h,
		Liquidity:        liquidity,
		CompetitionScore: competitionScore(liquidity, dailyReward),
		RiskScore:        riskScore(daysToResolution, midpoint, volume24h),
		RewardPerDollar:  rewardPerDollar(dailyReward, minSize),
	}
}

func parseEndDate(s string) (time.Time, bool) {
	for _, layout := range endDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
