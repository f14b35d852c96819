package types

// Market is a canonical snapshot of a reward-eligible Polymarket order book.
// It is immutable once built: the normalizer either returns a fully derived
// Market or nothing at all.
type Market struct {
	ConditionID string
	Question    string
	Slug        string
	TokenIDYes  string
	TokenIDNo   string

	// EndDate is the raw ISO-8601 end date string, empty if unknown.
	EndDate          string
	DaysToResolution float64

	// Reward program terms. MaxSpread is a decimal price fraction (0-1);
	// raw values supplied in cents are normalized at parse time.
	DailyReward float64
	MaxSpread   float64
	MinSize     float64

	Midpoint float64
	BestBid  float64
	BestAsk  float64
	Spread   float64

	Volume24h float64
	Liquidity float64

	// Derived scores, 0-100. Lower competition = fewer makers fighting for
	// the same reward pool. Lower risk = safer to rest quotes on.
	CompetitionScore float64
	RiskScore        float64
	RewardPerDollar  float64
}

// RewardEligible reports whether the market is enrolled in an active
// liquidity reward program at all.
func (m *Market) RewardEligible() bool {
	return m.DailyReward > 0 && m.MaxSpread > 0
}
