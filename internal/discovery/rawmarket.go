package discovery

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// FlexFloat is a float64 that tolerates the Gamma API's mixed numeric
// encodings: JSON numbers, numbers-as-strings, null, and absent fields all
// decode without error. Malformed values decode to zero rather than failing
// the whole record.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// Float64 returns the underlying value.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// RawReward is one entry of the nested rewards array. The daily rate field
// has shipped under three different names.
type RawReward struct {
	RewardsDailyRate FlexFloat `json:"rewardsDailyRate"`
	DailyRate        FlexFloat `json:"dailyRate"`
	SnakeDailyRate   FlexFloat `json:"rewards_daily_rate"`
}

// Rate returns the first non-zero daily-rate variant of this entry.
func (r *RawReward) Rate() float64 {
	for _, v := range []FlexFloat{r.RewardsDailyRate, r.DailyRate, r.SnakeDailyRate} {
		if v != 0 {
			return v.Float64()
		}
	}
	return 0
}

// RawMarket is a market record as returned by the Gamma /markets endpoint.
// The API has gone through several field-naming conventions; every semantic
// value that has more than one spelling carries one field per variant, and
// the normalizer picks the first usable one. Nothing here is trusted: the
// normalizer owns all validation.
type RawMarket struct {
	ConditionID      string `json:"conditionId"`
	ConditionIDSnake string `json:"condition_id"`
	Question         string `json:"question"`
	Slug             string `json:"slug"`

	// JSON-encoded string ("[\"tok1\",\"tok2\"]") or a plain array,
	// depending on the endpoint vintage.
	ClobTokenIDs  json.RawMessage `json:"clobTokenIds"`
	OutcomePrices json.RawMessage `json:"outcomePrices"`

	EndDate    string `json:"endDate"`
	EndDateISO string `json:"end_date_iso"`

	RewardsMaxSpread   FlexFloat `json:"rewardsMaxSpread"`
	SnakeMaxSpread     FlexFloat `json:"rewards_max_spread"`
	MaxIncentiveSpread FlexFloat `json:"max_incentive_spread"`

	RewardsMinSize   FlexFloat `json:"rewardsMinSize"`
	SnakeMinSize     FlexFloat `json:"rewards_min_size"`
	MinIncentiveSize FlexFloat `json:"min_incentive_size"`

	Rewards          []RawReward `json:"rewards"`
	RewardsDailyRate FlexFloat   `json:"rewardsDailyRate"`
	SnakeDailyRate   FlexFloat   `json:"rewards_daily_rate"`

	Volume24h    FlexFloat `json:"volume24hr"`
	VolumeNum    FlexFloat `json:"volume_num"`
	Liquidity    FlexFloat `json:"liquidity"`
	LiquidityNum FlexFloat `json:"liquidityNum"`

	BestBid FlexFloat `json:"bestBid"`
	BestAsk FlexFloat `json:"bestAsk"`
}

// TokenIDs decodes the clobTokenIds field, accepting both the
// string-encoded and the already-decoded array form.
func (r *RawMarket) TokenIDs() []string {
	return decodeStringOrList(r.ClobTokenIDs)
}

// Prices decodes outcomePrices the same way, as floats.
func (r *RawMarket) Prices() ([]float64, bool) {
	raw := r.OutcomePrices
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, false
	}

	// String-encoded form: unwrap once, then fall through to array decode.
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, false
		}
		raw = []byte(inner)
	}

	var flex []FlexFloat
	if err := json.Unmarshal(raw, &flex); err != nil {
		return nil, false
	}

	prices := make([]float64, len(flex))
	for i, f := range flex {
		prices[i] = f.Float64()
	}
	return prices, true
}

func decodeStringOrList(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil
		}
		raw = []byte(inner)
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
