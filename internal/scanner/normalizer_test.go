package scanner

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/polymaker/lp-bot/internal/discovery"
)

func rawFromJSON(t *testing.T, body string) *discovery.RawMarket {
	t.Helper()
	var raw discovery.RawMarket
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		t.Fatalf("decode raw market: %v", err)
	}
	return &raw
}

func TestNormalize_MissingTokensRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no-tokens-field", body: `{"conditionId": "c1"}`},
		{name: "empty-list", body: `{"conditionId": "c1", "clobTokenIds": []}`},
		{name: "single-token", body: `{"conditionId": "c1", "clobTokenIds": ["tok1"]}`},
		{name: "malformed-tokens", body: `{"conditionId": "c1", "clobTokenIds": "oops"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if m := Normalize(rawFromJSON(t, tt.body)); m != nil {
				t.Errorf("expected rejection, got market %+v", m)
			}
		})
	}
}

func TestNormalize_RewardFieldVariants(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		wantMaxSpread float64
		wantMinSize   float64
		wantReward    float64
	}{
		{
			name: "camel-case",
			body: `{"clobTokenIds": ["t1","t2"], "rewardsMaxSpread": 0.03,
				"rewardsMinSize": 50, "rewardsDailyRate": 12}`,
			wantMaxSpread: 0.03,
			wantMinSize:   50,
			wantReward:    12,
		},
		{
			name: "snake-case",
			body: `{"clobTokenIds": ["t1","t2"], "rewards_max_spread": 0.03,
				"rewards_min_size": 50, "rewards_daily_rate": 12}`,
			wantMaxSpread: 0.03,
			wantMinSize:   50,
			wantReward:    12,
		},
		{
			name: "incentive-prefixed",
			body: `{"clobTokenIds": ["t1","t2"], "max_incentive_spread": 0.03,
				"min_incentive_size": 50}`,
			wantMaxSpread: 0.03,
			wantMinSize:   50,
			wantReward:    0,
		},
		{
			name: "rewards-array-summed",
			body: `{"clobTokenIds": ["t1","t2"],
				"rewards": [{"rewardsDailyRate": 7}, {"dailyRate": 3}]}`,
			wantReward: 10,
		},
		{
			name: "array-takes-precedence-over-scalar",
			body: `{"clobTokenIds": ["t1","t2"],
				"rewards": [{"rewardsDailyRate": 7}], "rewardsDailyRate": 99}`,
			wantReward: 7,
		},
		{
			name:       "no-variant-present",
			body:       `{"clobTokenIds": ["t1","t2"], "question": "Will it?"}`,
			wantReward: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Normalize(rawFromJSON(t, tt.body))
			if m == nil {
				t.Fatal("expected market, got rejection")
			}
			if m.MaxSpread != tt.wantMaxSpread {
				t.Errorf("maxSpread = %f, want %f", m.MaxSpread, tt.wantMaxSpread)
			}
			if m.MinSize != tt.wantMinSize {
				t.Errorf("minSize = %f, want %f", m.MinSize, tt.wantMinSize)
			}
			if m.DailyReward != tt.wantReward {
				t.Errorf("dailyReward = %f, want %f", m.DailyReward, tt.wantReward)
			}
		})
	}
}

func TestNormalize_SpreadCentsNormalization(t *testing.T) {
	// 5 means 5 cents → 0.05; 0.05 stays 0.05.
	m := Normalize(rawFromJSON(t, `{"clobTokenIds": ["t1","t2"], "rewardsMaxSpread": 5}`))
	if m == nil {
		t.Fatal("expected market")
	}
	if m.MaxSpread != 0.05 {
		t.Errorf("cents spread normalized to %f, want 0.05", m.MaxSpread)
	}

	m = Normalize(rawFromJSON(t, `{"clobTokenIds": ["t1","t2"], "rewardsMaxSpread": 0.05}`))
	if m == nil {
		t.Fatal("expected market")
	}
	if m.MaxSpread != 0.05 {
		t.Errorf("decimal spread changed to %f, want 0.05", m.MaxSpread)
	}
}

func TestNormalize_EndDate(t *testing.T) {
	future := time.Now().UTC().Add(30 * 24 * time.Hour).Format(time.RFC3339)
	m := Normalize(rawFromJSON(t, fmt.Sprintf(
		`{"clobTokenIds": ["t1","t2"], "endDate": %q}`, future)))
	if m == nil {
		t.Fatal("expected market")
	}
	if m.DaysToResolution < 29.9 || m.DaysToResolution > 30.1 {
		t.Errorf("daysToResolution = %f, want ~30", m.DaysToResolution)
	}

	// Unparsable end date falls back to the default horizon, not rejection.
	m = Normalize(rawFromJSON(t, `{"clobTokenIds": ["t1","t2"], "endDate": "next tuesday"}`))
	if m == nil {
		t.Fatal("expected market despite bad end date")
	}
	if m.DaysToResolution != 365 {
		t.Errorf("daysToResolution = %f, want default 365", m.DaysToResolution)
	}

	// Past end dates clamp to zero.
	past := time.Now().UTC().Add(-48 * time.Hour).Format(time.RFC3339)
	m = Normalize(rawFromJSON(t, fmt.Sprintf(
		`{"clobTokenIds": ["t1","t2"], "endDate": %q}`, past)))
	if m == nil {
		t.Fatal("expected market")
	}
	if m.DaysToResolution != 0 {
		t.Errorf("daysToResolution = %f, want 0 for past date", m.DaysToResolution)
	}
}

func TestNormalize_OutcomePrices(t *testing.T) {
	m := Normalize(rawFromJSON(t,
		`{"clobTokenIds": ["t1","t2"], "outcomePrices": "[\"0.62\", \"0.38\"]"}`))
	if m == nil {
		t.Fatal("expected market")
	}
	if m.Midpoint != 0.62 {
		t.Errorf("midpoint = %f, want 0.62", m.Midpoint)
	}

	// Malformed prices fall back to an even split.
	m = Normalize(rawFromJSON(t,
		`{"clobTokenIds": ["t1","t2"], "outcomePrices": "not json"}`))
	if m == nil {
		t.Fatal("expected market despite bad prices")
	}
	if m.Midpoint != 0.5 {
		t.Errorf("midpoint = %f, want fallback 0.5", m.Midpoint)
	}
}

func TestNormalize_SpreadFromBook(t *testing.T) {
	m := Normalize(rawFromJSON(t,
		`{"clobTokenIds": ["t1","t2"], "bestBid": 0.48, "bestAsk": 0.52}`))
	if m == nil {
		t.Fatal("expected market")
	}
	if math.Abs(m.Spread-0.04) > 1e-9 {
		t.Errorf("spread = %f, want 0.04", m.Spread)
	}
	if m.BestBid != 0.48 || m.BestAsk != 0.52 {
		t.Errorf("book sides not preserved: bid=%f ask=%f", m.BestBid, m.BestAsk)
	}
}

func TestNormalize_SyntheticSpread(t *testing.T) {
	// No book sides: spread comes from the outcome-price imbalance and
	// bid/ask are reconstructed symmetric around the midpoint.
	m := Normalize(rawFromJSON(t,
		`{"clobTokenIds": ["t1","t2"], "outcomePrices": "[\"0.60\", \"0.36\"]"}`))
	if m == nil {
		t.Fatal("expected market")
	}

	wantSpread := math.Abs(0.60 - (1 - 0.36)) // 0.04
	if math.Abs(m.Spread-wantSpread) > 1e-9 {
		t.Errorf("spread = %f, want %f", m.Spread, wantSpread)
	}
	if math.Abs(m.BestBid-(0.60-wantSpread/2)) > 1e-9 {
		t.Errorf("synthetic bid = %f", m.BestBid)
	}
	if math.Abs(m.BestAsk-(0.60+wantSpread/2)) > 1e-9 {
		t.Errorf("synthetic ask = %f", m.BestAsk)
	}
}

func TestNormalize_AllDerivedFieldsFinite(t *testing.T) {
	m := Normalize(rawFromJSON(t, `{
		"conditionId": "c1",
		"clobTokenIds": ["t1","t2"],
		"rewardsMaxSpread": 3.5,
		"rewardsMinSize": 200,
		"rewards": [{"rewardsDailyRate": 25}],
		"outcomePrices": "[\"0.55\", \"0.45\"]",
		"volume24hr": "1234.5",
		"liquidity": 9000
	}`))
	if m == nil {
		t.Fatal("expected market")
	}

	for name, v := range map[string]float64{
		"daysToResolution": m.DaysToResolution,
		"competitionScore": m.CompetitionScore,
		"riskScore":        m.RiskScore,
		"rewardPerDollar":  m.RewardPerDollar,
		"spread":           m.Spread,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s is not finite: %f", name, v)
		}
	}

	if !m.RewardEligible() {
		t.Error("expected reward-eligible market")
	}
	if m.RewardPerDollar != 25.0/400.0 {
		t.Errorf("rewardPerDollar = %f, want %f", m.RewardPerDollar, 25.0/400.0)
	}
}
