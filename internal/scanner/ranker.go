package scanner

import (
	"sort"

	"github.com/polymaker/lp-bot/pkg/types"
)

// Thresholds are the operator-tuned eligibility filters applied on top of
// basic reward eligibility.
type Thresholds struct {
	MinDays        float64
	MinDailyReward float64
	MaxCompetition float64
}

// Select filters the normalized markets down to the ones worth quoting and
// orders them best-first by reward per dollar of required capital. Reward
// eligibility is recomputed here rather than trusted from upstream. The
// sort is stable so identical inputs always produce identical output
// order; ties keep their input order.
func Select(markets []types.Market, th Thresholds) []types.Market {
	selected := make([]types.Market, 0, len(markets))

	for _, m := range markets {
		if !m.RewardEligible() {
			continue
		}
		if m.DaysToResolution < th.MinDays {
			continue
		}
		if m.DailyReward < th.MinDailyReward {
			continue
		}
		if m.CompetitionScore > th.MaxCompetition {
			continue
		}
		selected = append(selected, m)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].RewardPerDollar > selected[j].RewardPerDollar
	})

	return selected
}
