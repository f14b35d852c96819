package types

import "time"

// RiskLevel classifies how close the market midpoint has drifted toward one
// of our resting quotes. The zero value is RiskUnknown, the state of a
// position before its first monitoring tick.
type RiskLevel int

const (
	RiskUnknown RiskLevel = iota
	RiskCritical
	RiskWarning
	RiskWatch
	RiskSafe
)

// String returns the display name for the risk level.
func (r RiskLevel) String() string {
	switch r {
	case RiskCritical:
		return "CRITICAL"
	case RiskWarning:
		return "WARNING"
	case RiskWatch:
		return "WATCH"
	case RiskSafe:
		return "SAFE"
	default:
		return "UNKNOWN"
	}
}

// Alerting reports whether positions at this level produce notifications
// every monitoring tick.
func (r RiskLevel) Alerting() bool {
	return r == RiskCritical || r == RiskWarning
}

// Position is one actively quoted market. It owns a Market snapshot frozen
// at quote time plus the external order handles for each side. Positions
// are owned exclusively by the orchestrator; the fill-risk monitor mutates
// RiskLevel and LastMidpoint in place but never retains its own copy.
type Position struct {
	ID     string
	Market Market

	// Order handles, empty when the corresponding side failed to place.
	OrderIDYes string
	OrderIDNo  string

	OurBidPrice float64
	OurAskPrice float64
	Size        float64
	PlacedAt    time.Time

	// LastMidpoint is the most recent midpoint observed by the monitor,
	// used as the fallback when a fresh fetch fails.
	LastMidpoint float64
	RiskLevel    RiskLevel
}

// OrderIDs returns the live order handles for this position, skipping
// sides that never placed.
func (p *Position) OrderIDs() []string {
	ids := make([]string, 0, 2)
	if p.OrderIDYes != "" {
		ids = append(ids, p.OrderIDYes)
	}
	if p.OrderIDNo != "" {
		ids = append(ids, p.OrderIDNo)
	}
	return ids
}
