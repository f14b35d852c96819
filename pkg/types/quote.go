package types

// QuotePlan is the output of the quote strategist for one market: where to
// rest each side and how much. The venue only accepts BUY orders per binary
// outcome token, so the ask side is synthesized as a buy of the NO token at
// the complement of the ask price.
type QuotePlan struct {
	// BidPrice is the YES-token buy price, AskPrice the quoted ask on the
	// YES price scale. Both rounded to the 3-decimal program tick.
	BidPrice float64
	AskPrice float64

	// NoPrice is the price actually submitted on the NO token: 1-AskPrice,
	// clamped back into the valid price band.
	NoPrice float64

	BidSize float64
	AskSize float64
}

// QuoteResult reports per-side submission outcomes. A failure on one side
// never blocks the other, so both halves carry independent state.
type QuoteResult struct {
	OrderIDYes string
	OrderIDNo  string
	ErrYes     error
	ErrNo      error
}

// Placed reports whether at least one side placed successfully.
func (r *QuoteResult) Placed() bool {
	return r.OrderIDYes != "" || r.OrderIDNo != ""
}

// PartiallyPlaced reports whether exactly one side placed.
func (r *QuoteResult) PartiallyPlaced() bool {
	return r.Placed() && (r.ErrYes != nil || r.ErrNo != nil)
}
