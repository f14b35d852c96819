package types

// OrderSubmissionResponse represents the response from POST /order.
// Based on official Polymarket CLOB API documentation.
type OrderSubmissionResponse struct {
	Success     bool     `json:"success"`
	ErrorMsg    string   `json:"errorMsg"`
	OrderID     string   `json:"orderId"` // Note: lowercase 'd' per API spec
	OrderHashes []string `json:"orderHashes"`
	Status      string   `json:"status"` // matched, live, delayed, unmatched
}

// SignedOrderJSON represents a signed order in the format expected by the
// CLOB API. Fields match the EIP-712 order structure after signing.
type SignedOrderJSON struct {
	Salt          int64  `json:"salt"` // Integer per API spec (not string)
	Maker         string `json:"maker"`
	Signer        string `json:"signer"`
	Taker         string `json:"taker"`
	TokenID       string `json:"tokenId"`
	MakerAmount   string `json:"makerAmount"` // Raw amount (6 decimals for USDC)
	TakerAmount   string `json:"takerAmount"`
	Side          string `json:"side"`
	Expiration    string `json:"expiration"`
	Nonce         string `json:"nonce"`
	FeeRateBps    string `json:"feeRateBps"`
	SignatureType int    `json:"signatureType"` // 0=EOA, 1=POLY_PROXY, 2=GNOSIS_SAFE
	Signature     string `json:"signature"`
}

// OrderSubmissionRequest wraps a signed order with submission metadata.
type OrderSubmissionRequest struct {
	Order     SignedOrderJSON `json:"order"`
	Owner     string          `json:"owner"` // API key (not maker address!)
	OrderType string          `json:"orderType"`
}

// OrderInfo is a live order as reported by GET /data/orders.
type OrderInfo struct {
	OrderID      string  `json:"id"`
	Market       string  `json:"market"`
	AssetID      string  `json:"asset_id"`
	Side         string  `json:"side"`
	Price        float64 `json:"price,string"`
	OriginalSize float64 `json:"original_size,string"`
	SizeMatched  float64 `json:"size_matched,string"`
	Status       string  `json:"status"`
}

// MidpointResponse is the response from GET /midpoint.
type MidpointResponse struct {
	Mid float64 `json:"mid,string"`
}
