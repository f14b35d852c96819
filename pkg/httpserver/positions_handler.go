package httpserver

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/polymaker/lp-bot/pkg/types"
	"go.uber.org/zap"
)

// PositionLister exposes a read-only snapshot of open positions. The
// orchestrator implements it; handlers never mutate what they receive.
type PositionLister interface {
	PositionsSnapshot() []*types.Position
}

// PositionsHandler serves the current position set as JSON.
type PositionsHandler struct {
	positions PositionLister
	logger    *zap.Logger
}

// NewPositionsHandler creates a positions handler.
func NewPositionsHandler(positions PositionLister, logger *zap.Logger) *PositionsHandler {
	return &PositionsHandler{
		positions: positions,
		logger:    logger,
	}
}

type positionJSON struct {
	ID           string    `json:"id"`
	ConditionID  string    `json:"condition_id"`
	Question     string    `json:"question"`
	BidPrice     float64   `json:"bid_price"`
	AskPrice     float64   `json:"ask_price"`
	Size         float64   `json:"size"`
	LastMidpoint float64   `json:"last_midpoint"`
	RiskLevel    string    `json:"risk_level"`
	PlacedAt     time.Time `json:"placed_at"`
}

type positionsResponse struct {
	Count     int            `json:"count"`
	Positions []positionJSON `json:"positions"`
}

// HandlePositions responds with the current open positions.
func (h *PositionsHandler) HandlePositions(w http.ResponseWriter, r *http.Request) {
	snapshot := h.positions.PositionsSnapshot()

	resp := positionsResponse{
		Count:     len(snapshot),
		Positions: make([]positionJSON, 0, len(snapshot)),
	}
	for _, p := range snapshot {
		resp.Positions = append(resp.Positions, positionJSON{
			ID:           p.ID,
			ConditionID:  p.Market.ConditionID,
			Question:     p.Market.Question,
			BidPrice:     p.OurBidPrice,
			AskPrice:     p.OurAskPrice,
			Size:         p.Size,
			LastMidpoint: p.LastMidpoint,
			RiskLevel:    p.RiskLevel.String(),
			PlacedAt:     p.PlacedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("positions-encode-failed", zap.Error(err))
	}
}
