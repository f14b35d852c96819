// Package app wires the scanner, quote strategist, order client and
// fill-risk monitor into the long-running bot process.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/polymaker/lp-bot/internal/display"
	"github.com/polymaker/lp-bot/internal/monitor"
	"github.com/polymaker/lp-bot/internal/notify"
	"github.com/polymaker/lp-bot/internal/quoting"
	"github.com/polymaker/lp-bot/internal/scanner"
	"github.com/polymaker/lp-bot/internal/storage"
	"github.com/polymaker/lp-bot/pkg/cache"
	"github.com/polymaker/lp-bot/pkg/config"
	"github.com/polymaker/lp-bot/pkg/healthprobe"
	"github.com/polymaker/lp-bot/pkg/httpserver"
	"github.com/polymaker/lp-bot/pkg/types"
	"go.uber.org/zap"
)

// OrderPlacer is the subset of the execution client the orchestrator
// needs. Nil in dry-run mode.
type OrderPlacer interface {
	PlaceQuotes(ctx context.Context, market *types.Market, plan *types.QuotePlan) *types.QuoteResult
	CancelOrder(ctx context.Context, orderID string) error
}

// App is the main application orchestrator. It owns the position set;
// all mutation happens on the single run loop goroutine.
type App struct {
	cfg           *config.Config
	logger        *zap.Logger
	healthChecker *healthprobe.HealthChecker
	httpServer    *httpserver.Server
	scanner       *scanner.Scanner
	strategist    *quoting.Strategist
	orders        OrderPlacer
	monitor       *monitor.Monitor
	notifier      notify.Notifier
	store         storage.Storage
	cache         cache.Cache
	renderer      *display.Renderer

	mu        sync.Mutex
	positions []*types.Position
	lastScan  time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Options holds application options.
type Options struct {
	// DryRun scans and monitors without placing real orders.
	DryRun bool
}

// PositionsSnapshot returns the current position set for read-only use
// by the HTTP positions endpoint.
func (a *App) PositionsSnapshot() []*types.Position {
	a.mu.Lock()
	defer a.mu.Unlock()

	snapshot := make([]*types.Position, len(a.positions))
	copy(snapshot, a.positions)
	return snapshot
}

func (a *App) setPositions(positions []*types.Position) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.positions = positions
}
