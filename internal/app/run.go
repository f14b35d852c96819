package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/polymaker/lp-bot/pkg/types"
	"go.uber.org/zap"
)

// panicCooldown gives upstream services room to recover before the loop
// resumes after an unexpected panic.
const panicCooldown = 30 * time.Second

// Run starts the application and blocks until shutdown.
func (a *App) Run() error {
	a.logger.Info("application-starting",
		zap.Bool("dry-run", a.orders == nil),
		zap.Int("max-markets", a.cfg.MaxMarkets),
		zap.Float64("capital-per-market", a.cfg.CapitalPerMarket),
		zap.String("log-level", a.cfg.LogLevel))

	a.notifyBestEffort(fmt.Sprintf(
		"<b>LP bot started</b>\nmax markets: %d | capital/market: $%.0f",
		a.cfg.MaxMarkets, a.cfg.CapitalPerMarket))

	a.wg.Add(1)
	go a.runHTTPServer()

	a.wg.Add(1)
	go a.runLoop()

	a.logger.Info("application-started",
		zap.String("http-addr", ":"+a.cfg.HTTPPort),
		zap.Duration("refresh-interval", a.cfg.RefreshInterval),
		zap.Duration("rescan-interval", a.cfg.RescanInterval))

	return a.waitForShutdown()
}

func (a *App) runHTTPServer() {
	defer a.wg.Done()
	err := a.httpServer.Start()
	if err != nil {
		a.logger.Error("http-server-error", zap.Error(err))
	}
}

// runLoop drives the whole bot: an immediate first cycle, then one tick
// per refresh interval until the context ends.
func (a *App) runLoop() {
	defer a.wg.Done()

	a.tick()

	ticker := time.NewTicker(a.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.ctx.Done():
			return
		case <-ticker.C:
			a.tick()
		}
	}
}

// tick is one cycle of the cooperative loop: rebalance when due, then
// check fill risk on whatever is resting. A panic anywhere inside is
// contained to the tick; the loop pauses and carries on.
func (a *App) tick() {
	defer func() {
		if r := recover(); r != nil {
			LoopPanicsTotal.Inc()
			a.logger.Error("loop-panic-recovered", zap.Any("panic", r))

			a.notifyBestEffort("<b>BOT ERROR</b>\nloop panic recovered, cooling down")

			select {
			case <-a.ctx.Done():
			case <-time.After(panicCooldown):
			}
		}
	}()

	if a.rebalanceDue() {
		if err := a.rebalance(a.ctx); err != nil {
			a.logger.Error("rebalance-failed", zap.Error(err))
		}
	}

	positions := a.PositionsSnapshot()
	if len(positions) == 0 {
		return
	}

	a.monitor.Check(a.ctx, positions)
	a.persistAlerts(a.ctx, positions)
	a.renderer.RenderPositions(positions)
}

// rebalanceDue reports whether a full rescan-and-requote cycle should
// run: on the first tick, whenever nothing is resting, and once per
// rescan interval.
func (a *App) rebalanceDue() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.lastScan.IsZero() || len(a.positions) == 0 {
		return true
	}
	return time.Since(a.lastScan) >= a.cfg.RescanInterval
}

// notifyBestEffort sends an operator notification with a short timeout.
// Delivery failures are logged and swallowed; notifications never gate
// the loop.
func (a *App) notifyBestEffort(message string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.notifier.Notify(ctx, message); err != nil {
		a.logger.Warn("notification-failed", zap.Error(err))
	}
}

// persistAlerts writes one storage row per alerting position. Storage
// failures are logged, never fatal.
func (a *App) persistAlerts(ctx context.Context, positions []*types.Position) {
	for _, pos := range positions {
		if !pos.RiskLevel.Alerting() {
			continue
		}
		if err := a.store.StoreAlert(ctx, pos); err != nil {
			a.logger.Warn("alert-store-failed",
				zap.String("position-id", pos.ID),
				zap.Error(err))
		}
	}
}

func (a *App) waitForShutdown() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		a.logger.Info("shutdown-signal-received", zap.String("signal", sig.String()))
	case <-a.ctx.Done():
		a.logger.Info("context-cancelled")
	}

	return a.Shutdown()
}
