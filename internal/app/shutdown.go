package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Shutdown gracefully shuts down the application. Every live order is
// canceled before anything else closes; capital must not be left resting
// unattended.
func (a *App) Shutdown() error {
	a.logger.Info("application-shutting-down")

	a.healthChecker.SetReady(false)

	// Stop the run loop before touching its positions.
	a.cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	a.cancelPositions(shutdownCtx, a.PositionsSnapshot())
	a.setPositions(nil)
	OpenPositionsGauge.Set(0)

	a.notifyBestEffort("<b>LP bot stopped</b>\nall resting orders canceled")

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http-server-shutdown-error", zap.Error(err))
	}

	if err := a.store.Close(); err != nil {
		a.logger.Error("storage-close-error", zap.Error(err))
	}

	a.cache.Close()

	a.wg.Wait()

	a.logger.Info("application-shutdown-complete")

	return nil
}
