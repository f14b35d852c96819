package storage

import (
	"context"

	"github.com/polymaker/lp-bot/pkg/types"
)

// Storage persists scan snapshots and fill-risk alerts.
type Storage interface {
	// StoreScan records one ranked scan result set.
	StoreScan(ctx context.Context, markets []*types.Market) error

	// StoreAlert records a fill-risk alert raised against a position.
	StoreAlert(ctx context.Context, pos *types.Position) error

	// Close closes the storage connection.
	Close() error
}
