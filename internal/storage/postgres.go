package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/polymaker/lp-bot/pkg/types"
	"go.uber.org/zap"
)

// PostgresStorage implements Storage using PostgreSQL.
type PostgresStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

// PostgresConfig holds PostgreSQL configuration.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
	Logger   *zap.Logger
}

// NewPostgresStorage creates a new PostgreSQL storage.
func NewPostgresStorage(cfg *PostgresConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	cfg.Logger.Info("postgres-storage-connected",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database))

	return &PostgresStorage{
		db:     db,
		logger: cfg.Logger,
	}, nil
}

// newPostgresStorageFromDB wraps an existing connection. Used in tests.
func newPostgresStorageFromDB(db *sql.DB, logger *zap.Logger) *PostgresStorage {
	return &PostgresStorage{db: db, logger: logger}
}

// StoreScan inserts one row per ranked market, all stamped with the same
// scan time so a snapshot can be queried back as a unit.
func (p *PostgresStorage) StoreScan(ctx context.Context, markets []*types.Market) error {
	scannedAt := time.Now().UTC()

	query := `
		INSERT INTO market_scans (
			id, scanned_at, condition_id, question, slug,
			daily_reward, max_spread, min_size, midpoint, spread,
			volume_24h, liquidity, days_to_resolution,
			competition_score, risk_score, reward_per_dollar
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)
	`

	for _, m := range markets {
		_, err := p.db.ExecContext(ctx, query,
			uuid.New().String(),
			scannedAt,
			m.ConditionID,
			m.Question,
			m.Slug,
			m.DailyReward,
			m.MaxSpread,
			m.MinSize,
			m.Midpoint,
			m.Spread,
			m.Volume24h,
			m.Liquidity,
			m.DaysToResolution,
			m.CompetitionScore,
			m.RiskScore,
			m.RewardPerDollar,
		)
		if err != nil {
			return fmt.Errorf("insert market scan for %s: %w", m.ConditionID, err)
		}
	}

	p.logger.Debug("scan-stored",
		zap.Int("market-count", len(markets)),
		zap.Time("scanned-at", scannedAt))

	return nil
}

// StoreAlert records one fill-risk alert row.
func (p *PostgresStorage) StoreAlert(ctx context.Context, pos *types.Position) error {
	query := `
		INSERT INTO fill_alerts (
			id, alerted_at, position_id, condition_id, question,
			risk_level, midpoint, bid_price, ask_price
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`

	_, err := p.db.ExecContext(ctx, query,
		uuid.New().String(),
		time.Now().UTC(),
		pos.ID,
		pos.Market.ConditionID,
		pos.Market.Question,
		pos.RiskLevel.String(),
		pos.LastMidpoint,
		pos.OurBidPrice,
		pos.OurAskPrice,
	)
	if err != nil {
		return fmt.Errorf("insert fill alert for position %s: %w", pos.ID, err)
	}

	p.logger.Debug("alert-stored",
		zap.String("position-id", pos.ID),
		zap.String("risk-level", pos.RiskLevel.String()))

	return nil
}

// Close closes the database connection.
func (p *PostgresStorage) Close() error {
	p.logger.Info("closing-postgres-storage")
	return p.db.Close()
}
