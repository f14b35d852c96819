package storage

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/polymaker/lp-bot/pkg/types"
	"go.uber.org/zap"
)

func testMarket(conditionID string) *types.Market {
	return &types.Market{
		ConditionID:      conditionID,
		Question:         "Will it resolve YES?",
		Slug:             "will-it-resolve-yes",
		DailyReward:      25,
		MaxSpread:        0.03,
		MinSize:          200,
		Midpoint:         0.52,
		Spread:           0.02,
		Volume24h:        12000,
		Liquidity:        4000,
		DaysToResolution: 42,
		CompetitionScore: 16,
		RiskScore:        33,
		RewardPerDollar:  0.0625,
	}
}

func testAlertPosition() *types.Position {
	return &types.Position{
		ID:           "pos-1",
		Market:       *testMarket("cond-1"),
		OurBidPrice:  0.50,
		OurAskPrice:  0.54,
		LastMidpoint: 0.505,
		RiskLevel:    types.RiskCritical,
	}
}

func TestConsoleStorage_ImplementsInterface(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	var s Storage = NewConsoleStorage(logger)

	ctx := context.Background()
	if err := s.StoreScan(ctx, []*types.Market{testMarket("cond-1")}); err != nil {
		t.Errorf("StoreScan() error = %v", err)
	}
	if err := s.StoreAlert(ctx, testAlertPosition()); err != nil {
		t.Errorf("StoreAlert() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestPostgresStorage_StoreScan(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	s := newPostgresStorageFromDB(db, logger)

	markets := []*types.Market{testMarket("cond-1"), testMarket("cond-2")}

	for _, m := range markets {
		mock.ExpectExec("INSERT INTO market_scans").
			WithArgs(
				sqlmock.AnyArg(), // id
				sqlmock.AnyArg(), // scanned_at
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
			).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}

	if err := s.StoreScan(context.Background(), markets); err != nil {
		t.Errorf("StoreScan() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresStorage_StoreScan_InsertError(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	s := newPostgresStorageFromDB(db, logger)

	mock.ExpectExec("INSERT INTO market_scans").
		WillReturnError(sqlmock.ErrCancelled)

	if err := s.StoreScan(context.Background(), []*types.Market{testMarket("cond-1")}); err == nil {
		t.Error("expected error, got nil")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresStorage_StoreAlert(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	s := newPostgresStorageFromDB(db, logger)
	pos := testAlertPosition()

	mock.ExpectExec("INSERT INTO fill_alerts").
		WithArgs(
			sqlmock.AnyArg(), // id
			sqlmock.AnyArg(), // alerted_at
			pos.ID,
			pos.Market.ConditionID,
			pos.Market.Question,
			"CRITICAL",
			pos.LastMidpoint,
			pos.OurBidPrice,
			pos.OurAskPrice,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := s.StoreAlert(context.Background(), pos); err != nil {
		t.Errorf("StoreAlert() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresStorage_Close(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	s := newPostgresStorageFromDB(db, logger)

	mock.ExpectClose()

	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
