package cmd

import (
	"fmt"

	"github.com/polymaker/lp-bot/internal/execution"
	"github.com/polymaker/lp-bot/pkg/config"
	"go.uber.org/zap"
)

// newOrderClient builds an authenticated CLOB client for commands that
// read or mutate orders. Fails fast when trading credentials are absent.
func newOrderClient(cfg *config.Config, logger *zap.Logger) (*execution.OrderClient, error) {
	if err := cfg.RequireTradingCredentials(); err != nil {
		return nil, fmt.Errorf("trading credentials: %w", err)
	}

	client, err := execution.NewOrderClient(&execution.OrderClientConfig{
		BaseURL:       cfg.CLOBAPIURL,
		APIKey:        cfg.APIKey,
		Secret:        cfg.APISecret,
		Passphrase:    cfg.APIPassphrase,
		PrivateKey:    cfg.PrivateKey,
		FunderAddress: cfg.FunderAddress,
		SignatureType: cfg.SignatureType,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create order client: %w", err)
	}

	return client, nil
}
