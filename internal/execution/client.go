// Package execution signs and submits orders to the Polymarket CLOB.
package execution

import (
	"context"
	"crypto/ecdsa"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/goccy/go-json"
	"github.com/polymaker/lp-bot/pkg/types"
	"github.com/polymarket/go-order-utils/pkg/builder"
	"github.com/polymarket/go-order-utils/pkg/model"
	"go.uber.org/zap"
)

const (
	// Polygon mainnet; the CTF exchange lives there.
	polygonChainID = 137

	zeroAddress = "0x0000000000000000000000000000000000000000"
)

// OrderClient signs orders with EIP-712 and talks to the authenticated
// CLOB endpoints using L2 (HMAC) headers.
type OrderClient struct {
	baseURL       string
	apiKey        string
	secret        string
	passphrase    string
	privateKey    *ecdsa.PrivateKey
	address       string // EOA address (signer)
	funderAddress string // proxy wallet holding the funds (maker)
	signatureType model.SignatureType
	orderBuilder  builder.ExchangeOrderBuilder
	httpClient    *http.Client
	logger        *zap.Logger
}

// OrderClientConfig holds configuration for the order client.
type OrderClientConfig struct {
	BaseURL       string
	APIKey        string
	Secret        string
	Passphrase    string
	PrivateKey    string
	FunderAddress string
	SignatureType int
	Logger        *zap.Logger
}

// NewOrderClient creates an order client from trading credentials. The
// signer address is derived from the private key.
func NewOrderClient(cfg *OrderClientConfig) (*OrderClient, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	publicKey, ok := privateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("unexpected public key type")
	}
	address := crypto.PubkeyToAddress(*publicKey).Hex()

	chainID := big.NewInt(polygonChainID)

	return &OrderClient{
		baseURL:       cfg.BaseURL,
		apiKey:        cfg.APIKey,
		secret:        cfg.Secret,
		passphrase:    cfg.Passphrase,
		privateKey:    privateKey,
		address:       address,
		funderAddress: cfg.FunderAddress,
		signatureType: model.SignatureType(cfg.SignatureType),
		orderBuilder:  builder.NewExchangeOrderBuilderImpl(chainID, nil),
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		logger:        cfg.Logger,
	}, nil
}

// Address returns the EOA address derived from the private key.
func (c *OrderClient) Address() string {
	return c.address
}

// SubmitOrder places a single GTC BUY limit order for size outcome
// tokens at the given price. Returns the CLOB order ID on success.
func (c *OrderClient) SubmitOrder(ctx context.Context, tokenID string, price, size float64) (string, error) {
	maker := c.address
	if c.funderAddress != "" {
		maker = c.funderAddress
	}

	// BUY: maker pays USDC, taker delivers outcome tokens.
	orderData := &model.OrderData{
		Maker:         maker,
		Taker:         zeroAddress,
		TokenId:       tokenID,
		MakerAmount:   usdToRawAmount(price * size),
		TakerAmount:   usdToRawAmount(size),
		Side:          model.BUY,
		FeeRateBps:    "0",
		Nonce:         "0",
		Signer:        c.address,
		Expiration:    "0",
		SignatureType: c.signatureType,
	}

	signedOrder, err := c.orderBuilder.BuildSignedOrder(c.privateKey, orderData, model.CTFExchange)
	if err != nil {
		return "", fmt.Errorf("build signed order: %w", err)
	}

	reqBody, err := json.Marshal(types.OrderSubmissionRequest{
		Order:     toJSONOrder(signedOrder),
		Owner:     c.apiKey,
		OrderType: "GTC",
	})
	if err != nil {
		return "", fmt.Errorf("marshal order request: %w", err)
	}

	body, err := c.doAuthenticated(ctx, http.MethodPost, "/order", reqBody)
	if err != nil {
		OrdersFailedTotal.Inc()
		return "", err
	}

	var orderResp types.OrderSubmissionResponse
	if err := json.Unmarshal(body, &orderResp); err != nil {
		return "", fmt.Errorf("parse order response: %w", err)
	}

	if !orderResp.Success {
		OrdersFailedTotal.Inc()
		return "", &types.OrderError{
			Code:    orderResp.Status,
			Message: orderResp.ErrorMsg,
		}
	}

	OrdersPlacedTotal.Inc()
	c.logger.Info("order-placed",
		zap.String("order-id", orderResp.OrderID),
		zap.String("token-id", tokenID),
		zap.Float64("price", price),
		zap.Float64("size", size),
		zap.String("status", orderResp.Status))

	return orderResp.OrderID, nil
}

// CancelOrder cancels a single resting order by ID.
func (c *OrderClient) CancelOrder(ctx context.Context, orderID string) error {
	reqBody, err := json.Marshal(map[string]string{"orderID": orderID})
	if err != nil {
		return fmt.Errorf("marshal cancel request: %w", err)
	}

	if _, err := c.doAuthenticated(ctx, http.MethodDelete, "/order", reqBody); err != nil {
		CancelsFailedTotal.Inc()
		return fmt.Errorf("cancel order %s: %w", orderID, err)
	}

	OrdersCanceledTotal.Inc()
	c.logger.Info("order-canceled", zap.String("order-id", orderID))
	return nil
}

// ListOpenOrders returns all live orders for the authenticated account.
func (c *OrderClient) ListOpenOrders(ctx context.Context) ([]types.OrderInfo, error) {
	body, err := c.doAuthenticated(ctx, http.MethodGet, "/data/orders", nil)
	if err != nil {
		return nil, fmt.Errorf("list open orders: %w", err)
	}

	var orders []types.OrderInfo
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, fmt.Errorf("parse orders response: %w", err)
	}

	return orders, nil
}

// doAuthenticated sends a request with L2 HMAC auth headers and returns
// the response body on 2xx.
func (c *OrderClient) doAuthenticated(ctx context.Context, method, path string, reqBody []byte) ([]byte, error) {
	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	signature, err := c.signRequest(timestamp, method, path, reqBody)
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if len(reqBody) > 0 {
		bodyReader = strings.NewReader(string(reqBody))
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("POLY_API_KEY", c.apiKey)
	req.Header.Set("POLY_SIGNATURE", signature)
	req.Header.Set("POLY_TIMESTAMP", timestamp)
	req.Header.Set("POLY_PASSPHRASE", c.passphrase)
	req.Header.Set("POLY_ADDRESS", c.address)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// signRequest computes the L2 HMAC signature over timestamp+method+path+body.
// The secret is URL-safe base64, matching the official clients.
func (c *OrderClient) signRequest(timestamp, method, path string, body []byte) (string, error) {
	secretBytes, err := base64.URLEncoding.DecodeString(c.secret)
	if err != nil {
		return "", fmt.Errorf("decode secret: %w", err)
	}

	h := hmac.New(sha256.New, secretBytes)
	h.Write([]byte(timestamp + method + path + string(body)))
	return base64.URLEncoding.EncodeToString(h.Sum(nil)), nil
}

func toJSONOrder(order *model.SignedOrder) types.SignedOrderJSON {
	side := "BUY"
	if order.Side.Uint64() == uint64(model.SELL) {
		side = "SELL"
	}

	return types.SignedOrderJSON{
		Salt:          order.Salt.Int64(),
		Maker:         order.Maker.Hex(),
		Signer:        order.Signer.Hex(),
		Taker:         order.Taker.Hex(),
		TokenID:       order.TokenId.String(),
		MakerAmount:   order.MakerAmount.String(),
		TakerAmount:   order.TakerAmount.String(),
		Side:          side,
		Expiration:    order.Expiration.String(),
		Nonce:         order.Nonce.String(),
		FeeRateBps:    order.FeeRateBps.String(),
		SignatureType: int(order.SignatureType.Int64()),
		Signature:     "0x" + common.Bytes2Hex(order.Signature),
	}
}

// usdToRawAmount converts a USD amount to the raw 6-decimal integer
// representation used on chain.
func usdToRawAmount(usd float64) string {
	return fmt.Sprintf("%d", int64(usd*1000000))
}
