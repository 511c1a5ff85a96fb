// Package daemon talks JSON-RPC to a bitcoind-compatible wallet daemon.
package daemon

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const feeConfirmationTarget = 6

type Config struct {
	URL           string
	User          string
	Password      string
	AddressPrefix string
	RPS           float64
	Timeout       time.Duration
	FallbackFee   decimal.Decimal
}

// Dial opens an HTTP JSON-RPC client with basic auth.
func Dial(ctx context.Context, cfg Config) (*rpc.Client, error) {
	opts := []rpc.ClientOption{
		rpc.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.User != "" {
		creds := base64.StdEncoding.EncodeToString([]byte(cfg.User + ":" + cfg.Password))
		opts = append(opts, rpc.WithHeader("Authorization", "Basic "+creds))
	}

	client, err := rpc.DialOptions(ctx, cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}
	return client, nil
}

type Client struct {
	logs        *zap.SugaredLogger
	rpc         RPCCaller
	limiter     *rate.Limiter
	prefix      string
	fallbackFee decimal.Decimal
}

func NewClient(logger *zap.SugaredLogger, caller RPCCaller, cfg Config) *Client {
	limit := rate.Inf
	burst := 1
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
		burst = int(cfg.RPS)
		if burst < 1 {
			burst = 1
		}
	}

	return &Client{
		logs:        logger,
		rpc:         caller,
		limiter:     rate.NewLimiter(limit, burst),
		prefix:      cfg.AddressPrefix,
		fallbackFee: cfg.FallbackFee,
	}
}

func (c *Client) CreateAddress(ctx context.Context) (string, error) {
	var address string
	if err := c.call(ctx, &address, "getnewaddress"); err != nil {
		return "", err
	}
	return c.strip(address), nil
}

// ListAddresses returns every address the wallet knows, including ones that
// never received funds, without the chain prefix and without duplicates.
func (c *Client) ListAddresses(ctx context.Context) ([]string, error) {
	var received []receivedByAddress
	if err := c.call(ctx, &received, "listreceivedbyaddress", 0, true); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(received))
	addresses := make([]string, 0, len(received))
	for _, r := range received {
		address := c.strip(r.Address)
		if _, ok := seen[address]; ok {
			continue
		}
		seen[address] = struct{}{}
		addresses = append(addresses, address)
	}
	return addresses, nil
}

func (c *Client) Balance(ctx context.Context) (decimal.Decimal, error) {
	var balance decimal.Decimal
	if err := c.call(ctx, &balance, "getbalance"); err != nil {
		return decimal.Decimal{}, err
	}
	return balance, nil
}

func (c *Client) BlockCount(ctx context.Context) (int64, error) {
	var height int64
	if err := c.call(ctx, &height, "getblockcount"); err != nil {
		return 0, err
	}
	return height, nil
}

func (c *Client) BlockHash(ctx context.Context, height int64) (string, error) {
	var hash string
	if err := c.call(ctx, &hash, "getblockhash", height); err != nil {
		return "", err
	}
	return hash, nil
}

// ListSinceBlock lists wallet activity after the given block. An empty hash
// lists everything.
func (c *Client) ListSinceBlock(ctx context.Context, hash string) ([]Entry, error) {
	var since sinceBlock
	var err error
	if hash == "" {
		err = c.call(ctx, &since, "listsinceblock")
	} else {
		err = c.call(ctx, &since, "listsinceblock", hash)
	}
	if err != nil {
		return nil, err
	}

	for i := range since.Transactions {
		since.Transactions[i].Address = c.strip(since.Transactions[i].Address)
	}
	return since.Transactions, nil
}

func (c *Client) Transaction(ctx context.Context, hash string) (TransactionDetail, error) {
	var detail TransactionDetail
	if err := c.call(ctx, &detail, "gettransaction", hash); err != nil {
		return TransactionDetail{}, err
	}
	return detail, nil
}

// EstimateFee asks for a smart fee estimate and falls back to the configured
// fee when the daemon has not collected enough data.
func (c *Client) EstimateFee(ctx context.Context) (decimal.Decimal, error) {
	var estimate smartFee
	if err := c.call(ctx, &estimate, "estimatesmartfee", feeConfirmationTarget); err != nil {
		return decimal.Decimal{}, err
	}

	if estimate.FeeRate == nil || !estimate.FeeRate.IsPositive() {
		c.logs.Warnw("fee estimate unavailable, using fallback",
			"fallback", c.fallbackFee.String(),
			"errors", estimate.Errors)
		return c.fallbackFee, nil
	}
	return *estimate.FeeRate, nil
}

func (c *Client) SendToAddress(ctx context.Context, to string, amount decimal.Decimal, comment, commentTo string) (string, error) {
	var hash string
	err := c.call(ctx, &hash, "sendtoaddress", to, json.Number(amount.StringFixed(8)), comment, commentTo)
	if err != nil {
		return "", err
	}
	return hash, nil
}

func (c *Client) call(ctx context.Context, result any, method string, args ...any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &Error{Method: method, Message: err.Error(), Kind: KindRPC, Err: err}
	}

	start := time.Now()
	err := c.rpc.CallContext(ctx, result, method, args...)
	if err != nil {
		mapped := mapError(method, err)
		c.logs.Errorw("daemon call failed",
			"method", method,
			"duration", time.Since(start),
			"error", mapped)
		return mapped
	}

	c.logs.Debugw("daemon call", "method", method, "duration", time.Since(start))
	return nil
}

func (c *Client) strip(address string) string {
	if c.prefix == "" {
		return address
	}
	return strings.TrimPrefix(address, c.prefix)
}
