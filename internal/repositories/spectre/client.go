package spectre

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"gitlab.com/TitanInd/sprcalc/internal/estimator"
	"gitlab.com/TitanInd/sprcalc/internal/interfaces"
	"gitlab.com/TitanInd/sprcalc/internal/lib"
)

const (
	pathHashrate    = "/info/hashrate"
	pathPrice       = "/info/price"
	pathBlockReward = "/info/blockreward"

	// api reports hashrate in TH/s
	hashrateToMHS = 1e6
)

type hashrateResponse struct {
	Hashrate float64 `json:"hashrate"`
}

type priceResponse struct {
	Price float64 `json:"price"`
}

type blockRewardResponse struct {
	BlockReward float64 `json:"blockreward"`
}

// Client reads network statistics from the Spectre network api. Every failed
// reading is logged and reported as 0, so the caller never has to handle errors
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	log        interfaces.ILogger
}

func NewClient(baseURL string, httpClient *http.Client, log interfaces.ILogger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:    u,
		httpClient: httpClient,
		log:        log,
	}, nil
}

// GetNetworkHashrate returns network hashrate in MH/s
func (c *Client) GetNetworkHashrate(ctx context.Context) float64 {
	res, err := lib.GetJSON[hashrateResponse](ctx, c.httpClient, c.endpoint(pathHashrate), nil)
	if err != nil {
		c.logFailure(ctx, "hashrate", err)
		return 0
	}
	return res.Hashrate * hashrateToMHS
}

// GetPrice returns USD price of a single SPR
func (c *Client) GetPrice(ctx context.Context) float64 {
	res, err := lib.GetJSON[priceResponse](ctx, c.httpClient, c.endpoint(pathPrice), nil)
	if err != nil {
		c.logFailure(ctx, "SPR price", err)
		return 0
	}
	return res.Price
}

// GetBlockReward returns SPR emitted by the network per second
func (c *Client) GetBlockReward(ctx context.Context) float64 {
	res, err := lib.GetJSON[blockRewardResponse](ctx, c.httpClient, c.endpoint(pathBlockReward), nil)
	if err != nil {
		c.logFailure(ctx, "block reward", err)
		return 0
	}
	return res.BlockReward
}

// GetSnapshot issues all three requests one after another
func (c *Client) GetSnapshot(ctx context.Context) estimator.NetworkSnapshot {
	return estimator.NetworkSnapshot{
		HashrateMHS: c.GetNetworkHashrate(ctx),
		BlockReward: c.GetBlockReward(ctx),
		PriceUSD:    c.GetPrice(ctx),
	}
}

func (c *Client) endpoint(path string) string {
	return c.baseURL.JoinPath(path).String()
}

func (c *Client) logFailure(ctx context.Context, what string, err error) {
	if ctx.Err() != nil {
		c.log.Debugf("fetching %s cancelled: %s", what, err)
		return
	}

	var statusErr *lib.StatusError
	if errors.As(err, &statusErr) {
		c.log.Warnf("failed to fetch %s data: %d %s", what, statusErr.StatusCode, statusErr.Body)
		return
	}
	c.log.Warnf("failed to fetch %s data: %s", what, err)
}
