package hiveos

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"gitlab.com/TitanInd/sprcalc/internal/interfaces"
	"gitlab.com/TitanInd/sprcalc/internal/lib"
)

type hashrateInfo struct {
	Coin string  `json:"coin"`
	Hash float64 `json:"hash"` // KH/s
}

type minersSummary struct {
	Hashrates []hashrateInfo `json:"hashrates"`
}

type worker struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	MinersSummary minersSummary `json:"miners_summary"`
}

type workersResponse struct {
	Data []worker `json:"data"`
}

// Client sums up the hashrate of the farm workers reported by the HiveOS api
type Client struct {
	apiURL     *url.URL
	apiKey     string
	farmID     string
	coin       string
	httpClient *http.Client
	log        interfaces.ILogger
}

func NewClient(apiURL, apiKey, farmID, coin string, httpClient *http.Client, log interfaces.ILogger) (*Client, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		apiURL:     u,
		apiKey:     apiKey,
		farmID:     farmID,
		coin:       strings.ToUpper(coin),
		httpClient: httpClient,
		log:        log,
	}, nil
}

// GetWorkersHashrateKHS returns total hashrate of all farm workers mining the configured coin, in KH/s.
// Failures are logged and reported as 0
func (c *Client) GetWorkersHashrateKHS(ctx context.Context) float64 {
	headers := map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", c.apiKey),
		"Content-Type":  lib.ContentTypeApplicationJSON,
	}
	endpoint := c.apiURL.JoinPath("farms", url.PathEscape(c.farmID), "workers").String()

	res, err := lib.GetJSON[workersResponse](ctx, c.httpClient, endpoint, headers)
	if err != nil {
		c.logFailure(ctx, err)
		return 0
	}

	total := 0.0
	for _, w := range res.Data {
		workerTotal := 0.0
		for _, hr := range w.MinersSummary.Hashrates {
			if strings.EqualFold(hr.Coin, c.coin) {
				workerTotal += hr.Hash
			}
		}
		c.log.Debugf("worker %s (%d): %.2f KH/s", w.Name, w.ID, workerTotal)
		total += workerTotal
	}

	return total
}

func (c *Client) logFailure(ctx context.Context, err error) {
	if ctx.Err() != nil {
		c.log.Debugf("fetching workers cancelled: %s", err)
		return
	}

	var statusErr *lib.StatusError
	if errors.As(err, &statusErr) {
		c.log.Warnf("failed to fetch workers data: %d %s", statusErr.StatusCode, statusErr.Body)
		return
	}
	c.log.Warnf("failed to fetch workers data: %s", err)
}
