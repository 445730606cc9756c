// Package chain reads blocks from a nyks node over its REST gateway.
package chain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/nyks-indexer/internal/model"
)

const (
	latestBlockPath = "cosmos/base/tendermint/v1beta1/blocks/latest"
	blockPath       = "cosmos/base/tendermint/v1beta1/blocks/%d"

	maxResponseSize = 64 << 20
)

// Client is an instrumented REST client for block queries.
type Client struct {
	baseURL string
	http    *http.Client
	limiter ratelimit.Limiter
	metrics Metrics
}

// NewClient builds a client for baseURL. A non positive rps disables pacing.
func NewClient(baseURL string, httpClient *http.Client, rps int, metrics Metrics) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("base url is empty")
	}
	if metrics == nil {
		return nil, errors.New("metrics is nil")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		limiter: limiter,
		metrics: metrics,
	}, nil
}

// LatestHeight returns the height of the newest block the node has.
func (c *Client) LatestHeight(ctx context.Context) (height uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("latest_height", err, started)
	}()

	doc, err := c.get(ctx, latestBlockPath)
	if err != nil {
		return 0, fmt.Errorf("get latest block: %w", err)
	}
	h := doc.Get("block.header.height")
	if !h.Exists() {
		return 0, fmt.Errorf("get latest block: %w: no block.header.height", ErrMalformedResponse)
	}
	return h.Uint(), nil
}

// FetchBlock returns the block at height with its transactions still encoded.
func (c *Client) FetchBlock(ctx context.Context, height uint64) (block *model.Block, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("fetch_block", err, started)
	}()

	doc, err := c.get(ctx, fmt.Sprintf(blockPath, height))
	if err != nil {
		return nil, fmt.Errorf("get block %d: %w", height, err)
	}

	header := doc.Get("block.header")
	if !header.Exists() {
		return nil, fmt.Errorf("get block %d: %w: no block.header", height, ErrMalformedResponse)
	}
	block = &model.Block{Height: header.Get("height").Uint()}
	if raw := header.Get("time").String(); raw != "" {
		if block.Time, err = time.Parse(time.RFC3339Nano, raw); err != nil {
			return nil, fmt.Errorf("get block %d: %w: time %q", height, ErrMalformedResponse, raw)
		}
	}
	for _, tx := range doc.Get("block.data.txs").Array() {
		block.Txs = append(block.Txs, tx.String())
	}
	return block, nil
}

func (c *Client) get(ctx context.Context, path string) (gjson.Result, error) {
	c.limiter.Take()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return gjson.Result{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("read body: %w", err)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !gjson.ValidBytes(body) {
		if !ok {
			return gjson.Result{}, &StatusError{HTTPStatus: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		}
		return gjson.Result{}, fmt.Errorf("%w: invalid json", ErrMalformedResponse)
	}

	doc := gjson.ParseBytes(body)
	if code := doc.Get("code"); code.Exists() && code.Int() != 0 {
		return gjson.Result{}, &StatusError{HTTPStatus: resp.StatusCode, Code: code.Int(), Message: doc.Get("message").String()}
	}
	if !ok {
		return gjson.Result{}, &StatusError{HTTPStatus: resp.StatusCode, Message: doc.Get("message").String()}
	}
	return doc, nil
}
