package quote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"paxosbot/internal/configuration"
	"paxosbot/internal/metrics"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const tokenHeader = "X-Finnhub-Token"

// pricePath is where the provider reports the current price.
const pricePath = "c"

var (
	ErrUnsupportedTicker   = errors.New("unsupported ticker")
	ErrProviderUnavailable = errors.New("quote provider unavailable")
	ErrMalformedResponse   = errors.New("malformed quote response")
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
	tickers map[string]struct{}
}

func NewClient(cfg *configuration.QuoteProperties) *Client {
	timeout := cfg.RequestTimeout()
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	tickers := make(map[string]struct{}, len(cfg.Tickers))
	for _, t := range cfg.Tickers {
		tickers[strings.ToUpper(t)] = struct{}{}
	}

	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
		tickers: tickers,
	}
}

// Normalize upper-cases ticker and checks it against the allowed set.
func (c *Client) Normalize(ticker string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if _, ok := c.tickers[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedTicker, ticker)
	}
	return t, nil
}

// Price fetches the current price of ticker as the provider printed it.
func (c *Client) Price(ctx context.Context, ticker string) (string, error) {
	symbol, err := c.Normalize(ticker)
	if err != nil {
		metrics.QuoteRequestsTotal.WithLabelValues("unsupported").Inc()
		return "", err
	}

	price, err := c.fetch(ctx, symbol)
	if err != nil {
		switch {
		case errors.Is(err, ErrProviderUnavailable):
			metrics.QuoteRequestsTotal.WithLabelValues("unavailable").Inc()
		case errors.Is(err, ErrMalformedResponse):
			metrics.QuoteRequestsTotal.WithLabelValues("malformed").Inc()
		default:
			metrics.QuoteRequestsTotal.WithLabelValues("error").Inc()
		}
		slog.Warn("quote lookup failed", "ticker", symbol, "error", err)
		return "", err
	}

	metrics.QuoteRequestsTotal.WithLabelValues("ok").Inc()
	slog.Debug("quote fetched", "ticker", symbol, "price", price)
	return price, nil
}

func (c *Client) fetch(ctx context.Context, symbol string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("quote base url: %w", err)
	}
	q := u.Query()
	q.Set("symbol", symbol)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	if c.token != "" {
		req.Header.Set(tokenHeader, c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return "", fmt.Errorf("read quote: %w", err)
	}

	price := gjson.GetBytes(body, pricePath)
	if price.Type != gjson.Number {
		return "", fmt.Errorf("%w: no numeric %q in %s", ErrMalformedResponse, pricePath, body)
	}
	return price.Raw, nil
}
