package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rentacar-backend/internal/pkg/money"
)

// DefaultCurrencies is the single-currency fallback callers use when the
// rate source is unreachable.
var DefaultCurrencies = map[string]string{"USD": "US Dollar"}

// RateSourceError is the only error kind this package produces. It covers
// transport failures, non-2xx statuses and responses missing the requested
// rate, and is always recoverable: callers fall back to a rate of 1 or the
// single-currency default list.
type RateSourceError struct {
	Op     string
	Status int
	Err    error
}

func (e *RateSourceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("rate source: %s failed with status %d", e.Op, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("rate source: %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("rate source: %s failed", e.Op)
}

func (e *RateSourceError) Unwrap() error {
	return e.Err
}

// Client is a thin read-through client for an external exchange-rate API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// ListCurrencies fetches the supported currency list as code -> display name.
func (c *Client) ListCurrencies(ctx context.Context) (map[string]string, error) {
	var currencies map[string]string
	if err := c.getJSON(ctx, c.baseURL+"/currencies", "list currencies", &currencies); err != nil {
		return nil, err
	}
	if len(currencies) == 0 {
		return nil, &RateSourceError{Op: "list currencies", Err: fmt.Errorf("empty currency list")}
	}
	return currencies, nil
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// FetchRate returns the point-in-time exchange rate from base to target.
// Identical codes short-circuit to 1 without a remote call.
func (c *Client) FetchRate(ctx context.Context, base, target string) (float64, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	target = strings.ToUpper(strings.TrimSpace(target))
	if base == target {
		return 1, nil
	}

	endpoint := fmt.Sprintf("%s/latest?base=%s&symbols=%s",
		c.baseURL, url.QueryEscape(base), url.QueryEscape(target))

	var body ratesResponse
	if err := c.getJSON(ctx, endpoint, "fetch rate", &body); err != nil {
		return 0, err
	}
	rate, ok := body.Rates[target]
	if !ok {
		return 0, &RateSourceError{Op: "fetch rate", Err: fmt.Errorf("rate for %s missing from response", target)}
	}
	return rate, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, op string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &RateSourceError{Op: op, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RateSourceError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RateSourceError{Op: op, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RateSourceError{Op: op, Err: err}
	}
	return nil
}

// Convert applies an exchange rate to an already-computed amount and rounds
// to 2 decimals. Pure and total: it never fails.
func Convert(amount, rate float64) float64 {
	return money.Round2(amount * rate)
}
