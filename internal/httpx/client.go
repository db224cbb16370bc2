package httpx

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

// Client wraps http.Client with rate limiting and bounded retries for
// idempotent upstream calls. Retries stay inside the per-call timeout budget;
// a request that times out is failed, not re-issued.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	maxElapsed time.Duration
}

type Options struct {
	Timeout         time.Duration
	RequestsPerSec  int
	MaxRetryElapsed time.Duration
}

func New(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RequestsPerSec == 0 {
		opts.RequestsPerSec = 5
	}
	if opts.MaxRetryElapsed == 0 {
		opts.MaxRetryElapsed = opts.Timeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(opts.RequestsPerSec)), opts.RequestsPerSec),
		maxElapsed: opts.MaxRetryElapsed,
	}
}

// Do performs the request after waiting for the rate limiter, retrying
// transient failures (network errors, 5xx) with exponential backoff.
// Client-class statuses are permanent and surface immediately as
// *StatusError. The caller owns the response body on success.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var resp *http.Response
	operation := func() error {
		var err error
		resp, err = c.httpClient.Do(req.WithContext(ctx))
		if err != nil {
			return err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			_ = resp.Body.Close()
			return &StatusError{StatusCode: resp.StatusCode}
		}
		if resp.StatusCode >= http.StatusBadRequest {
			_ = resp.Body.Close()
			return backoff.Permanent(&StatusError{StatusCode: resp.StatusCode})
		}
		return nil
	}

	strategy := backoff.NewExponentialBackOff()
	strategy.MaxElapsedTime = c.maxElapsed

	if err := backoff.Retry(operation, backoff.WithContext(strategy, ctx)); err != nil {
		return nil, err
	}

	return resp, nil
}

// StatusError reports a non-2xx upstream status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}
