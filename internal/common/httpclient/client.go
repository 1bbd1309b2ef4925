// internal/common/httpclient/client.go
package httpclient

import (
	"context"
	goerrors "errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"finance-agent/internal/common/errors"
)

type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}

func (c *Client) DoWithContext(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)
	return c.httpClient.Do(req)
}

// DoWithRetry retries transient failures with exponential backoff
// (100ms, 200ms, 400ms...). Each failure is classified into a standard
// error code and the retry policy for that code caps the budget, so a
// throttled provider is retried fewer times than an unreachable one.
// Responses with status 429 or >= 500 count as failures; everything
// else is returned to the caller as-is.
func (c *Client) DoWithRetry(ctx context.Context, req *http.Request, maxAttempts int) (*http.Response, error) {
	var lastErr *errors.StandardError

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := c.DoWithContext(ctx, req.Clone(ctx))
		switch {
		case err != nil:
			lastErr = classifyTransportError(req.URL.Host, err)
		case resp.StatusCode == http.StatusTooManyRequests:
			resp.Body.Close()
			lastErr = errors.NewRateLimitedError(req.URL.Host, fmt.Sprintf("server returned status %d", resp.StatusCode))
		case resp.StatusCode >= 500:
			resp.Body.Close()
			lastErr = errors.NewProviderUnreachableError(req.URL.Host, fmt.Errorf("server returned status %d", resp.StatusCode))
		default:
			return resp, nil
		}

		if !errors.IsRetryableErrorCode(lastErr.Code) {
			break
		}
		if attempt >= maxAttempts || attempt > errors.GetRetryCount(lastErr.Code) {
			break
		}

		backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("request failed after retries: %w", lastErr)
}

// classifyTransportError maps a transport failure to a standard error
// so the retry policy can size the budget per failure mode.
func classifyTransportError(host string, err error) *errors.StandardError {
	var nerr net.Error
	if goerrors.As(err, &nerr) && nerr.Timeout() {
		return errors.NewProviderTimeoutError(host)
	}
	return errors.NewProviderUnreachableError(host, err)
}
