package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"github.com/initia-labs/assetfields/metrics"
	"github.com/initia-labs/assetfields/sentry_integration"
	"github.com/initia-labs/assetfields/types"
)

type response struct {
	code int
	body []byte
	errs []error
}

// get performs one GET against the explorer. It returns when ctx is done even
// if the request is still in flight. There are no retries: a failed request
// is reported to the caller as is.
func (c *Client) get(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	start := time.Now()
	endpoint := c.basePath + path

	metrics.ConcurrentRequestsActive().Inc()
	defer func() {
		metrics.ConcurrentRequestsActive().Dec()
		metrics.ExternalAPILatency().WithLabelValues(path).Observe(time.Since(start).Seconds())
	}()

	parsedUrl, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}

	if params != nil {
		query := parsedUrl.Query()
		for key, value := range params {
			query.Set(key, value)
		}
		parsedUrl.RawQuery = query.Encode()
	}

	timeout := c.requestTimeout(ctx)
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}

	req := c.client.Get(parsedUrl.String())
	req.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)

	// The request runs aside so cancellation returns at once. An abandoned
	// request still ends at its own timeout.
	done := make(chan response, 1)
	go func() {
		code, body, errs := req.Timeout(timeout).Bytes()
		done <- response{code: code, body: body, errs: errs}
	}()

	var res response
	select {
	case <-ctx.Done():
		metrics.ExternalAPIRequestsTotal().WithLabelValues(path, "canceled").Inc()
		return nil, ctx.Err()
	case res = <-done:
	}

	code, body := res.code, res.body
	if err := errors.Join(res.errs...); err != nil {
		metrics.ExternalAPIRequestsTotal().WithLabelValues(path, "error").Inc()
		sentry_integration.CaptureCurrentHubException(err, sentry.LevelError)
		return nil, err
	}

	metrics.ExternalAPIRequestsTotal().WithLabelValues(path, fmt.Sprintf("%d", code)).Inc()

	if code == fiber.StatusOK {
		return body, nil
	}

	err = fmt.Errorf("http response: %d, body: %s", code, errorMessage(body))
	if code >= fiber.StatusInternalServerError {
		sentry_integration.CaptureCurrentHubException(err, sentry.LevelError)
	}
	return nil, err
}

// requestTimeout shortens the configured timeout to the context deadline.
func (c *Client) requestTimeout(ctx context.Context) time.Duration {
	timeout := c.cfg.QueryTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	return timeout
}

func decodeResponse[T any](body []byte) (types.ExplorerResponse[T], error) {
	var res types.ExplorerResponse[T]
	if err := json.Unmarshal(body, &res); err != nil {
		return res, fmt.Errorf("decode explorer response: %w", err)
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = "unknown error"
		}
		return res, fmt.Errorf("explorer reported failure: %s", msg)
	}
	return res, nil
}

// errorMessage prefers the envelope message over the raw body.
func errorMessage(body []byte) string {
	var res struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &res); err == nil && res.Message != "" {
		return res.Message
	}
	return string(body)
}
