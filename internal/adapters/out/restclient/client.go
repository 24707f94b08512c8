// Package restclient is the JSON-over-HTTP transport shared by the clients of
// the collaborating services. Every call is bounded by a per-attempt timeout
// and retried exactly once on transient failures: network errors, 429 and 5xx.
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/metrics"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultTimeout    = 5 * time.Second
	defaultRetryDelay = 200 * time.Millisecond
	maxRetries        = 1
	maxBodyBytes      = 1 << 20
)

// StatusError is an HTTP answer with a status code of 400 or above.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

// IsNotFound reports whether err is a 404 answer.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

type Client struct {
	service    string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	retryDelay time.Duration
	headers    http.Header
	logger     *slog.Logger
}

type Option func(*Client)

// WithHeader adds a header sent with every request.
func WithHeader(key string, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// WithRetryDelay sets the pause before the single retry.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = d
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the service rooted at baseURL. A non-positive
// timeout falls back to DefaultTimeout.
func New(service string, baseURL string, timeout time.Duration, logger *slog.Logger, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		service:    service,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    timeout,
		retryDelay: defaultRetryDelay,
		headers:    make(http.Header),
		logger:     logger.With("component", "restclient", "service", service),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Service returns the name used in errors, logs and metrics.
func (c *Client) Service() string {
	return c.service
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Put(ctx context.Context, path string, body any, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

// Do sends one JSON request and decodes the answer into out when out is not nil.
//
// A 404 answer is returned as a *StatusError so callers can map it to their own
// not-found error. Every other failure is returned as an errs.ResourceUnavailableError.
func (c *Client) Do(ctx context.Context, method string, path string, query url.Values, body any, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return errs.NewResourceUnavailableErrorWithCause(c.service, fmt.Errorf("encode %s %s: %w", method, path, err))
		}
	}

	var data []byte
	attempt := func() error {
		var err error
		data, err = c.send(ctx, method, target, payload)
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryDelay), maxRetries),
		ctx,
	)
	notify := func(err error, wait time.Duration) {
		metrics.OutboundCalls.WithLabelValues(c.service, "retried").Inc()
		c.logger.WarnContext(ctx, "retrying call",
			"method", method, "path", path, "wait", wait, "error", err)
	}

	if err := backoff.RetryNotify(attempt, policy, notify); err != nil {
		if IsNotFound(err) {
			metrics.OutboundCalls.WithLabelValues(c.service, "not_found").Inc()
			return err
		}
		metrics.OutboundCalls.WithLabelValues(c.service, "failed").Inc()
		return errs.NewResourceUnavailableErrorWithCause(c.service, fmt.Errorf("%s %s: %w", method, path, err))
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			metrics.OutboundCalls.WithLabelValues(c.service, "failed").Inc()
			return errs.NewResourceUnavailableErrorWithCause(c.service, fmt.Errorf("decode %s %s: %w", method, path, err))
		}
	}

	metrics.OutboundCalls.WithLabelValues(c.service, "ok").Inc()
	return nil
}

// send performs a single attempt. Errors that must not be retried are wrapped
// with backoff.Permanent.
func (c *Client) send(ctx context.Context, method string, target string, payload []byte) ([]byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(attemptCtx, method, target, body)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		var netErr net.Error
		if errors.As(err, &netErr) {
			return nil, err
		}
		return nil, backoff.Permanent(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		statusErr := &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(data))}
		if isRetryableStatus(resp.StatusCode) {
			return nil, statusErr
		}
		return nil, backoff.Permanent(statusErr)
	}

	return data, nil
}
