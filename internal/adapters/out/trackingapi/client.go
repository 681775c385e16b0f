// Package trackingapi is the HTTP client of the shipment/tracking backend.
//
// Every call is a single request to <base>/api/v1/tracking/... carrying a
// bearer token from the session store when one is set. Failures come back as
// *errs.TransportError (network, timeout, undecodable body) or
// *errs.BackendError (non-2xx), each with an operator-facing message.
package trackingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 15 * time.Second

	basePath        = "/api/v1/tracking"
	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 64 << 10
)

// Config holds the client settings. Zero values fall back to the defaults.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL  string
	http     *http.Client
	sessions ports.SessionStore
	logger   *slog.Logger
}

var _ ports.TrackingProvider = (*Client)(nil)

// NewClient builds a client. sessions may be nil, in which case no
// Authorization header is sent.
func NewClient(cfg Config, sessions ports.SessionStore, logger *slog.Logger) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("TRACKING_API_URL", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:  base + basePath,
		http:     &http.Client{Timeout: timeout},
		sessions: sessions,
		logger:   logger.With("component", "tracking-api"),
	}, nil
}

// operation names a backend call and the message shown when it fails
// without the backend explaining why.
type operation struct {
	name     string
	fallback string
}

var (
	opCreateShipment = operation{"create shipment", "Failed to create shipment"}
	opTrack          = operation{"track order", "Failed to track order"}
	opUpdateTracking = operation{"update tracking", "Failed to update order tracking information"}
	opSyncStatus     = operation{"sync status", "Failed to sync order status"}
	opCouriers       = operation{"available couriers", "Failed to fetch available couriers"}
	opPickup         = operation{"pickup locations", "Failed to fetch pickup locations"}
	opReturn         = operation{"request return", "Failed to submit return request"}
)

// do issues one request and decodes a 2xx body into out.
func (c *Client) do(ctx context.Context, op operation, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errs.NewTransportError(op.name, op.fallback, fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return errs.NewTransportError(op.name, op.fallback, fmt.Errorf("create request: %w", err))
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.authorize(ctx, req); err != nil {
		return errs.NewTransportError(op.name, op.fallback, err)
	}

	c.logger.DebugContext(ctx, "tracking request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.NewTransportError(op.name, op.fallback, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := backendMessage(resp.Body)
		c.logger.WarnContext(ctx, "tracking request failed",
			"operation", op.name,
			"status", resp.StatusCode,
			"message", msg,
			"request_id", requestID,
		)
		if msg == "" {
			msg = op.fallback
		}
		return errs.NewBackendError(op.name, resp.StatusCode, msg)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewTransportError(op.name, op.fallback, fmt.Errorf("read response: %w", err))
	}

	var env envelopeV1
	if err := json.Unmarshal(raw, &env); err != nil {
		return errs.NewTransportError(op.name, op.fallback, fmt.Errorf("decode response: %w", err))
	}
	if err := env.checkVersion(); err != nil {
		return errs.NewTransportError(op.name, op.fallback, err)
	}
	if env.Success != nil && !*env.Success {
		msg := env.Message
		if msg == "" {
			msg = op.fallback
		}
		return errs.NewBackendError(op.name, resp.StatusCode, msg)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.NewTransportError(op.name, op.fallback, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	if c.sessions == nil {
		return nil
	}
	token, ok, err := c.sessions.Get(ctx, ports.SessionKeyToken)
	if err != nil {
		return fmt.Errorf("read session token: %w", err)
	}
	if ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

// backendMessage extracts "message" from an error body, if it is JSON.
func backendMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var env envelopeV1
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	return strings.TrimSpace(env.Message)
}
