// Package client is the Go SDK for the adpulse backend. It mirrors the
// demo frontend's protocol: JSON bodies with a success envelope over
// /api, configured by a single base URL.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"
)

const (
	DefaultBaseURL = "http://localhost:5000/api"
	EnvBaseURL     = "ADS_API_BASE_URL"

	defaultReadTimeout  = 2 * time.Second
	defaultWriteTimeout = 5 * time.Second

	maxBodyBytes = 1 << 20
)

type Config struct {
	// BaseURL of the /api surface. Falls back to $ADS_API_BASE_URL, then
	// the localhost default.
	BaseURL string

	// ReadTimeout bounds GET requests, WriteTimeout bounds POSTs (training
	// is the slow one).
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	HTTPClient *http.Client
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = os.Getenv(EnvBaseURL)
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = defaultReadTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = defaultWriteTimeout
	}
	if c.HTTPClient == nil {
		// per-request timeouts come from context, not the client
		c.HTTPClient = &http.Client{}
	}
	return c
}

type Client struct {
	cfg Config
	hc  *http.Client
}

func New(cfg Config) *Client {
	cfg = cfg.withDefaults()
	return &Client{cfg: cfg, hc: cfg.HTTPClient}
}

func (c *Client) BaseURL() string { return c.cfg.BaseURL }

// envelope is the part of every response body the client switches on.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// do executes one request and decodes the body into out (when non-nil).
// Any success:false body becomes a *StatusError regardless of HTTP status;
// transport failures map to the sentinel errors.
func (c *Client) do(ctx context.Context, method, path string, reqBody, out any) error {
	var body io.Reader
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	timeout := c.cfg.ReadTimeout
	if method != http.MethodGet {
		timeout = c.cfg.WriteTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return err
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		zlog.Warn().
			Err(err).
			Str("method", method).
			Str("path", path).
			Dur("latency", time.Since(start)).
			Msg("backend_request_failed")
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return mapTransportError(err)
	}

	zlog.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("backend_request_completed")

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Code:       "malformed_response",
			Message:    "response body is not valid JSON",
		}
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &StatusError{StatusCode: resp.StatusCode, Code: env.Code, Message: msg}
	}

	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}

func mapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrTimeout
	}
	return ErrUnavailable
}
