// Package inference provides a small JSON client for hosted model inference endpoints
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	perr "authorcheck/internal/platform/errors"
	"authorcheck/internal/platform/logger"
)

const (
	defaultTimeout = 30 * time.Second
	defaultUA      = "authorcheck"
	defaultMaxBody = 4 << 20
	excerptLen     = 256
)

// Options configures the Client
type Options struct {
	URL       string
	Token     string
	UserAgent string
	Timeout   time.Duration

	// MaxBody caps how much of a response is read
	MaxBody int64
}

// StatusError is returned for non-2xx responses
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("inference endpoint returned %d", e.Status)
	}
	return fmt.Sprintf("inference endpoint returned %d: %s", e.Status, e.Body)
}

// Client posts JSON to a single inference endpoint
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a new Client with sane defaults
func NewClient(component string, o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxBody <= 0 {
		o.MaxBody = defaultMaxBody
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named(component),
		now:  time.Now,
	}
}

// URL returns the endpoint the client posts to
func (c *Client) URL() string { return c.opts.URL }

// Post encodes payload, posts it, and returns the raw JSON response body.
// The request is bound to ctx so a cancelled caller abandons only its own call
func (c *Client) Post(ctx context.Context, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "inference encode failed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.URL, bytes.NewReader(body))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "inference new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.Token)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "inference request failed")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn().Err(cerr).Msg("inference body close failed")
		}
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.opts.MaxBody))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "inference read failed")
	}

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Int("bytes", len(raw)).
		Msg("inference http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode, Body: excerpt(raw)}
	}
	if !json.Valid(raw) {
		return nil, perr.JSONErrf("inference endpoint returned invalid JSON")
	}
	return json.RawMessage(raw), nil
}

func excerpt(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > excerptLen {
		s = s[:excerptLen] + "..."
	}
	return s
}
