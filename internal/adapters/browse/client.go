// Package browse provides a client for the business browsing API plus an
// orchestrator that coordinates the paired page and count requests a filter
// state change fans out into
package browse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"hugin/internal/core/filter"
	perr "hugin/internal/platform/errors"
	"hugin/internal/services/api/businesses/domain"
)

const (
	defaultTimeout = 10 * time.Second
	defaultUA      = "hugin-browse"
)

// Options configures the Client
type Options struct {
	// BaseURL points at the API root, including the version prefix
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client is a thin HTTP client for the page and count endpoints
type Client struct {
	http *http.Client
	opts Options
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
	}
}

// Request is one browse view state: a filter plus its page dimensions
type Request struct {
	Filter filter.Query
	SortBy string
	Order  string
	Limit  int
	Cursor string
}

// values merges the filter keys with the page knobs
func (r Request) values() url.Values {
	v := r.Filter.Values()
	if r.SortBy != "" {
		v.Set("sortBy", r.SortBy)
	}
	if r.Order != "" {
		v.Set("order", r.Order)
	}
	if r.Limit > 0 {
		v.Set("limit", strconv.Itoa(r.Limit))
	}
	if r.Cursor != "" {
		v.Set("cursor", r.Cursor)
	}
	return v
}

// FetchPage retrieves one page of results for the request
func (c *Client) FetchPage(ctx context.Context, req Request) (domain.PageResult, error) {
	var out domain.PageResult
	err := c.get(ctx, "/businesses", req.values(), &out)
	return out, err
}

// FetchCount retrieves the total for the request's filter, ignoring its
// page dimensions
func (c *Client) FetchCount(ctx context.Context, req Request) (domain.CountResult, error) {
	var out domain.CountResult
	err := c.get(ctx, "/businesses/count", req.Filter.Values(), &out)
	return out, err
}

// envelope mirrors the server response wrapper just enough to unwrap data
type envelope struct {
	StatusCode int             `json:"status_code"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, into any) error {
	u := c.opts.BaseURL + path
	if enc := query.Encode(); enc != "" {
		u += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "browse new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "browse request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "browse read failed")
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "browse decode failed")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return perr.Newf(perr.ErrorCodeUnavailable, "browse: %s", msg)
	}
	if err := json.Unmarshal(env.Data, into); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "browse decode data failed")
	}
	return nil
}
