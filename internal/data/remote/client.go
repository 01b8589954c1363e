// Package remote implements menu.Repository against a json-server style
// REST API, such as the one served by `confusion serve`.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/colonyops/confusion/internal/core/menu"
)

const defaultTimeout = 10 * time.Second

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: Error %d: %s", e.Method, e.URL, e.Code, http.StatusText(e.Code))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Client talks to a json-server compatible backend.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ menu.Repository = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListDishes fetches GET {base}dishes.
func (c *Client) ListDishes(ctx context.Context) ([]menu.Dish, error) {
	var dishes []menu.Dish
	if err := c.do(ctx, http.MethodGet, "dishes", nil, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

// GetDish fetches GET {base}dishes/{id}. A 404 maps to menu.ErrDishNotFound.
func (c *Client) GetDish(ctx context.Context, id int) (menu.Dish, error) {
	var dish menu.Dish
	if err := c.do(ctx, http.MethodGet, "dishes/"+strconv.Itoa(id), nil, &dish); err != nil {
		return menu.Dish{}, notFound(err, id)
	}
	return dish, nil
}

// ListComments fetches GET {base}comments?dishId={id}. The result is never nil.
func (c *Client) ListComments(ctx context.Context, dishID int) ([]menu.Comment, error) {
	q := url.Values{"dishId": []string{strconv.Itoa(dishID)}}

	comments := []menu.Comment{}
	if err := c.do(ctx, http.MethodGet, "comments?"+q.Encode(), nil, &comments); err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []menu.Comment{}
	}
	return comments, nil
}

// PostComment sends POST {base}comments and returns the stored comment.
// An empty date is stamped with the current time, as the web client did.
func (c *Client) PostComment(ctx context.Context, nc menu.NewComment) (menu.Comment, error) {
	if nc.Date == "" {
		nc.Date = time.Now().UTC().Format(time.RFC3339)
	}

	var out menu.Comment
	if err := c.do(ctx, http.MethodPost, "comments", nc, &out); err != nil {
		return menu.Comment{}, notFound(err, nc.DishID)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	endpoint := c.baseURL + path

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debug().
		Str("method", method).
		Str("url", endpoint).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("remote request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{
			Method: method,
			URL:    endpoint,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(msg)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, endpoint, err)
	}
	return nil
}

func notFound(err error, id int) error {
	var se *StatusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		return fmt.Errorf("dish %d: %w", id, menu.ErrDishNotFound)
	}
	return err
}
