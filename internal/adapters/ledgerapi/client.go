package ledgerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ecomhub/finance_backoffice/internal/apperrors"
	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/ecomhub/finance_backoffice/internal/middleware"
	"github.com/ecomhub/finance_backoffice/internal/utils"
	"github.com/ecomhub/finance_backoffice/internal/utils/pagination"
	"golang.org/x/oauth2"
)

const (
	apiVersion      = "/api/v1"
	maxResponseSize = 10 << 20
)

// Client talks to the Ledger REST API on behalf of a principal. It never retries.
type Client struct {
	baseURL   string
	timeout   time.Duration
	transport http.RoundTripper
}

// Option customises a Client.
type Option func(*Client)

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = rt
	}
}

// NewClient creates a client for the Ledger API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/") + apiVersion,
		timeout:   timeout,
		transport: http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// httpClient returns a client that authenticates as p. The bearer token is cleaned of any
// "Bearer " prefix; an empty token sends the request unauthenticated.
func (c *Client) httpClient(p domain.Principal) *http.Client {
	transport := c.transport
	if token := utils.CleanBearerToken(p.AccessToken); token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   c.transport,
		}
	}
	return &http.Client{Timeout: c.timeout, Transport: transport}
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// MessageResponse is the body of delete calls.
type MessageResponse struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, p domain.Principal, method, path string, query url.Values, body, out any) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build ledger request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient(p).Do(req)
	if err != nil {
		logger.Error("Ledger API unreachable", slog.String("method", method), slog.String("path", path), slog.String("error", err.Error()))
		return apperrors.NewUnreachableError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return apperrors.NewUnreachableError(err)
	}

	logger.Debug("Ledger API call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		upstream := eb.Message
		if upstream == "" {
			upstream = eb.Error
		}
		logger.Warn("Ledger API returned an error",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("upstream_message", upstream),
		)
		return apperrors.NewRemoteError(resp.StatusCode, upstream, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return apperrors.NewRemoteError(resp.StatusCode, "invalid response from ledger", raw)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode ledger response for %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, p domain.Principal, path string, query url.Values, out any) error {
	return c.do(ctx, p, http.MethodGet, path, query, nil, out)
}

// send issues a request with a JSON body. Action endpoints get an empty object when body is nil.
func (c *Client) send(ctx context.Context, p domain.Principal, method, path string, body, out any) error {
	if body == nil && method == http.MethodPost {
		body = struct{}{}
	}
	return c.do(ctx, p, method, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, p domain.Principal, path string) error {
	var msg MessageResponse
	return c.do(ctx, p, http.MethodDelete, path, nil, nil, &msg)
}

// fetch decodes a single entity.
func fetch[T any](ctx context.Context, c *Client, p domain.Principal, method, path string, body any) (*T, error) {
	var out T
	if err := c.send(ctx, p, method, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// fetchList decodes an unpaginated list. A missing list decodes as empty.
func fetchList[T any](ctx context.Context, c *Client, p domain.Principal, path string, query url.Values) ([]T, error) {
	out := []T{}
	if err := c.get(ctx, p, path, query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// fetchPage decodes a paginated list. total_pages is derived when the API leaves it out.
func fetchPage[T any](ctx context.Context, c *Client, p domain.Principal, path string, query url.Values) (*domain.Page[T], error) {
	page := domain.Page[T]{Results: []T{}}
	if err := c.get(ctx, p, path, query, &page); err != nil {
		return nil, err
	}
	if page.Results == nil {
		page.Results = []T{}
	}
	if page.TotalPages == 0 {
		page.TotalPages = pagination.TotalPages(page.TotalResults, page.Limit)
	}
	return &page, nil
}

func listQuery(params domain.ListParams) url.Values {
	page, limit := pagination.Normalize(params.Page, params.Limit)
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	return q
}

func setIfNotEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setIfPositive(q url.Values, key string, value int64) {
	if value > 0 {
		q.Set(key, strconv.FormatInt(value, 10))
	}
}

func idPath(resource string, id int64, suffix ...string) string {
	path := "/" + resource + "/" + strconv.FormatInt(id, 10)
	for _, s := range suffix {
		path += "/" + s
	}
	return path
}
