package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	orderdomain "github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	apierrors "github.com/Apurer/go-gin-orders-api/internal/shared/errors"
)

const ordersPath = "/ds3500/api/v2/orders"

// ErrNoContent is returned when the API answers 204.
var ErrNoContent = errors.New("orders API returned no content")

// APIError is a non-2xx answer decoded from a problem document.
type APIError struct {
	Status int
	Title  string
	Detail string
}

func (e *APIError) Error() string {
	msg := e.Title
	if msg == "" {
		msg = "orders API error"
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return fmt.Sprintf("%s (status %d)", msg, e.Status)
}

// Client fetches order batches from the key-authenticated listing.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

// WithLogger sets the logger used for per-request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient instantiates the orders client. A nil httpClient gets a 5s timeout
// and an OpenTelemetry transport.
func NewClient(baseURL, apiKey string, httpClient *http.Client, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("orders API base URL is required")
	}
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse orders API base URL: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   5 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	c := &Client{baseURL: parsed, apiKey: apiKey, httpClient: httpClient, logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

type ordersEnvelope struct {
	Size    int                    `json:"size"`
	Data    []orderdomain.RawOrder `json:"data"`
	HasMore bool                   `json:"has_more"`
}

// FetchOrders GETs one page of the authenticated listing. Page zero asks the
// server for its default page.
func (c *Client) FetchOrders(ctx context.Context, page int) (*orderports.Batch, error) {
	if c == nil || c.httpClient == nil {
		return nil, errors.New("orders client not configured")
	}
	endpoint := c.baseURL.JoinPath(ordersPath)
	if page > 0 {
		frag, err := runtime.StyleParamWithLocation("form", true, "page", runtime.ParamLocationQuery, page)
		if err != nil {
			return nil, fmt.Errorf("encode page parameter: %w", err)
		}
		endpoint.RawQuery = frag
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build orders request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call orders API: %w", err)
	}
	defer resp.Body.Close()
	c.logRequest(ctx, resp, time.Since(started))

	switch {
	case resp.StatusCode == http.StatusNoContent:
		return nil, ErrNoContent
	case resp.StatusCode >= http.StatusBadRequest:
		return nil, decodeAPIError(resp)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("orders API unexpected status: %s", resp.Status)
	}
	var envelope ordersEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode orders response: %w", err)
	}
	return &orderports.Batch{Orders: envelope.Data, HasMore: envelope.HasMore}, nil
}

func (c *Client) logRequest(ctx context.Context, resp *http.Response, elapsed time.Duration) {
	if c.logger == nil {
		return
	}
	c.logger.LogAttrs(ctx, slog.LevelInfo, "orders API responded",
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", elapsed),
		slog.String("url", resp.Request.URL.String()),
	)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Title: http.StatusText(resp.StatusCode)}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || len(body) == 0 {
		return apiErr
	}
	var problem apierrors.ProblemDetail
	if err := json.Unmarshal(body, &problem); err != nil {
		apiErr.Detail = strings.TrimSpace(string(body))
		return apiErr
	}
	if problem.Title != "" {
		apiErr.Title = problem.Title
	}
	apiErr.Detail = problem.Detail
	return apiErr
}

var _ orderports.OrderSource = (*Client)(nil)
