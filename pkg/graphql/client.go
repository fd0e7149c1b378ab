package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vango-dev/pardna/internal/errors"
	"github.com/vango-dev/pardna/pkg/pardna"
)

// Request is a GraphQL request body.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// Response is a GraphQL response body. Data is decoded by the caller.
type Response struct {
	Data   json.RawMessage `json:"data"`
	Errors []Error         `json:"errors,omitempty"`
}

// Error is a single entry of a GraphQL errors array.
type Error struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// Pardna is a created pardna as returned by the pardnas query.
type Pardna struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	StartDate          time.Time            `json:"startDate"`
	Duration           int                  `json:"duration"`
	ContributionAmount int64                `json:"contributionAmount"`
	BankerFee          decimal.Decimal      `json:"bankerFee"`
	PaymentFrequency   pardna.Frequency     `json:"paymentFrequency"`
	Participants       []pardna.Participant `json:"participants"`
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout bounds each request. Zero means no per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// WithRefetch controls the pardnas refetch after a create. Enabled by default.
func WithRefetch(enabled bool) Option {
	return func(c *Client) {
		c.refetch = enabled
	}
}

// Client talks to a GraphQL endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *slog.Logger
	timeout  time.Duration
	headers  http.Header
	refetch  bool

	mu     sync.RWMutex
	cached []Pardna
}

// New creates a client for endpoint.
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     http.DefaultClient,
		headers:  make(http.Header),
		refetch:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// CreatePardna sends the createPardna mutation and returns the new id.
// A failed refetch is logged and does not fail the create.
func (c *Client) CreatePardna(ctx context.Context, payload pardna.Payload) (string, error) {
	var data struct {
		CreatePardna *struct {
			ID string `json:"id"`
		} `json:"createPardna"`
	}
	req := Request{
		Query:         createPardnaMutation,
		OperationName: OperationCreatePardna,
		Variables:     Variables(payload),
	}
	if err := c.Do(ctx, req, &data); err != nil {
		return "", err
	}
	if data.CreatePardna == nil || data.CreatePardna.ID == "" {
		return "", errors.New("P201").WithDetail("createPardna returned no id")
	}
	id := data.CreatePardna.ID

	if c.refetch {
		if _, err := c.Pardnas(ctx); err != nil {
			c.logger.WarnContext(ctx, "pardnas refetch failed",
				slog.String("id", id),
				slog.Any("error", err),
			)
		}
	}
	return id, nil
}

// Pardnas runs the pardnas query and replaces the cached list.
func (c *Client) Pardnas(ctx context.Context) ([]Pardna, error) {
	var data struct {
		Pardnas []Pardna `json:"pardnas"`
	}
	req := Request{Query: pardnasQuery, OperationName: OperationPardnas}
	if err := c.Do(ctx, req, &data); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cached = data.Pardnas
	c.mu.Unlock()

	out := make([]Pardna, len(data.Pardnas))
	copy(out, data.Pardnas)
	return out, nil
}

// Cached returns the list from the last successful pardnas query.
func (c *Client) Cached() []Pardna {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Pardna, len(c.cached))
	copy(out, c.cached)
	return out
}

// Do posts req and decodes the data member into out.
// GraphQL errors yield P201, non-2xx responses P202.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("graphql: encode request: %w", err)
	}

	reqCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("graphql: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	for key, values := range c.headers {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("graphql: %s: %w", req.OperationName, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.logger.DebugContext(ctx, "graphql request",
		slog.String("operation", req.OperationName),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("graphql: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New("P202").WithDetail(fmt.Sprintf("%s returned %s", req.OperationName, resp.Status))
	}

	var gqlResp Response
	if err := json.Unmarshal(raw, &gqlResp); err != nil {
		return fmt.Errorf("graphql: decode response: %w", err)
	}
	if len(gqlResp.Errors) > 0 {
		msgs := make([]string, len(gqlResp.Errors))
		for i, e := range gqlResp.Errors {
			msgs[i] = e.Message
		}
		return errors.New("P201").WithDetail(strings.Join(msgs, "; "))
	}
	if out == nil || len(gqlResp.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(gqlResp.Data, out); err != nil {
		return fmt.Errorf("graphql: decode data: %w", err)
	}
	return nil
}

// Variables builds the createPardna variables. The banker fee is sent as a
// JSON number and the start date as RFC 3339.
func Variables(p pardna.Payload) map[string]any {
	participants := make([]map[string]string, len(p.Participants))
	for i, pt := range p.Participants {
		participants[i] = map[string]string{"name": pt.Name, "email": pt.Email}
	}
	return map[string]any{
		"name":               p.Name,
		"startDate":          p.StartDate.Format(time.RFC3339),
		"duration":           p.Duration,
		"contributionAmount": p.ContributionAmount,
		"bankerFee":          json.Number(p.BankerFee.String()),
		"paymentFrequency":   string(p.PaymentFrequency),
		"participants":       participants,
	}
}
