// Package client is a typed HTTP client for the customer ordering API.
// Every successful response is a {data, meta?} envelope; every non-2xx
// response is surfaced as an *APIError carrying the HTTP status.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// APIError is the typed error for any non-2xx API response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta json.RawMessage `json:"meta"`
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type Client struct {
	baseURL    string
	sessionID  string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
	logger     *zap.Logger
}

// New creates a client for the given base URL.
func New(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name: "ordering-api",
		// Client-side errors must not open the circuit; only transport
		// failures and 5xx responses count.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var apiErr *APIError
			return errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError
		},
	})
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker: breaker,
		logger:  logger,
	}
}

// WithSession returns a copy of the client bound to the given session id.
func (c *Client) WithSession(sessionID string) *Client {
	clone := *c
	clone.sessionID = sessionID
	return &clone
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	raw, err := c.breaker.Execute(func() ([]byte, error) {
		return c.doRequest(ctx, method, path, body)
	})
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode response envelope: %w", err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sessionID != "" {
		req.Header.Set("X-Session-ID", c.sessionID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eb errorBody
		if jsonErr := json.Unmarshal(raw, &eb); jsonErr == nil {
			apiErr.Code = eb.Code
			apiErr.Message = eb.Error
		}
		return nil, apiErr
	}

	return raw, nil
}

func (c *Client) Home(ctx context.Context) (*Home, error) {
	var home Home
	if err := c.do(ctx, http.MethodGet, "/customer/home", nil, &home); err != nil {
		return nil, err
	}
	return &home, nil
}

func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	err := c.do(ctx, http.MethodGet, "/customer/products", nil, &products)
	return products, err
}

func (c *Client) ProductsByCategory(ctx context.Context, categoryID int64) ([]Product, error) {
	var products []Product
	path := "/customer/products/category/" + strconv.FormatInt(categoryID, 10)
	err := c.do(ctx, http.MethodGet, path, nil, &products)
	return products, err
}

func (c *Client) FavoriteProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	err := c.do(ctx, http.MethodGet, "/customer/products/favorites", nil, &products)
	return products, err
}

func (c *Client) ProductByID(ctx context.Context, id int64) (*Product, error) {
	var product Product
	path := "/customer/products/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) Offers(ctx context.Context) ([]Offer, error) {
	var offers []Offer
	err := c.do(ctx, http.MethodGet, "/customer/offers", nil, &offers)
	return offers, err
}

func (c *Client) RecommendedOffers(ctx context.Context) ([]Offer, error) {
	var offers []Offer
	err := c.do(ctx, http.MethodGet, "/customer/offers/recommended", nil, &offers)
	return offers, err
}

func (c *Client) OfferByID(ctx context.Context, id int64) (*Offer, error) {
	var offer Offer
	path := "/customer/offers/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}
