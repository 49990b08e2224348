// Package shipstation adapts the ShipStation REST API to the order store,
// product catalog, and rate service ports. One authenticated client serves
// all three capabilities.
package shipstation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"fulfillment/internal/pkg/errs"
)

const (
	// carrierCode is the negotiated-rate UPS account every shipment quotes
	// and ships under.
	carrierCode = "ups_walleted"

	defaultOriginPostalCode = "23236"

	requestTimeout = 30 * time.Second
)

// Config carries the credentials and endpoints of a ShipStation account.
type Config struct {
	BaseURL   string
	APIKey    string
	APISecret string

	// OriginPostalCode is the warehouse ZIP rates are quoted from.
	// Defaults to the Richmond warehouse when empty.
	OriginPostalCode string
}

// Client is an authenticated ShipStation API client. It implements
// ports.OrderStore, ports.ProductCatalog, and ports.RateService.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiSecret  string
	originZip  string
	logger     *slog.Logger
}

// NewClient creates a ShipStation client. Returns an error when credentials
// or the base URL are missing.
func NewClient(config Config, logger *slog.Logger) (*Client, error) {
	if config.BaseURL == "" {
		return nil, errs.NewValueIsRequiredError("config.BaseURL")
	}
	if config.APIKey == "" {
		return nil, errs.NewValueIsRequiredError("config.APIKey")
	}
	if config.APISecret == "" {
		return nil, errs.NewValueIsRequiredError("config.APISecret")
	}

	originZip := config.OriginPostalCode
	if originZip == "" {
		originZip = defaultOriginPostalCode
	}

	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    config.BaseURL,
		apiKey:     config.APIKey,
		apiSecret:  config.APISecret,
		originZip:  originZip,
		logger:     logger.With("component", "shipstation"),
	}, nil
}

// do issues one authenticated request. A non-2xx response surfaces as an
// UnavailableError carrying the status and body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.apiKey, c.apiSecret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewUnavailableErrorWithCause("shipstation", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		return errs.NewUnavailableErrorWithCause("shipstation",
			fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, raw))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
