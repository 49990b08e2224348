// Package ups adapts the UPS Developer Kit APIs to the carrier ports: OAuth
// client-credentials authorization and transit-time estimation.
package ups

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fulfillment/internal/pkg/errs"
)

const (
	defaultOriginPostalCode = "23236"

	requestTimeout = 30 * time.Second

	// transactionSource identifies this integration in UPS request audit
	// headers.
	transactionSource = "fulfillment"
)

// Config carries the OAuth credentials and endpoints of a UPS developer
// account.
type Config struct {
	ClientID     string
	ClientSecret string

	// AuthURL is the OAuth token endpoint.
	AuthURL string
	// APIURL is the transit-times endpoint.
	APIURL string

	// OriginPostalCode is the warehouse ZIP shipments depart from.
	// Defaults to the Richmond warehouse when empty.
	OriginPostalCode string
}

// Client is a UPS API client. It implements ports.CarrierClient.
type Client struct {
	httpClient   *http.Client
	clientID     string
	clientSecret string
	authURL      string
	apiURL       string
	originZip    string
	logger       *slog.Logger
}

// NewClient creates a UPS client. Returns an error when credentials or
// endpoints are missing.
func NewClient(config Config, logger *slog.Logger) (*Client, error) {
	if config.ClientID == "" {
		return nil, errs.NewValueIsRequiredError("config.ClientID")
	}
	if config.ClientSecret == "" {
		return nil, errs.NewValueIsRequiredError("config.ClientSecret")
	}
	if config.AuthURL == "" {
		return nil, errs.NewValueIsRequiredError("config.AuthURL")
	}
	if config.APIURL == "" {
		return nil, errs.NewValueIsRequiredError("config.APIURL")
	}

	originZip := config.OriginPostalCode
	if originZip == "" {
		originZip = defaultOriginPostalCode
	}

	return &Client{
		httpClient:   &http.Client{Timeout: requestTimeout},
		clientID:     config.ClientID,
		clientSecret: config.ClientSecret,
		authURL:      config.AuthURL,
		apiURL:       config.APIURL,
		originZip:    originZip,
		logger:       logger.With("component", "ups"),
	}, nil
}

type tokenResponseDTO struct {
	AccessToken string `json:"access_token"`
}

// Authorize obtains a short-lived bearer token via the client-credentials
// grant.
func (c *Client) Authorize(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.NewUnavailableErrorWithCause("ups auth", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", errs.NewUnavailableErrorWithCause("ups auth",
			fmt.Errorf("status %d: %s", resp.StatusCode, raw))
	}

	var token tokenResponseDTO
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", errs.NewUnavailableErrorWithCause("ups auth", err)
	}
	if token.AccessToken == "" {
		return "", errs.NewUnavailableError("ups auth")
	}
	return token.AccessToken, nil
}
