// Package geocode proxies address lookups to the Naver geocoding API so the
// client never sees the upstream credentials.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// ErrNoCoordinates is returned when the upstream answers but carries no
// usable coordinates for the address.
var ErrNoCoordinates = errors.New("no coordinates found for address")

// ErrMissingCredentials is returned when the client was built without the
// Naver API key pair.
var ErrMissingCredentials = errors.New("naver geocoding credentials are not configured")

// UpstreamError carries the upstream HTTP status so the handler can pass it
// through.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("naver geocoding upstream returned status %d", e.Status)
}

// Result is a resolved address.
type Result struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Client calls the Naver geocoding endpoint.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	logger       *zap.Logger
}

// NewClient creates a geocoding client. baseURL points at the Naver geocode
// endpoint; the id/secret pair goes into the NCP gateway headers.
func NewClient(baseURL, clientID, clientSecret string, logger *zap.Logger) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		logger:       logger,
	}
}

type naverAddress struct {
	X           string `json:"x"`
	Y           string `json:"y"`
	RoadAddress string `json:"roadAddress"`
	JibunAddr   string `json:"jibunAddress"`
}

type naverResponse struct {
	Status    string         `json:"status"`
	Addresses []naverAddress `json:"addresses"`
}

// Geocode resolves an address to coordinates. Returns ErrMissingCredentials,
// ErrNoCoordinates, or an UpstreamError for non-OK upstream statuses.
func (c *Client) Geocode(ctx context.Context, address string) (*Result, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return nil, ErrMissingCredentials
	}

	reqURL := fmt.Sprintf("%s?query=%s", c.baseURL, url.QueryEscape(address))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocode request: %w", err)
	}
	req.Header.Set("X-NCP-APIGW-API-KEY-ID", c.clientID)
	req.Header.Set("X-NCP-APIGW-API-KEY", c.clientSecret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("naver geocoding returned non-OK status",
			zap.Int("status", resp.StatusCode),
			zap.String("address", address))
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	var body naverResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}
	if len(body.Addresses) == 0 {
		return nil, ErrNoCoordinates
	}

	first := body.Addresses[0]
	lng, err := strconv.ParseFloat(first.X, 64)
	if err != nil {
		return nil, fmt.Errorf("unparseable longitude %q: %w", first.X, err)
	}
	lat, err := strconv.ParseFloat(first.Y, 64)
	if err != nil {
		return nil, fmt.Errorf("unparseable latitude %q: %w", first.Y, err)
	}

	resolved := first.RoadAddress
	if resolved == "" {
		resolved = first.JibunAddr
	}
	return &Result{Lat: lat, Lng: lng, Address: resolved}, nil
}
