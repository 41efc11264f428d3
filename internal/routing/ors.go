// Package routing resolves road distances through the OpenRouteService
// directions API. The transit engine treats this as a best-effort source and
// falls back to straight-line estimates when it is unavailable.
package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/twpayne/go-polyline"

	"margdarshak.in/internal/geo"
	"margdarshak.in/internal/transit"
)

const (
	defaultBaseURL = "https://api.openrouteservice.org/v2/directions/driving-car"
	requestTimeout = 3 * time.Second
	maxBodyBytes   = 1 << 20
)

// ErrUnavailable reports that the routing provider could not answer. Callers
// degrade to a distance estimate rather than failing the request.
var ErrUnavailable = errors.New("routing: provider unavailable")

// Client calls OpenRouteService. The zero value is not usable, use NewClient.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the ORS endpoint, used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// NewClient builds an ORS client. An empty apiKey yields a client that
// reports ErrUnavailable on every call, which keeps the wiring uniform when
// no key is configured.
func NewClient(apiKey string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type orsRequest struct {
	Coordinates [][2]float64 `json:"coordinates"`
}

type orsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"summary"`
		Geometry string `json:"geometry"`
	} `json:"routes"`
}

// RoadDistance implements transit.RoadDistanceResolver. Coordinates go out in
// lng,lat order as ORS expects; the returned geometry is decoded from the
// encoded polyline into lat,lng points.
func (c *Client) RoadDistance(ctx context.Context, from, to geo.Point) (transit.RoadRoute, error) {
	if c.apiKey == "" {
		return transit.RoadRoute{}, ErrUnavailable
	}

	body, err := json.Marshal(orsRequest{
		Coordinates: [][2]float64{{from.Lng, from.Lat}, {to.Lng, to.Lat}},
	})
	if err != nil {
		return transit.RoadRoute{}, fmt.Errorf("routing: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return transit.RoadRoute{}, fmt.Errorf("routing: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("ors request failed", slog.String("error", err.Error()))
		return transit.RoadRoute{}, ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("ors non-200 response", slog.Int("status", resp.StatusCode))
		return transit.RoadRoute{}, ErrUnavailable
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return transit.RoadRoute{}, ErrUnavailable
	}

	var parsed orsResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		c.logger.Warn("ors malformed response", slog.String("error", err.Error()))
		return transit.RoadRoute{}, ErrUnavailable
	}
	if len(parsed.Routes) == 0 || parsed.Routes[0].Summary.Distance <= 0 {
		return transit.RoadRoute{}, ErrUnavailable
	}

	route := parsed.Routes[0]
	return transit.RoadRoute{
		DistanceKm:  route.Summary.Distance / 1000,
		DurationSec: route.Summary.Duration,
		Polyline:    decodeGeometry(route.Geometry),
	}, nil
}

// decodeGeometry decodes an ORS encoded polyline. Decode errors drop the
// geometry rather than the whole route.
func decodeGeometry(encoded string) []geo.Point {
	if encoded == "" {
		return nil
	}
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil
	}
	points := make([]geo.Point, 0, len(coords))
	for _, c := range coords {
		points = append(points, geo.Point{Lat: c[0], Lng: c[1]})
	}
	return points
}
