package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrDistanceUnavailable means no distance could be computed (missing
// key, network failure, malformed response). Pages render "distance
// unknown" and carry on; this error never blocks a view.
var ErrDistanceUnavailable = errors.New("distance unavailable")

// DistanceProvider computes the road distance in kilometers from the
// user's location to a cinema.
type DistanceProvider interface {
	Distance(ctx context.Context, fromLat, fromLon, toLat, toLon float64) (float64, error)
}

// RoutingService talks to a third-party routing API. A zero-value key
// makes every lookup fail soft with ErrDistanceUnavailable.
type RoutingService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewRoutingService creates a routing-backed DistanceProvider.
func NewRoutingService(baseURL, apiKey string) *RoutingService {
	return &RoutingService{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Distance queries the routing API for a driving route and returns its
// length in kilometers.
func (s *RoutingService) Distance(ctx context.Context, fromLat, fromLon, toLat, toLon float64) (float64, error) {
	if s.apiKey == "" {
		return 0, ErrDistanceUnavailable
	}

	url := fmt.Sprintf("%s/v2/directions/driving-car?api_key=%s&start=%f,%f&end=%f,%f",
		s.baseURL, s.apiKey, fromLon, fromLat, toLon, toLat)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, ErrDistanceUnavailable
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, ErrDistanceUnavailable
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, ErrDistanceUnavailable
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, ErrDistanceUnavailable
	}
	var payload struct {
		Features []struct {
			Properties struct {
				Summary struct {
					Distance float64 `json:"distance"` // meters
				} `json:"summary"`
			} `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Features) == 0 {
		return 0, ErrDistanceUnavailable
	}
	return payload.Features[0].Properties.Summary.Distance / 1000, nil
}
