package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"nomad-place-api/internal/geo"
	"nomad-place-api/internal/metrics"
)

const placeSearchBaseURL = "https://naveropenapi.apigw.ntruss.com/map-place/v1/search"

// Place represents a place returned by the Naver place search API
type Place struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PlaceSearchOptions narrows a place search around a coordinate
type PlaceSearchOptions struct {
	Center   *geo.Point
	RadiusM  int
	MaxCount int
}

// NaverMapClient defines the interface for Naver map API communication
type NaverMapClient interface {
	// SearchPlaces searches places by keyword, optionally around a coordinate
	SearchPlaces(ctx context.Context, query string, opts PlaceSearchOptions) ([]Place, error)
	// DirectionsURL builds a Naver map walking route URL from start to goal
	DirectionsURL(start geo.Point, goal geo.Point, goalName string) string
}

// naverMapClient implements NaverMapClient interface
type naverMapClient struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
	logger       *zap.Logger
	metrics      *metrics.Metrics
}

// NewNaverMapClient creates a new Naver map API client
func NewNaverMapClient(clientID, clientSecret string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) NaverMapClient {
	return &naverMapClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

// placeSearchResponse is the wire format of the place search API
type placeSearchResponse struct {
	Places []struct {
		Name        string `json:"name"`
		RoadAddress string `json:"road_address"`
		X           string `json:"x"`
		Y           string `json:"y"`
	} `json:"places"`
}

// SearchPlaces searches places on the Naver map API
func (c *naverMapClient) SearchPlaces(ctx context.Context, query string, opts PlaceSearchOptions) ([]Place, error) {
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}

	params := url.Values{}
	params.Set("query", query)
	if opts.Center != nil {
		params.Set("coordinate", fmt.Sprintf("%f,%f", opts.Center.Longitude, opts.Center.Latitude))
	}
	if opts.RadiusM > 0 {
		params.Set("radius", strconv.Itoa(opts.RadiusM))
	}
	if opts.MaxCount > 0 {
		params.Set("count", strconv.Itoa(opts.MaxCount))
	}

	reqURL := placeSearchBaseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-NCP-APIGW-API-KEY-ID", c.clientID)
	req.Header.Set("X-NCP-APIGW-API-KEY", c.clientSecret)

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(placeSearchBaseURL, http.MethodGet, statusCode, duration, err)
	}

	if err != nil {
		c.logger.Error("Failed to call Naver place search",
			zap.String("query", query),
			zap.Error(err))
		return nil, fmt.Errorf("naver place search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Naver place search returned non-OK status",
			zap.String("query", query),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("naver place search returned status %d", resp.StatusCode)
	}

	var body placeSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode naver response: %w", err)
	}

	places := make([]Place, 0, len(body.Places))
	for _, p := range body.Places {
		lat, _ := strconv.ParseFloat(p.Y, 64)
		lon, _ := strconv.ParseFloat(p.X, 64)
		places = append(places, Place{
			Name:      p.Name,
			Address:   p.RoadAddress,
			Latitude:  lat,
			Longitude: lon,
		})
	}
	return places, nil
}

// DirectionsURL builds a Naver map web route URL. API 호출 없이 조립만 한다.
func (c *naverMapClient) DirectionsURL(start geo.Point, goal geo.Point, goalName string) string {
	params := url.Values{}
	params.Set("slat", formatCoord(start.Latitude))
	params.Set("slng", formatCoord(start.Longitude))
	params.Set("stext", "내 위치")
	params.Set("elat", formatCoord(goal.Latitude))
	params.Set("elng", formatCoord(goal.Longitude))
	params.Set("etext", goalName)
	params.Set("menu", "route")
	params.Set("pathType", "3")
	return "https://map.naver.com/index.nhn?" + params.Encode()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
