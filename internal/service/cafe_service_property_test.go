package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/zap"

	"nomad-place-api/internal/domain"
	"nomad-place-api/internal/dto"
	"nomad-place-api/internal/geo"
)

// For any origin and any catalog, the nearby search must return at most five
// cafes, all within 1km, in ascending distance order
func TestProperty_NearbySearchBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	genLat := gen.Float64Range(37.40, 37.70)
	genLon := gen.Float64Range(126.80, 127.20)

	properties.Property("Nearby search respects radius, limit, and ordering", prop.ForAll(
		func(originLat, originLon float64, offsets []float64) bool {
			catalog := make([]*domain.Cafe, len(offsets))
			for i, off := range offsets {
				catalog[i] = newTestCafe("카페", originLat+off, originLon-off)
			}
			cafeRepo := &MockCafeRepository{
				FindAllFunc: func(ctx context.Context) ([]*domain.Cafe, error) {
					return catalog, nil
				},
			}
			svc := NewCafeService(cafeRepo, &MockProfileRepository{}, &MockNaverMapClient{}, nil, nil, zap.NewNop())

			results, err := svc.FindNearby(context.Background(), uuid.Nil, &dto.NearbySearchRequest{
				Latitude:  floatPtr(originLat),
				Longitude: floatPtr(originLon),
			})
			if err != nil {
				return false
			}

			if len(results) > 5 {
				return false
			}
			origin := geo.Point{Latitude: originLat, Longitude: originLon}
			for i, r := range results {
				if r.DistanceKm > 1.0 {
					return false
				}
				got := geo.Distance(origin, geo.Point{Latitude: r.Latitude, Longitude: r.Longitude})
				if diff := got - r.DistanceKm; diff > 1e-9 || diff < -1e-9 {
					return false
				}
				if i > 0 && results[i-1].DistanceKm > r.DistanceKm {
					return false
				}
			}
			return true
		},
		genLat, genLon, gen.SliceOf(gen.Float64Range(-0.05, 0.05)),
	))

	properties.TestingRun(t)
}
