package geo

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

type testPlace struct {
	name string
	loc  Point
}

func (p testPlace) Location() Point { return p.loc }

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        Point
		b        Point
		expected float64
		delta    float64
	}{
		{
			name:     "성공: 같은 좌표는 거리 0",
			a:        Point{Latitude: 37.5663, Longitude: 126.9779},
			b:        Point{Latitude: 37.5663, Longitude: 126.9779},
			expected: 0,
			delta:    0.001,
		},
		{
			name:     "성공: 서울시청-강남역 약 8.8km",
			a:        Point{Latitude: 37.5663, Longitude: 126.9779},
			b:        Point{Latitude: 37.4979, Longitude: 127.0276},
			expected: 8.78,
			delta:    0.15,
		},
		{
			name:     "성공: 적도상 경도 1도는 약 111km",
			a:        Point{Latitude: 0, Longitude: 0},
			b:        Point{Latitude: 0, Longitude: 1},
			expected: 111.19,
			delta:    0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Distance(tt.a, tt.b)
			assert.InDelta(t, tt.expected, d, tt.delta)
		})
	}
}

func TestDistanceProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	genLat := gen.Float64Range(-90, 90)
	genLon := gen.Float64Range(-180, 180)

	properties.Property("거리는 대칭이다", prop.ForAll(
		func(lat1, lon1, lat2, lon2 float64) bool {
			a := Point{Latitude: lat1, Longitude: lon1}
			b := Point{Latitude: lat2, Longitude: lon2}
			return math.Abs(Distance(a, b)-Distance(b, a)) < 1e-9
		},
		genLat, genLon, genLat, genLon,
	))

	properties.Property("같은 점까지의 거리는 0에 수렴한다", prop.ForAll(
		func(lat, lon float64) bool {
			p := Point{Latitude: lat, Longitude: lon}
			return Distance(p, p) < 1e-3
		},
		genLat, genLon,
	))

	properties.Property("거리는 항상 0 이상, 지구 반둘레 이하", prop.ForAll(
		func(lat1, lon1, lat2, lon2 float64) bool {
			d := Distance(
				Point{Latitude: lat1, Longitude: lon1},
				Point{Latitude: lat2, Longitude: lon2},
			)
			return d >= 0 && d <= math.Pi*earthRadiusKm+1e-6
		},
		genLat, genLon, genLat, genLon,
	))

	properties.TestingRun(t)
}

func TestMidpoint(t *testing.T) {
	t.Run("성공: 두 좌표의 산술 평균", func(t *testing.T) {
		mid := Midpoint(
			Point{Latitude: 37.50, Longitude: 127.00},
			Point{Latitude: 37.60, Longitude: 127.10},
		)
		assert.InDelta(t, 37.55, mid.Latitude, 1e-9)
		assert.InDelta(t, 127.05, mid.Longitude, 1e-9)
	})
}

func TestFindNearby(t *testing.T) {
	origin := Point{Latitude: 37.5000, Longitude: 127.0000}
	catalog := []testPlace{
		{name: "far", loc: Point{Latitude: 37.6000, Longitude: 127.1000}},     // 약 14km
		{name: "near", loc: Point{Latitude: 37.5010, Longitude: 127.0010}},    // 약 0.14km
		{name: "mid", loc: Point{Latitude: 37.5050, Longitude: 127.0050}},     // 약 0.71km
		{name: "edge", loc: Point{Latitude: 37.5089, Longitude: 127.0000}},    // 약 0.99km
		{name: "outside", loc: Point{Latitude: 37.5200, Longitude: 127.0200}}, // 약 2.8km
	}

	t.Run("성공: 반경 내 항목만 거리 오름차순으로 반환", func(t *testing.T) {
		result := FindNearby(catalog, origin, 1.0, 5)

		assert.Len(t, result, 3)
		assert.Equal(t, "near", catalog[result[0].Index].name)
		assert.Equal(t, "mid", catalog[result[1].Index].name)
		assert.Equal(t, "edge", catalog[result[2].Index].name)
		for i := 1; i < len(result); i++ {
			assert.LessOrEqual(t, result[i-1].DistanceKm, result[i].DistanceKm)
		}
	})

	t.Run("성공: limit으로 결과 수 제한", func(t *testing.T) {
		result := FindNearby(catalog, origin, 20.0, 2)

		assert.Len(t, result, 2)
		assert.Equal(t, "near", catalog[result[0].Index].name)
		assert.Equal(t, "mid", catalog[result[1].Index].name)
	})

	t.Run("성공: 빈 카탈로그는 빈 결과", func(t *testing.T) {
		result := FindNearby([]testPlace{}, origin, 1.0, 5)
		assert.Empty(t, result)
	})

	t.Run("성공: 같은 거리는 카탈로그 순서 유지", func(t *testing.T) {
		same := []testPlace{
			{name: "first", loc: Point{Latitude: 37.5010, Longitude: 127.0000}},
			{name: "second", loc: Point{Latitude: 37.5010, Longitude: 127.0000}},
			{name: "third", loc: Point{Latitude: 37.5010, Longitude: 127.0000}},
		}
		result := FindNearby(same, origin, 1.0, 3)

		assert.Len(t, result, 3)
		assert.Equal(t, "first", same[result[0].Index].name)
		assert.Equal(t, "second", same[result[1].Index].name)
		assert.Equal(t, "third", same[result[2].Index].name)
	})

	t.Run("성공: 반경 밖 항목은 제외", func(t *testing.T) {
		result := FindNearby(catalog, origin, 0.05, 5)
		assert.Empty(t, result)
	})
}

func TestFindNearbyProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	genLat := gen.Float64Range(37.4, 37.7)
	genLon := gen.Float64Range(126.8, 127.2)

	properties.Property("결과는 모두 반경 이내이고 limit을 넘지 않는다", prop.ForAll(
		func(lat, lon float64, radius float64, limit int) bool {
			catalog := []testPlace{
				{loc: Point{Latitude: 37.5, Longitude: 127.0}},
				{loc: Point{Latitude: 37.55, Longitude: 127.05}},
				{loc: Point{Latitude: 37.6, Longitude: 127.1}},
				{loc: Point{Latitude: 37.45, Longitude: 126.95}},
			}
			origin := Point{Latitude: lat, Longitude: lon}
			result := FindNearby(catalog, origin, radius, limit)
			if len(result) > limit {
				return false
			}
			for _, r := range result {
				if r.DistanceKm > radius {
					return false
				}
			}
			return true
		},
		genLat, genLon, gen.Float64Range(0, 30), gen.IntRange(0, 4),
	))

	properties.TestingRun(t)
}
