package geo

import (
	"math"
	"sort"
)

// 지구 반지름 (km)
const earthRadiusKm = 6371.0

// Point는 위경도 좌표
type Point struct {
	Latitude  float64
	Longitude float64
}

// Valid는 좌표가 유한한 수인지 확인
func (p Point) Valid() bool {
	return isFinite(p.Latitude) && isFinite(p.Longitude)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Distance는 두 좌표 사이의 대원 거리(km)를 계산한다.
// acos 인자는 부동소수점 오차로 [-1, 1]을 벗어날 수 있으므로 클램프한다.
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	deltaLon := toRadians(b.Longitude - a.Longitude)

	arg := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(deltaLon)
	if arg > 1 {
		arg = 1
	} else if arg < -1 {
		arg = -1
	}

	return earthRadiusKm * math.Acos(arg)
}

// Midpoint는 두 좌표의 산술 평균 지점을 반환한다.
// 서울 시내 수준의 거리에서는 평면 근사로 충분하다.
func Midpoint(a, b Point) Point {
	return Point{
		Latitude:  (a.Latitude + b.Latitude) / 2,
		Longitude: (a.Longitude + b.Longitude) / 2,
	}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Located는 좌표를 가진 카탈로그 항목
type Located interface {
	Location() Point
}

// Nearby는 거리 계산 결과가 붙은 카탈로그 인덱스
type Nearby struct {
	Index      int
	DistanceKm float64
}

// FindNearby는 origin에서 radiusKm 이내의 항목을 거리 오름차순으로 최대 limit개 반환한다.
// 같은 거리의 항목은 카탈로그 순서를 유지한다.
func FindNearby[T Located](catalog []T, origin Point, radiusKm float64, limit int) []Nearby {
	result := make([]Nearby, 0, len(catalog))
	for i, item := range catalog {
		d := Distance(origin, item.Location())
		if d <= radiusKm {
			result = append(result, Nearby{Index: i, DistanceKm: d})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceKm < result[j].DistanceKm
	})

	if limit >= 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}
