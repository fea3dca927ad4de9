// Package engine implements the pooling and matching core: geographic
// primitives, the pairwise shipment compatibility model, greedy pool
// clustering, and carrier-vs-pool scoring. Everything in this package is a
// pure function of its inputs; there is no I/O and no retained state, so the
// engine may be invoked concurrently for independent batches.
package engine

import (
	"math"

	"shipment-pooling-service/internal/domain"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the haversine great-circle distance in kilometres
// between two coordinates.
func DistanceKm(a, b domain.Coordinate) float64 {
	dLat := degToRad(b.Latitude - a.Latitude)
	dLng := degToRad(b.Longitude - a.Longitude)

	rLat1 := degToRad(a.Latitude)
	rLat2 := degToRad(b.Latitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// BearingDeg returns the initial compass bearing in degrees, [0,360), from
// one coordinate to another. For identical points the bearing is undefined
// mathematically; atan2(0,0) = 0 gives a stable 0 rather than NaN, which
// keeps downstream averages finite.
func BearingDeg(from, to domain.Coordinate) float64 {
	rLat1 := degToRad(from.Latitude)
	rLat2 := degToRad(to.Latitude)
	dLng := degToRad(to.Longitude - from.Longitude)

	y := math.Sin(dLng) * math.Cos(rLat2)
	x := math.Cos(rLat1)*math.Sin(rLat2) - math.Sin(rLat1)*math.Cos(rLat2)*math.Cos(dLng)

	deg := radToDeg(math.Atan2(y, x))
	return math.Mod(deg+360, 360)
}

// AngleDiffDeg returns the smallest absolute angular difference between two
// bearings, [0,180].
func AngleDiffDeg(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// centroid returns the arithmetic mean of the given coordinates.
// Callers guarantee at least one point.
func centroid(points []domain.Coordinate) domain.Coordinate {
	var lat, lng float64
	for _, p := range points {
		lat += p.Latitude
		lng += p.Longitude
	}
	n := float64(len(points))
	return domain.Coordinate{Latitude: lat / n, Longitude: lng / n}
}

// circularMeanDeg returns the circular mean of the given bearings, [0,360).
// A plain arithmetic mean would average 350 and 10 to 180; the vector
// average gives the correct 0.
func circularMeanDeg(bearings []float64) float64 {
	var x, y float64
	for _, b := range bearings {
		r := degToRad(b)
		x += math.Cos(r)
		y += math.Sin(r)
	}
	deg := radToDeg(math.Atan2(y, x))
	return math.Mod(deg+360, 360)
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }

func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }
