package engine

import (
	"math"
	"testing"

	"shipment-pooling-service/internal/domain"
)

func TestDistanceKmSamePoint(t *testing.T) {
	p := domain.Coordinate{Latitude: 28.6139, Longitude: 77.2090}

	if d := DistanceKm(p, p); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}
}

func TestDistanceKmEquatorDegree(t *testing.T) {
	a := domain.Coordinate{Latitude: 0, Longitude: 0}
	b := domain.Coordinate{Latitude: 0, Longitude: 1}

	// One degree of longitude at the equator is ~111.19 km for R=6371.
	d := DistanceKm(a, b)
	if d < 111.0 || d > 111.4 {
		t.Fatalf("equator degree = %vkm, want ~111.19", d)
	}

	if rev := DistanceKm(b, a); math.Abs(rev-d) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", d, rev)
	}
}

func TestBearingDegCardinal(t *testing.T) {
	origin := domain.Coordinate{Latitude: 0, Longitude: 0}

	cases := []struct {
		name string
		to   domain.Coordinate
		want float64
	}{
		{"north", domain.Coordinate{Latitude: 1, Longitude: 0}, 0},
		{"east", domain.Coordinate{Latitude: 0, Longitude: 1}, 90},
		{"south", domain.Coordinate{Latitude: -1, Longitude: 0}, 180},
		{"west", domain.Coordinate{Latitude: 0, Longitude: -1}, 270},
	}

	for _, tc := range cases {
		got := BearingDeg(origin, tc.to)
		if math.Abs(got-tc.want) > 1e-6 {
			t.Errorf("%s bearing = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBearingDegSamePointStable(t *testing.T) {
	p := domain.Coordinate{Latitude: 28.6139, Longitude: 77.2090}

	got := BearingDeg(p, p)
	if got != 0 {
		t.Fatalf("bearing to self = %v, want stable 0", got)
	}
	if math.IsNaN(got) {
		t.Fatal("bearing to self is NaN")
	}
}

func TestAngleDiffDeg(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{350, 10, 20},
		{10, 350, 20},
		{0, 180, 180},
		{90, 90, 0},
		{720, 0, 0},
	}

	for _, tc := range cases {
		if got := AngleDiffDeg(tc.a, tc.b); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("AngleDiffDeg(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCircularMeanDegWrapsAround(t *testing.T) {
	got := circularMeanDeg([]float64{350, 10})

	// An arithmetic mean would give 180; the vector average must give 0.
	if math.Abs(got) > 1e-6 && math.Abs(got-360) > 1e-6 {
		t.Fatalf("circular mean of 350,10 = %v, want 0", got)
	}
}
