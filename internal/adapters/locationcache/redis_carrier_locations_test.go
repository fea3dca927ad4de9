package locationcache

import (
	"context"
	"math"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"shipment-pooling-service/internal/domain"
)

func newTestCache(t *testing.T) *RedisCarrierLocations {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return New(client)
}

func TestUpsertAndLocations(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	loc := domain.Coordinate{Latitude: 28.6139, Longitude: 77.2090}
	if err := cache.Upsert(ctx, "CARR-001", loc); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := cache.Locations(ctx, []string{"CARR-001", "CARR-missing"})
	if err != nil {
		t.Fatalf("locations: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("got %d locations, want 1", len(got))
	}
	stored, ok := got["CARR-001"]
	if !ok {
		t.Fatal("CARR-001 missing from result")
	}

	// GEO storage quantizes coordinates; ~1e-5 degrees is well within a
	// metre of the reported position.
	if math.Abs(stored.Latitude-loc.Latitude) > 1e-4 || math.Abs(stored.Longitude-loc.Longitude) > 1e-4 {
		t.Fatalf("stored location %+v too far from %+v", stored, loc)
	}
}

func TestUpsertOverwrites(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	first := domain.Coordinate{Latitude: 28.60, Longitude: 77.20}
	second := domain.Coordinate{Latitude: 28.70, Longitude: 77.30}

	if err := cache.Upsert(ctx, "CARR-001", first); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := cache.Upsert(ctx, "CARR-001", second); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := cache.Locations(ctx, []string{"CARR-001"})
	if err != nil {
		t.Fatalf("locations: %v", err)
	}
	if math.Abs(got["CARR-001"].Latitude-second.Latitude) > 1e-4 {
		t.Fatalf("location %+v not updated to %+v", got["CARR-001"], second)
	}
}

func TestRemove(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.Upsert(ctx, "CARR-001", domain.Coordinate{Latitude: 28.6, Longitude: 77.2}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := cache.Remove(ctx, "CARR-001"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	got, err := cache.Locations(ctx, []string{"CARR-001"})
	if err != nil {
		t.Fatalf("locations: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("removed carrier still present: %v", got)
	}
}

func TestLocationsEmptyInput(t *testing.T) {
	cache := newTestCache(t)

	got, err := cache.Locations(context.Background(), nil)
	if err != nil {
		t.Fatalf("locations: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}
