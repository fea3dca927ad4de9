// Package locationcache stores live carrier positions in a Redis GEO set.
// The carrier app reports positions continuously; the planning handlers
// overlay these on top of the repository's last-synced records so the engine
// scores against fresh coordinates.
package locationcache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"shipment-pooling-service/internal/domain"
)

const carrierGeoKey = "carriers:locations"

type RedisCarrierLocations struct {
	redis *redis.Client
}

func New(client *redis.Client) *RedisCarrierLocations {
	return &RedisCarrierLocations{redis: client}
}

// Upsert records the carrier's latest reported position.
func (r *RedisCarrierLocations) Upsert(ctx context.Context, carrierID string, loc domain.Coordinate) error {
	err := r.redis.GeoAdd(ctx, carrierGeoKey, &redis.GeoLocation{
		Name:      carrierID,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}).Err()
	if err != nil {
		return fmt.Errorf("carrier locations: upsert %q: %w", carrierID, err)
	}
	return nil
}

// Locations returns the last known position per requested carrier. Carriers
// without telemetry are simply absent from the result.
func (r *RedisCarrierLocations) Locations(ctx context.Context, carrierIDs []string) (map[string]domain.Coordinate, error) {
	if len(carrierIDs) == 0 {
		return map[string]domain.Coordinate{}, nil
	}

	positions, err := r.redis.GeoPos(ctx, carrierGeoKey, carrierIDs...).Result()
	if err != nil {
		return nil, fmt.Errorf("carrier locations: geopos: %w", err)
	}

	out := make(map[string]domain.Coordinate, len(carrierIDs))
	for i, pos := range positions {
		if pos == nil {
			continue
		}
		out[carrierIDs[i]] = domain.Coordinate{
			Latitude:  pos.Latitude,
			Longitude: pos.Longitude,
		}
	}
	return out, nil
}

// Remove drops a carrier that went offline. GEO sets are sorted sets under
// the hood, so a plain ZREM does the job.
func (r *RedisCarrierLocations) Remove(ctx context.Context, carrierID string) error {
	if err := r.redis.ZRem(ctx, carrierGeoKey, carrierID).Err(); err != nil {
		return fmt.Errorf("carrier locations: remove %q: %w", carrierID, err)
	}
	return nil
}
