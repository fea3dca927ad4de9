package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"shipment-pooling-service/internal/adapters/locationcache"
	"shipment-pooling-service/internal/adapters/repositories"
	"shipment-pooling-service/internal/api"
	"shipment-pooling-service/internal/config"
	"shipment-pooling-service/internal/engine"
	"shipment-pooling-service/internal/platform/db"
	"shipment-pooling-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQL, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	conn, err := openDatabase()
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	locations, err := openLocationCache()
	if err != nil {
		log.Fatal(err)
	}

	cfg := engineConfig()

	shipments := repositories.NewSQLShipmentRepository(conn)
	carriers := repositories.NewSQLCarrierRepository(conn)
	scorer := engine.NewGeoPairScorer(cfg)
	router := api.NewRouter(shipments, carriers, locations, scorer, cfg)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openDatabase selects the SQL driver from DB_DRIVER. The sqlite path also
// initializes the schema and seeds demo data for local runs; postgres is
// expected to be prepared with dbtool.
func openDatabase() (*sql.DB, error) {
	driver := config.Get("DB_DRIVER", "sqlite")

	switch driver {
	case "sqlite":
		dbPath := config.Get("DB_PATH", "data/app.db")
		conn, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("open database: open sqlite database %q: %w", dbPath, err)
		}
		if err := conn.Ping(); err != nil {
			return nil, fmt.Errorf("open database: verify sqlite connection to %q: %w", dbPath, err)
		}
		if err := initAndSeed(conn); err != nil {
			return nil, err
		}
		return conn, nil

	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, fmt.Errorf("open database: DATABASE_URL is required when DB_DRIVER=postgres")
		}
		return db.Open(databaseURL)

	default:
		return nil, fmt.Errorf("open database: unknown DB_DRIVER %q", driver)
	}
}

func initAndSeed(conn *sql.DB) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	shipmentsPath := config.Get("SHIPMENT_SEED_PATH", "data/seeds/shipments.json")
	carriersPath := config.Get("CARRIER_SEED_PATH", "data/seeds/carriers.json")
	if err := repositories.SeedFromJSON(conn, shipmentsPath, carriersPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// openLocationCache connects to Redis for carrier telemetry. REDIS_ADDR is
// optional; without it the API serves stored carrier positions only.
func openLocationCache() (ports.CarrierLocationCache, error) {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		log.Println("REDIS_ADDR not set; live carrier locations disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("open location cache: verify redis connection to %q: %w", addr, err)
	}

	return locationcache.New(client), nil
}

// engineConfig starts from defaults and applies optional env overrides.
func engineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.MaxPoolSize = config.GetInt("MAX_POOL_SIZE", cfg.MaxPoolSize)
	cfg.PickupJoinDistanceKm = config.GetFloat("PICKUP_JOIN_DISTANCE_KM", cfg.PickupJoinDistanceKm)
	cfg.MinPairScore = config.GetFloat("MIN_PAIR_SCORE", cfg.MinPairScore)
	cfg.MinCarrierEligibilityScore = config.GetFloat("MIN_CARRIER_ELIGIBILITY_SCORE", cfg.MinCarrierEligibilityScore)
	return cfg
}
