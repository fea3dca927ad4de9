package main

import (
	"database/sql"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"shipment-pooling-service/internal/adapters/repositories"
	"shipment-pooling-service/internal/config"
	"shipment-pooling-service/internal/platform/db"
)

// dbtool initializes the schema and seeds shipments and carriers from JSON,
// against either driver. Useful for preparing a postgres instance the server
// does not auto-seed.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	shipmentsPath := config.Get("SHIPMENT_SEED_PATH", "data/seeds/shipments.json")
	carriersPath := config.Get("CARRIER_SEED_PATH", "data/seeds/carriers.json")

	driver := config.Get("DB_DRIVER", "sqlite")
	switch driver {
	case "sqlite":
		dbPath := config.Get("DB_PATH", "data/app.db")
		conn, err := sql.Open("sqlite", dbPath)
		if err != nil {
			log.Fatalf("open sqlite database %q: %v", dbPath, err)
		}
		defer conn.Close()

		initAndSeed(conn, repositories.InitSchema, repositories.SeedFromJSON, shipmentsPath, carriersPath)

	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			log.Fatal("DATABASE_URL is required when DB_DRIVER=postgres")
		}
		conn, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		initAndSeed(conn, repositories.InitSchemaPG, repositories.SeedFromJSONPG, shipmentsPath, carriersPath)

	default:
		log.Fatalf("unknown DB_DRIVER %q", driver)
	}
}

func initAndSeed(
	conn *sql.DB,
	initSchema func(*sql.DB) error,
	seed func(*sql.DB, string, string) error,
	shipmentsPath, carriersPath string,
) {
	log.Println("Initializing database schema...")
	if err := initSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := seed(conn, shipmentsPath, carriersPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
