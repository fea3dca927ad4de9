// Package db opens the Postgres connection pool used when the service runs
// against DB_DRIVER=postgres.
package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Pool sizing for a read-mostly workload: the repositories issue two short
// SELECTs per planning run.
const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
	connMaxIdleTime = 5 * time.Minute
)

func Open(databaseURL string) (*sql.DB, error) {
	conn, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)
	conn.SetConnMaxLifetime(connMaxLifetime)
	conn.SetConnMaxIdleTime(connMaxIdleTime)

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("open postgres: verify connection: %w", err)
	}

	return conn, nil
}
