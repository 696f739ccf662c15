package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

func buildDSNFromEnv() (string, error) {
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	user := os.Getenv("POSTGRES_USER")
	pass := os.Getenv("POSTGRES_PASSWORD")
	dbname := os.Getenv("POSTGRES_DB")
	if dbname == "" {
		if url := os.Getenv("DATABASE_URL"); url != "" {
			return url, nil
		}
		return "", errors.Wrap(ErrInvalidConfig, "POSTGRES_DB not set; set env vars or DATABASE_URL")
	}
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "5432"
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, pass, dbname)
	return dsn, nil
}

func openPostgres(ctx context.Context) (*sql.DB, error) {
	dsn, err := buildDSNFromEnv()
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "connect")
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "database not reachable")
	}
	return db, nil
}

// postgresSource reads the first limit rows of the samples table.
type postgresSource struct {
	db    *sql.DB
	limit int
}

func (s *postgresSource) Name() string { return sourcePostgres }

func (s *postgresSource) Load(ctx context.Context) ([]float64, []float64, error) {
	values, err := fetchSamples(ctx, s.db, s.limit)
	if err != nil {
		return nil, nil, errors.Wrap(err, "fetch samples")
	}
	if len(values) == 0 {
		return nil, nil, ErrEmptySample
	}
	return values, indexSequence(len(values)), nil
}

func (s *postgresSource) Close() error { return s.db.Close() }

func fetchSamples(ctx context.Context, db *sql.DB, limit int) ([]float64, error) {
	if limit <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "limit must be positive, got %d", limit)
	}
	rows, err := db.QueryContext(ctx, "SELECT value FROM samples ORDER BY id ASC LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	values := make([]float64, 0, limit)
	for rows.Next() {
		var v sql.NullFloat64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		if v.Valid {
			values = append(values, v.Float64)
		}
	}
	return values, rows.Err()
}
