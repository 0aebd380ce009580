// Package pgtest starts disposable Postgres containers for integration tests.
package pgtest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/swiftcart/internal/migrations"
	"github.com/nikolayk812/swiftcart/internal/repository"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	image       = "postgres:17.6-alpine3.22"
	lockTimeout = 5 * time.Second
)

// Start runs Postgres, applies the migrations and returns a pool connected to it.
func Start(ctx context.Context) (*postgres.PostgresContainer, *pgxpool.Pool, error) {
	postgresContainer, err := postgres.Run(ctx, image, postgres.BasicWaitStrategies())
	if err != nil {
		return nil, nil, fmt.Errorf("postgres.Run: %w", err)
	}

	pool, err := connect(ctx, postgresContainer)
	if err != nil {
		return nil, nil, errors.Join(err, testcontainers.TerminateContainer(postgresContainer))
	}

	return postgresContainer, pool, nil
}

func connect(ctx context.Context, postgresContainer *postgres.PostgresContainer) (*pgxpool.Pool, error) {
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, fmt.Errorf("pc.ConnectionString: %w", err)
	}

	if err := migrations.Up(connStr); err != nil {
		return nil, fmt.Errorf("migrations.Up: %w", err)
	}

	pool, err := repository.NewPool(ctx, connStr, lockTimeout)
	if err != nil {
		return nil, fmt.Errorf("repository.NewPool: %w", err)
	}

	return pool, nil
}

// Truncate empties every table and resets the id sequences.
func Truncate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx,
		"TRUNCATE TABLE order_events, orders, cart_items, carts, products, customers RESTART IDENTITY CASCADE")
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	return nil
}
