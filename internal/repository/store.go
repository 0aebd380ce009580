package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/swiftcart/internal/db"
	"github.com/nikolayk812/swiftcart/internal/port"
)

type store struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) port.Store {
	return &store{
		q:    db.New(pool),
		pool: pool,
	}
}

func newTxStore(tx pgx.Tx) *store {
	return &store{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (s *store) InTx(ctx context.Context, fn func(tx port.Tx) error) error {
	_, err := withTx(ctx, s.pool, s, func(txStore *store) (struct{}, error) {
		return struct{}{}, fn(txStore)
	})
	return err
}

func (s *store) Products() port.ProductRepository {
	return &productRepository{q: s.q}
}

func (s *store) Carts() port.CartRepository {
	return &cartRepository{q: s.q}
}

func (s *store) Orders() port.OrderRepository {
	return &orderRepository{q: s.q}
}

func (s *store) Customers() port.CustomerRepository {
	return &customerRepository{q: s.q}
}

func (s *store) Events() port.OrderEventRepository {
	return &orderEventRepository{q: s.q}
}

// NewPool connects to Postgres. A positive lockTimeout is set as lock_timeout on every connection, so
// a transaction waiting on a row lock fails instead of blocking indefinitely.
func NewPool(ctx context.Context, databaseURL string, lockTimeout time.Duration) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}

	if lockTimeout > 0 {
		cfg.ConnConfig.RuntimeParams["lock_timeout"] = fmt.Sprintf("%d", lockTimeout.Milliseconds())
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}

	return pool, nil
}
