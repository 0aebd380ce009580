package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nikolayk812/swiftcart/internal/domain"
)

const (
	pgUniqueViolation        = "23505"
	pgForeignKeyViolation    = "23503"
	pgCheckViolation         = "23514"
	pgNumericValueOutOfRange = "22003"
)

// mapError translates driver errors into domain error kinds. notFound is returned for pgx.ErrNoRows.
func mapError(err error, notFound error) error {
	if errors.Is(err, pgx.ErrNoRows) && notFound != nil {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCheckViolation, pgNumericValueOutOfRange:
			return fmt.Errorf("%w: %w", domain.ErrValidation, err)
		case pgUniqueViolation, pgForeignKeyViolation:
			return fmt.Errorf("%w: %w", domain.ErrConflict, err)
		}
	}

	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
