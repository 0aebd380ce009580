package repository_test

import (
	"errors"

	"github.com/nikolayk812/swiftcart/internal/domain"
	"github.com/nikolayk812/swiftcart/internal/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *repositorySuite) TestInTx() {
	errBoom := errors.New("boom")

	tests := []struct {
		name      string
		fn        func(tx port.Tx, productID int64) error
		wantStock int
		wantError error
		wantPanic bool
	}{
		{
			name: "commit",
			fn: func(tx port.Tx, productID int64) error {
				return tx.Products().UpdateStock(suite.T().Context(), productID, 3)
			},
			wantStock: 3,
		},
		{
			name: "rollback on error",
			fn: func(tx port.Tx, productID int64) error {
				if err := tx.Products().UpdateStock(suite.T().Context(), productID, 3); err != nil {
					return err
				}
				return errBoom
			},
			wantStock: 10,
			wantError: errBoom,
		},
		{
			name: "nested unit of work joins the outer one",
			fn: func(tx port.Tx, productID int64) error {
				ctx := suite.T().Context()
				err := tx.(port.Store).InTx(ctx, func(inner port.Tx) error {
					return inner.Products().UpdateStock(ctx, productID, 1)
				})
				if err != nil {
					return err
				}
				return errBoom
			},
			wantStock: 10,
			wantError: errBoom,
		},
		{
			name: "rollback on panic",
			fn: func(tx port.Tx, productID int64) error {
				if err := tx.Products().UpdateStock(suite.T().Context(), productID, 0); err != nil {
					return err
				}
				panic("boom")
			},
			wantStock: 10,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			defer suite.deleteAll()
			t := suite.T()
			ctx := t.Context()

			product := suite.createProduct(10)

			run := func() error {
				return suite.store.InTx(ctx, func(tx port.Tx) error {
					return tt.fn(tx, product.ID)
				})
			}

			if tt.wantPanic {
				assert.Panics(t, func() { _ = run() })
			} else {
				err := run()
				if tt.wantError != nil {
					require.ErrorIs(t, err, tt.wantError)
				} else {
					require.NoError(t, err)
				}
			}

			actual, err := suite.store.Products().GetProduct(ctx, product.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStock, actual.StockQuantity)
		})
	}
}

func (suite *repositorySuite) TestLockTimeout() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	product := suite.createProduct(10)

	err := suite.store.InTx(ctx, func(tx port.Tx) error {
		if _, err := tx.Products().LockProduct(ctx, product.ID); err != nil {
			return err
		}

		// the pool sets lock_timeout, so a second locker gives up instead of waiting for us
		return suite.store.InTx(ctx, func(other port.Tx) error {
			_, err := other.Products().LockProduct(ctx, product.ID)
			require.Error(t, err)
			assert.ErrorIs(t, domain.Classify(err), domain.ErrPersistence)
			return nil
		})
	})
	require.NoError(t, err)
}
