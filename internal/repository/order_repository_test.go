package repository_test

import (
	"github.com/nikolayk812/swiftcart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func (suite *repositorySuite) TestCreateOrder() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	cart := suite.createCart()
	total := domain.Money{Amount: decimal.RequireFromString("24.98"), Currency: currency.USD}

	order, err := suite.store.Orders().CreateOrder(ctx, domain.Order{
		CartID:      cart.ID,
		CartVersion: cart.Version,
		Total:       total,
		Status:      domain.OrderStatusPending,
	})
	require.NoError(t, err)

	assert.NotZero(t, order.ID)
	assert.Equal(t, cart.ID, order.CartID)
	assert.Equal(t, cart.Version, order.CartVersion)
	assert.True(t, total.Equal(order.Total))
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.False(t, order.CreatedAt.IsZero())

	fetched, err := suite.store.Orders().GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, fetched.ID)
	assert.True(t, total.Equal(fetched.Total))

	// one order per cart state
	_, err = suite.store.Orders().CreateOrder(ctx, domain.Order{
		CartID:      cart.ID,
		CartVersion: cart.Version,
		Total:       total,
		Status:      domain.OrderStatusPending,
	})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func (suite *repositorySuite) TestUpdateOrderStatus() {
	defer suite.deleteAll()

	cart := suite.createCart()
	order, err := suite.store.Orders().CreateOrder(suite.T().Context(), domain.Order{
		CartID:      cart.ID,
		CartVersion: cart.Version,
		Total:       randomMoney(),
		Status:      domain.OrderStatusPending,
	})
	suite.Require().NoError(err)

	tests := []struct {
		name      string
		orderID   int64
		status    domain.OrderStatus
		wantError error
	}{
		{
			name:    "ship: ok",
			orderID: order.ID,
			status:  domain.OrderStatusShipped,
		},
		{
			name:    "deliver: ok",
			orderID: order.ID,
			status:  domain.OrderStatusDelivered,
		},
		{
			name:      "unknown status rejected by the store",
			orderID:   order.ID,
			status:    domain.OrderStatus("LOST"),
			wantError: domain.ErrValidation,
		},
		{
			name:      "missing order: not found",
			orderID:   order.ID + 1000,
			status:    domain.OrderStatusShipped,
			wantError: domain.ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			updated, err := suite.store.Orders().UpdateStatus(t.Context(), tt.orderID, tt.status)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, updated.Status)
			assert.True(t, order.Total.Equal(updated.Total))
		})
	}
}

func (suite *repositorySuite) TestListOrders() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	orders, err := suite.store.Orders().ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	var ids []int64
	for i := 0; i < 3; i++ {
		cart := suite.createCart()
		order, err := suite.store.Orders().CreateOrder(ctx, domain.Order{
			CartID:      cart.ID,
			CartVersion: cart.Version,
			Total:       randomMoney(),
			Status:      domain.OrderStatusPending,
		})
		require.NoError(t, err)
		ids = append(ids, order.ID)
	}

	orders, err = suite.store.Orders().ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	for i, order := range orders {
		assert.Equal(t, ids[i], order.ID)
	}
}
