package repository_test

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/swiftcart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *repositorySuite) TestCreateCustomer() {
	defer suite.deleteAll()

	taken := randomCustomer()
	_, err := suite.store.Customers().CreateCustomer(suite.T().Context(), taken)
	suite.Require().NoError(err)

	duplicate := randomCustomer()
	duplicate.Email = taken.Email

	tests := []struct {
		name      string
		customer  domain.Customer
		wantError error
	}{
		{
			name:     "create customer: ok",
			customer: randomCustomer(),
		},
		{
			name: "create customer without optional fields: ok",
			customer: domain.Customer{
				FirstName: gofakeit.FirstName(),
				LastName:  gofakeit.LastName(),
				Email:     gofakeit.Email(),
			},
		},
		{
			name:      "duplicate email: conflict",
			customer:  duplicate,
			wantError: domain.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			created, err := suite.store.Customers().CreateCustomer(ctx, tt.customer)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				require.ErrorIs(t, err, domain.ErrConflict)
				return
			}
			require.NoError(t, err)
			assertCustomer(t, tt.customer, created)

			fetched, err := suite.store.Customers().GetCustomer(ctx, created.ID)
			require.NoError(t, err)
			assertCustomer(t, tt.customer, fetched)
		})
	}
}

func (suite *repositorySuite) TestUpdateCustomer() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	created, err := suite.store.Customers().CreateCustomer(ctx, randomCustomer())
	require.NoError(t, err)

	changed := randomCustomer()
	changed.ID = created.ID

	updated, err := suite.store.Customers().UpdateCustomer(ctx, changed)
	require.NoError(t, err)
	assertCustomer(t, changed, updated)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	changed.ID = created.ID + 1000
	_, err = suite.store.Customers().UpdateCustomer(ctx, changed)
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func (suite *repositorySuite) TestDeleteCustomerData() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	customer, err := suite.store.Customers().CreateCustomer(ctx, randomCustomer())
	require.NoError(t, err)

	cart, err := suite.store.Carts().CreateCart(ctx, &customer.ID)
	require.NoError(t, err)
	require.NotNil(t, cart.CustomerID)
	assert.Equal(t, customer.ID, *cart.CustomerID)

	cartID, err := suite.store.Carts().GetCustomerCartID(ctx, customer.ID)
	require.NoError(t, err)
	require.NotNil(t, cartID)
	assert.Equal(t, cart.ID, *cartID)

	_, err = suite.store.Carts().AddItem(ctx, cart.ID, suite.createProduct(3).ID, 1)
	require.NoError(t, err)
	_, err = suite.store.Orders().CreateOrder(ctx, domain.Order{
		CartID: cart.ID, CartVersion: cart.Version, Total: randomMoney(), Status: domain.OrderStatusPending,
	})
	require.NoError(t, err)

	// a customer row cannot go while its cart still references it
	_, err = suite.store.Customers().DeleteCustomer(ctx, customer.ID)
	require.ErrorIs(t, err, domain.ErrConflict)

	orders, err := suite.store.Orders().DeleteCustomerOrders(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), orders)

	items, err := suite.store.Carts().DeleteCustomerItems(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), items)

	carts, err := suite.store.Carts().DeleteCustomerCarts(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), carts)

	deleted, err := suite.store.Customers().DeleteCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = suite.store.Customers().DeleteCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	cartID, err = suite.store.Carts().GetCustomerCartID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Nil(t, cartID)
}
