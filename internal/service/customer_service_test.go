package service_test

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/swiftcart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomCustomer() domain.Customer {
	city := gofakeit.City()
	return domain.Customer{
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Email:     gofakeit.Email(),
		City:      &city,
	}
}

func (suite *serviceSuite) TestCreateCustomer() {
	t := suite.T()
	ctx := t.Context()

	input := randomCustomer()

	created, err := suite.customers.CreateCustomer(ctx, input)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, input.Email, created.Email)
	require.NotNil(t, created.CartID)

	cart := suite.cart(*created.CartID)
	assert.Equal(t, 1, cart.Version)
	assert.Empty(t, cart.Items)
	require.NotNil(t, cart.CustomerID)
	assert.Equal(t, created.ID, *cart.CustomerID)

	fetched, err := suite.customers.GetCustomer(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.CartID, fetched.CartID)

	// a taken email leaves no orphan cart behind
	_, err = suite.customers.CreateCustomer(ctx, domain.Customer{FirstName: "a", LastName: "b", Email: input.Email})
	require.ErrorIs(t, err, domain.ErrEmailTaken)
	require.ErrorIs(t, err, domain.ErrConflict)

	customers, err := suite.customers.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func (suite *serviceSuite) TestUpdateCustomer() {
	t := suite.T()
	ctx := t.Context()

	created, err := suite.customers.CreateCustomer(ctx, randomCustomer())
	require.NoError(t, err)

	changed := randomCustomer()
	changed.ID = created.ID

	updated, err := suite.customers.UpdateCustomer(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, changed.Email, updated.Email)
	assert.Equal(t, changed.City, updated.City)

	changed.ID = created.ID + 1000
	_, err = suite.customers.UpdateCustomer(ctx, changed)
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func (suite *serviceSuite) TestDeleteCustomer() {
	t := suite.T()
	ctx := t.Context()

	created, err := suite.customers.CreateCustomer(ctx, randomCustomer())
	require.NoError(t, err)
	cartID := *created.CartID

	product := suite.createProduct("5.00", 10)
	suite.addItem(cartID, product.ID, 1)
	order, err := suite.orders.PlaceOrder(ctx, cartID)
	require.NoError(t, err)
	suite.addItem(cartID, product.ID, 2)

	require.NoError(t, suite.customers.DeleteCustomer(ctx, created.ID))

	_, err = suite.customers.GetCustomer(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)

	_, err = suite.carts.GetCart(ctx, cartID)
	require.ErrorIs(t, err, domain.ErrCartNotFound)

	_, err = suite.orders.GetOrder(ctx, order.ID)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)

	// stock taken by the order is not returned
	assert.Equal(t, 9, suite.stock(product.ID))

	err = suite.customers.DeleteCustomer(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
