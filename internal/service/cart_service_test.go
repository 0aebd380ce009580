package service_test

import (
	"github.com/nikolayk812/swiftcart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *serviceSuite) TestAddItem() {
	product := suite.createProduct("3.30", 10)
	cartID := suite.createCart()

	tests := []struct {
		name         string
		cartID       int64
		productID    int64
		quantity     int
		wantQuantity int
		wantVersion  int
		wantError    error
	}{
		{
			name:         "new line",
			cartID:       cartID,
			productID:    product.ID,
			quantity:     2,
			wantQuantity: 2,
			wantVersion:  2,
		},
		{
			name:         "same product merges into the line",
			cartID:       cartID,
			productID:    product.ID,
			quantity:     3,
			wantQuantity: 5,
			wantVersion:  3,
		},
		{
			name:      "zero quantity",
			cartID:    cartID,
			productID: product.ID,
			quantity:  0,
			wantError: domain.ErrInvalidQuantity,
		},
		{
			name:      "missing product",
			cartID:    cartID,
			productID: product.ID + 1000,
			quantity:  1,
			wantError: domain.ErrProductNotFound,
		},
		{
			name:      "missing cart",
			cartID:    cartID + 1000,
			productID: product.ID,
			quantity:  1,
			wantError: domain.ErrCartNotFound,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			update, err := suite.carts.AddItem(t.Context(), tt.cartID, tt.productID, tt.quantity)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.cartID, update.CartID)
			assert.Equal(t, tt.wantVersion, update.Version)
			require.NotNil(t, update.Item)
			assert.Equal(t, tt.wantQuantity, update.Item.Quantity)
			assert.Equal(t, product.Name, update.Item.Product.Name)
		})
	}

	// failed attempts leave the cart alone
	cart := suite.cart(cartID)
	suite.Equal(3, cart.Version)
	suite.Len(cart.Items, 1)
}

func (suite *serviceSuite) TestUpdateItem() {
	t := suite.T()
	ctx := t.Context()

	product := suite.createProduct("1.00", 10)
	cartID := suite.createCart()
	added := suite.addItem(cartID, product.ID, 1)

	update, err := suite.carts.UpdateItem(ctx, added.Item.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, added.Version+1, update.Version)
	require.NotNil(t, update.Item)
	assert.Equal(t, 4, update.Item.Quantity)

	_, err = suite.carts.UpdateItem(ctx, added.Item.ID, 0)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = suite.carts.UpdateItem(ctx, added.Item.ID+1000, 1)
	require.ErrorIs(t, err, domain.ErrCartItemNotFound)

	assert.Equal(t, update.Version, suite.cart(cartID).Version)
}

func (suite *serviceSuite) TestRemoveItem() {
	t := suite.T()
	ctx := t.Context()

	cartID := suite.createCart()
	added := suite.addItem(cartID, suite.createProduct("1.00", 10).ID, 1)

	update, err := suite.carts.RemoveItem(ctx, added.Item.ID)
	require.NoError(t, err)
	assert.Equal(t, cartID, update.CartID)
	assert.Equal(t, added.Version+1, update.Version)
	assert.Nil(t, update.Item)

	_, err = suite.carts.RemoveItem(ctx, added.Item.ID)
	require.ErrorIs(t, err, domain.ErrCartItemNotFound)

	cart := suite.cart(cartID)
	assert.Empty(t, cart.Items)
	assert.Equal(t, update.Version, cart.Version)
}

func (suite *serviceSuite) TestGetCart_NotFound() {
	_, err := suite.carts.GetCart(suite.T().Context(), 4242)
	suite.Require().ErrorIs(err, domain.ErrCartNotFound)
}
