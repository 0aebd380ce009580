package repository_test

import (
	"github.com/nikolayk812/swiftcart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *repositorySuite) TestAddItem() {
	defer suite.deleteAll()

	product := suite.createProduct(10)

	tests := []struct {
		name         string
		adds         []int
		wantQuantity int
	}{
		{
			name:         "add item to cart: ok",
			adds:         []int{2},
			wantQuantity: 2,
		},
		{
			name:         "add same product twice: quantities merged",
			adds:         []int{2, 3},
			wantQuantity: 5,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			cart := suite.createCart()

			var item domain.CartItem
			for _, quantity := range tt.adds {
				var err error
				item, err = suite.store.Carts().AddItem(ctx, cart.ID, product.ID, quantity)
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantQuantity, item.Quantity)
			assert.Equal(t, cart.ID, item.CartID)
			assertProduct(t, product, item.Product)
			assert.False(t, item.CreatedAt.IsZero())

			// Verify the cart holds a single line
			fetched, err := suite.store.Carts().GetCart(ctx, cart.ID)
			require.NoError(t, err)
			require.Len(t, fetched.Items, 1)
			assert.Equal(t, item.ID, fetched.Items[0].ID)
			assert.Equal(t, tt.wantQuantity, fetched.Items[0].Quantity)
		})
	}
}

func (suite *repositorySuite) TestGetCart() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		products  int
		missing   bool
		wantError error
	}{
		{
			name:     "get cart with items: ok",
			products: 3,
		},
		{
			name:     "get empty cart: ok",
			products: 0,
		},
		{
			name:      "get missing cart: not found",
			missing:   true,
			wantError: domain.ErrCartNotFound,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			cart := suite.createCart()
			cartID := cart.ID
			if tt.missing {
				cartID += 1000
			}

			// Setup: add items in reverse product order
			var products []domain.Product
			for i := 0; i < tt.products; i++ {
				products = append(products, suite.createProduct(5))
			}
			for i := len(products) - 1; i >= 0; i-- {
				_, err := suite.store.Carts().AddItem(ctx, cart.ID, products[i].ID, i+1)
				require.NoError(t, err)
			}

			fetched, err := suite.store.Carts().GetCart(ctx, cartID)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, cart.ID, fetched.ID)
			assert.Equal(t, 1, fetched.Version)
			assert.Nil(t, fetched.CustomerID)
			require.Len(t, fetched.Items, tt.products)

			// items come back ordered by product ID
			for i, item := range fetched.Items {
				assert.Equal(t, products[i].ID, item.ProductID)
				assert.Equal(t, i+1, item.Quantity)
				assertProduct(t, products[i], item.Product)
			}
		})
	}
}

func (suite *repositorySuite) TestUpdateItemQuantity() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	cart := suite.createCart()
	other := suite.createCart()
	item, err := suite.store.Carts().AddItem(ctx, cart.ID, suite.createProduct(5).ID, 1)
	require.NoError(t, err)

	updated, err := suite.store.Carts().UpdateItemQuantity(ctx, cart.ID, item.ID, 4)
	require.NoError(t, err)
	assert.True(t, updated)

	fetched, err := suite.store.Carts().GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, fetched.Quantity)

	// the item belongs to another cart
	updated, err = suite.store.Carts().UpdateItemQuantity(ctx, other.ID, item.ID, 7)
	require.NoError(t, err)
	assert.False(t, updated)

	_, err = suite.store.Carts().UpdateItemQuantity(ctx, cart.ID, item.ID, 0)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func (suite *repositorySuite) TestDeleteItem() {
	defer suite.deleteAll()

	tests := []struct {
		name        string
		otherCart   bool
		wantDeleted bool
	}{
		{
			name:        "delete existing item: ok",
			wantDeleted: true,
		},
		{
			name:        "delete item of another cart: not found",
			otherCart:   true,
			wantDeleted: false,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			cart := suite.createCart()
			item, err := suite.store.Carts().AddItem(ctx, cart.ID, suite.createProduct(5).ID, 1)
			require.NoError(t, err)

			cartID := cart.ID
			if tt.otherCart {
				cartID = suite.createCart().ID
			}

			deleted, err := suite.store.Carts().DeleteItem(ctx, cartID, item.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeleted, deleted)

			_, err = suite.store.Carts().GetItem(ctx, item.ID)
			if tt.wantDeleted {
				require.ErrorIs(t, err, domain.ErrCartItemNotFound)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func (suite *repositorySuite) TestClearItemsAndBumpVersion() {
	defer suite.deleteAll()
	t := suite.T()
	ctx := t.Context()

	cart := suite.createCart()
	for i := 0; i < 3; i++ {
		_, err := suite.store.Carts().AddItem(ctx, cart.ID, suite.createProduct(5).ID, 1)
		require.NoError(t, err)
	}

	cleared, err := suite.store.Carts().ClearItems(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cleared)

	version, err := suite.store.Carts().BumpVersion(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, version)

	version, err = suite.store.Carts().BumpVersion(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, version)

	fetched, err := suite.store.Carts().GetCart(ctx, cart.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.Items)
	assert.Equal(t, 3, fetched.Version)

	_, err = suite.store.Carts().BumpVersion(ctx, cart.ID+1000)
	require.ErrorIs(t, err, domain.ErrCartNotFound)
}
