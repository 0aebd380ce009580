package repository_test

import (
	"github.com/nikolayk812/swiftcart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *repositorySuite) TestCreateProduct() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		product   domain.Product
		wantError error
	}{
		{
			name:    "create product: ok",
			product: randomProduct(10),
		},
		{
			name:    "create product with zero stock: ok",
			product: randomProduct(0),
		},
		{
			name:      "create product with negative stock: error",
			product:   randomProduct(-1),
			wantError: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			created, err := suite.store.Products().CreateProduct(ctx, tt.product)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assertProduct(t, tt.product, created)

			fetched, err := suite.store.Products().GetProduct(ctx, created.ID)
			require.NoError(t, err)
			assertProduct(t, tt.product, fetched)
		})
	}
}

func (suite *repositorySuite) TestGetProduct_NotFound() {
	t := suite.T()

	_, err := suite.store.Products().GetProduct(t.Context(), 424242)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = suite.store.Products().LockProduct(t.Context(), 424242)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func (suite *repositorySuite) TestListProducts() {
	defer suite.deleteAll()
	t := suite.T()

	first := suite.createProduct(1)
	second := suite.createProduct(2)

	products, err := suite.store.Products().ListProducts(t.Context())
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, first.ID, products[0].ID)
	assert.Equal(t, second.ID, products[1].ID)
}

func (suite *repositorySuite) TestUpdateStock() {
	defer suite.deleteAll()

	product := suite.createProduct(10)

	tests := []struct {
		name      string
		productID int64
		stock     int
		wantError error
	}{
		{
			name:      "decrease stock: ok",
			productID: product.ID,
			stock:     3,
		},
		{
			name:      "stock to zero: ok",
			productID: product.ID,
			stock:     0,
		},
		{
			name:      "missing product: not found",
			productID: product.ID + 1000,
			stock:     1,
			wantError: domain.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			err := suite.store.Products().UpdateStock(ctx, tt.productID, tt.stock)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			fetched, err := suite.store.Products().GetProduct(ctx, tt.productID)
			require.NoError(t, err)
			assert.Equal(t, tt.stock, fetched.StockQuantity)
		})
	}

	suite.Run("negative stock: error", func() {
		t := suite.T()

		err := suite.store.Products().UpdateStock(t.Context(), product.ID, -1)
		require.EqualError(t, err, "stock[-1] is negative")
	})
}
