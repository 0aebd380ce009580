package service_test

import (
	"github.com/nikolayk812/swiftcart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func (suite *serviceSuite) TestCreateProduct_Validation() {
	price := domain.Money{Amount: decimal.RequireFromString("1.00"), Currency: currency.USD}

	tests := []struct {
		name    string
		product domain.Product
	}{
		{
			name:    "blank name",
			product: domain.Product{Name: " ", Price: price},
		},
		{
			name: "negative price",
			product: domain.Product{
				Name:  "widget",
				Price: domain.Money{Amount: decimal.RequireFromString("-0.01"), Currency: currency.USD},
			},
		},
		{
			name:    "negative stock",
			product: domain.Product{Name: "widget", Price: price, StockQuantity: -1},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.products.CreateProduct(suite.T().Context(), tt.product)
			require.ErrorIs(suite.T(), err, domain.ErrValidation)
		})
	}
}

func (suite *serviceSuite) TestListProducts() {
	t := suite.T()
	ctx := t.Context()

	first := suite.createProduct("1.00", 1)
	second := suite.createProduct("2.00", 2)

	products, err := suite.products.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, first.ID, products[0].ID)
	assert.Equal(t, second.ID, products[1].ID)

	_, err = suite.products.GetProduct(ctx, second.ID+1000)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}
