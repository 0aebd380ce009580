package repository

import (
	"context"
	"fmt"
	"math"

	"github.com/nikolayk812/swiftcart/internal/db"
	"github.com/nikolayk812/swiftcart/internal/domain"
	"golang.org/x/text/currency"
)

type productRepository struct {
	q *db.Queries
}

func (r *productRepository) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	stock, err := toInt32(product.StockQuantity)
	if err != nil {
		return domain.Product{}, err
	}

	dbProduct, err := r.q.CreateProduct(ctx, db.CreateProductParams{
		Name:          product.Name,
		PriceAmount:   product.Price.Amount,
		PriceCurrency: product.Price.Currency.String(),
		StockQuantity: stock,
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.CreateProduct: %w", mapError(err, nil))
	}

	return mapProductToDomain(dbProduct)
}

func (r *productRepository) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	dbProduct, err := r.q.GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", mapError(err, domain.ErrProductNotFound))
	}

	return mapProductToDomain(dbProduct)
}

func (r *productRepository) LockProduct(ctx context.Context, productID int64) (domain.Product, error) {
	dbProduct, err := r.q.LockProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.LockProduct: %w", mapError(err, domain.ErrProductNotFound))
	}

	return mapProductToDomain(dbProduct)
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	dbProducts, err := r.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products := make([]domain.Product, 0, len(dbProducts))
	for _, dbProduct := range dbProducts {
		product, err := mapProductToDomain(dbProduct)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func (r *productRepository) UpdateStock(ctx context.Context, productID int64, stock int) error {
	if stock < 0 {
		return fmt.Errorf("stock[%d] is negative", stock)
	}

	qty, err := toInt32(stock)
	if err != nil {
		return err
	}

	rowsAffected, err := r.q.UpdateProductStock(ctx, db.UpdateProductStockParams{
		ProductID:     productID,
		StockQuantity: qty,
	})
	if err != nil {
		return fmt.Errorf("q.UpdateProductStock: %w", mapError(err, nil))
	}
	if rowsAffected == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

func mapProductToDomain(dbProduct db.Product) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(dbProduct.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", dbProduct.PriceCurrency, err)
	}

	return domain.Product{
		ID:            dbProduct.ProductID,
		Name:          dbProduct.Name,
		Price:         domain.Money{Amount: dbProduct.PriceAmount, Currency: parsedCurrency},
		StockQuantity: int(dbProduct.StockQuantity),
	}, nil
}

func toInt32(v int) (int32, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%w: value %d is out of range", domain.ErrValidation, v)
	}
	return int32(v), nil
}
