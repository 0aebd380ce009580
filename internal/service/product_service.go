package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nikolayk812/swiftcart/internal/domain"
	"github.com/nikolayk812/swiftcart/internal/port"
)

type ProductService struct {
	store port.Store
}

func NewProductService(store port.Store) *ProductService {
	return &ProductService{store: store}
}

func (s *ProductService) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if strings.TrimSpace(product.Name) == "" {
		return domain.Product{}, fmt.Errorf("%w: product name is empty", domain.ErrValidation)
	}
	if product.Price.Amount.IsNegative() {
		return domain.Product{}, fmt.Errorf("%w: price is negative", domain.ErrValidation)
	}
	if product.StockQuantity < 0 {
		return domain.Product{}, fmt.Errorf("%w: stock is negative", domain.ErrValidation)
	}

	created, err := s.store.Products().CreateProduct(ctx, product)
	if err != nil {
		return domain.Product{}, domain.Classify(fmt.Errorf("store.Products.CreateProduct: %w", err))
	}

	return created, nil
}

func (s *ProductService) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	product, err := s.store.Products().GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, domain.Classify(fmt.Errorf("store.Products.GetProduct: %w", err))
	}

	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.store.Products().ListProducts(ctx)
	if err != nil {
		return nil, domain.Classify(fmt.Errorf("store.Products.ListProducts: %w", err))
	}

	return products, nil
}
