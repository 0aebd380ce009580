package repository

import (
	"context"
	"fmt"

	"github.com/nikolayk812/swiftcart/internal/db"
	"github.com/nikolayk812/swiftcart/internal/domain"
)

type customerRepository struct {
	q *db.Queries
}

func (r *customerRepository) CreateCustomer(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	dbCustomer, err := r.q.CreateCustomer(ctx, db.CreateCustomerParams{
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Address:   customer.Address,
		City:      customer.City,
		State:     customer.State,
		ZipCode:   customer.ZipCode,
		Country:   customer.Country,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Customer{}, domain.ErrEmailTaken
		}
		return domain.Customer{}, fmt.Errorf("q.CreateCustomer: %w", mapError(err, nil))
	}

	return mapCustomerToDomain(dbCustomer), nil
}

func (r *customerRepository) GetCustomer(ctx context.Context, customerID int64) (domain.Customer, error) {
	dbCustomer, err := r.q.GetCustomer(ctx, customerID)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("q.GetCustomer: %w", mapError(err, domain.ErrCustomerNotFound))
	}

	return mapCustomerToDomain(dbCustomer), nil
}

func (r *customerRepository) LockCustomer(ctx context.Context, customerID int64) (domain.Customer, error) {
	dbCustomer, err := r.q.LockCustomer(ctx, customerID)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("q.LockCustomer: %w", mapError(err, domain.ErrCustomerNotFound))
	}

	return mapCustomerToDomain(dbCustomer), nil
}

func (r *customerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	dbCustomers, err := r.q.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListCustomers: %w", err)
	}

	customers := make([]domain.Customer, 0, len(dbCustomers))
	for _, dbCustomer := range dbCustomers {
		customers = append(customers, mapCustomerToDomain(dbCustomer))
	}

	return customers, nil
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	dbCustomer, err := r.q.UpdateCustomer(ctx, db.UpdateCustomerParams{
		CustomerID: customer.ID,
		FirstName:  customer.FirstName,
		LastName:   customer.LastName,
		Email:      customer.Email,
		Phone:      customer.Phone,
		Address:    customer.Address,
		City:       customer.City,
		State:      customer.State,
		ZipCode:    customer.ZipCode,
		Country:    customer.Country,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Customer{}, domain.ErrEmailTaken
		}
		return domain.Customer{}, fmt.Errorf("q.UpdateCustomer: %w", mapError(err, domain.ErrCustomerNotFound))
	}

	return mapCustomerToDomain(dbCustomer), nil
}

func (r *customerRepository) DeleteCustomer(ctx context.Context, customerID int64) (bool, error) {
	rowsAffected, err := r.q.DeleteCustomer(ctx, customerID)
	if err != nil {
		return false, fmt.Errorf("q.DeleteCustomer: %w", mapError(err, nil))
	}

	return rowsAffected > 0, nil
}

func mapCustomerToDomain(dbCustomer db.Customer) domain.Customer {
	return domain.Customer{
		ID:        dbCustomer.CustomerID,
		FirstName: dbCustomer.FirstName,
		LastName:  dbCustomer.LastName,
		Email:     dbCustomer.Email,
		Phone:     dbCustomer.Phone,
		Address:   dbCustomer.Address,
		City:      dbCustomer.City,
		State:     dbCustomer.State,
		ZipCode:   dbCustomer.ZipCode,
		Country:   dbCustomer.Country,
		CreatedAt: dbCustomer.CreatedAt,
		UpdatedAt: dbCustomer.UpdatedAt,
	}
}
