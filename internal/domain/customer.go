package domain

import "time"

type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	Address   *string
	City      *string
	State     *string
	ZipCode   *string
	Country   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerWithCart pairs a customer with the cart opened for them on registration.
type CustomerWithCart struct {
	Customer
	CartID *int64
}
