package validation

// CreateProductRequest is the payload for POST /api/v1/products.
type CreateProductRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	Price         string `json:"price" validate:"required,price"`       // decimal string, e.g. "9.99"
	Currency      string `json:"currency" validate:"required,currency"` // ISO 4217 code
	StockQuantity int    `json:"stock_quantity" validate:"min=0"`
}

// AddCartItemRequest is the payload for POST /api/v1/cart/items.
type AddCartItemRequest struct {
	CartID    int64 `json:"cart_id" validate:"required,gt=0"`
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// UpdateCartItemRequest is the payload for PUT /api/v1/cart/items/:id.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// PlaceOrderRequest is the payload for POST /api/v1/orders.
type PlaceOrderRequest struct {
	CartID int64 `json:"cart_id" validate:"required,gt=0"`
}

// UpdateOrderStatusRequest is the payload for PUT /api/v1/orders/:id. The status value itself is
// checked by the order service.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CustomerRequest is the payload for POST and PUT /api/v1/customers.
type CustomerRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=255"`
	LastName  string  `json:"last_name" validate:"required,max=255"`
	Email     string  `json:"email" validate:"required,email,max=255"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State     *string `json:"state,omitempty" validate:"omitempty,max=100"`
	ZipCode   *string `json:"zip_code,omitempty" validate:"omitempty,max=20"`
	Country   *string `json:"country,omitempty" validate:"omitempty,max=100"`
}
