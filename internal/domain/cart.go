package domain

import (
	"time"
)

// Cart is a customer's (or an anonymous) basket. Version starts at 1 and grows by one with every
// change of the item set; callers may compare it to detect interleaved updates.
type Cart struct {
	ID         int64
	CustomerID *int64
	Version    int
	Items      []CartItem
}

type CartItem struct {
	ID        int64
	CartID    int64
	ProductID int64
	Quantity  int
	Product   Product

	CreatedAt time.Time
}

// CartUpdate is the outcome of a cart mutation. Item is nil when the line was removed.
type CartUpdate struct {
	CartID  int64
	Version int
	Item    *CartItem
}

func (i CartItem) Subtotal() Money {
	return i.Product.Price.Times(i.Quantity)
}

// Total sums price*quantity over all items. All products must share one currency.
func (c Cart) Total() (Money, error) {
	if len(c.Items) == 0 {
		return Money{}, ErrCartEmpty
	}

	total := c.Items[0].Subtotal()
	for _, item := range c.Items[1:] {
		var err error
		total, err = total.Add(item.Subtotal())
		if err != nil {
			return Money{}, err
		}
	}

	return total, nil
}
