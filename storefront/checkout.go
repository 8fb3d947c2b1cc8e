package storefront

import (
	"errors"

	"github.com/shophub-store/shophub-api/models"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNotAuthenticated = errors.New("not signed in")
)

// Checkout converts the cart into a durable order: it snapshots the lines,
// submits them with the shipping record and the raw subtotal, and clears the
// cart only after the server confirms. On any error the cart is left intact,
// so a retry resubmits the same payload; the server keeps no idempotency key,
// so a retry after a lost response can create a duplicate order.
func (c *Client) Checkout(cart *CartStore, shipping models.ShippingInfo) (models.Order, error) {
	if !c.Authenticated() {
		return models.Order{}, ErrNotAuthenticated
	}

	lines := cart.Lines()
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	input := models.CreateOrderInput{
		Total:        cart.Subtotal(),
		ShippingInfo: shipping,
	}
	for _, line := range lines {
		productID := line.ProductID
		input.Items = append(input.Items, models.OrderLineInput{
			ProductID: &productID,
			Name:      line.Name,
			Image:     line.Image,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}

	order, err := c.PlaceOrder(input)
	if err != nil {
		return models.Order{}, err
	}

	cart.Clear()
	return order, nil
}
