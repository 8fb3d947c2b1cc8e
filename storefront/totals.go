package storefront

// Display-only checkout figures. The flat fee and tax rate match what the
// order summary shows; none of this is sent to the server, which records the
// raw subtotal submitted at checkout.
const (
	ShippingFee = 9.99
	TaxRate     = 0.10
)

type Totals struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
}

// ComputeTotals derives the order-summary figures from a subtotal. Shipping
// is waived for an empty cart.
func ComputeTotals(subtotal float64) Totals {
	shipping := 0.0
	if subtotal > 0 {
		shipping = ShippingFee
	}
	tax := subtotal * TaxRate
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
