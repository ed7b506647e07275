package cart

// Summary is the priced order: unrounded accumulations, formatted to two
// decimals only when rendered.
type Summary struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Discount float64
	Total    float64
}

const (
	freeShippingAbove = 100.0
	flatShipping      = 9.99
	discountAbove     = 200.0
	flatDiscount      = 30.0
	taxRate           = 0.05
)

// ComputeSummary prices the cart at each line's stored unit price.
func ComputeSummary(lines []Line) Summary {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Price * float64(line.Quantity)
	}

	s := Summary{Subtotal: subtotal}
	if subtotal <= freeShippingAbove {
		s.Shipping = flatShipping
	}
	if subtotal > discountAbove {
		s.Discount = flatDiscount
	}
	s.Tax = subtotal * taxRate
	s.Total = s.Subtotal + s.Shipping + s.Tax - s.Discount
	return s
}
