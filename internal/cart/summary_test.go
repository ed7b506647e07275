package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSummaryMidTier(t *testing.T) {
	// subtotal 150: free shipping kicks in, no discount yet
	s := ComputeSummary([]Line{{ID: "1", Price: 75, Quantity: 2}})
	assert.Equal(t, 150.0, s.Subtotal)
	assert.Equal(t, 0.0, s.Shipping)
	assert.Equal(t, 0.0, s.Discount)
	assert.InDelta(t, 7.5, s.Tax, 1e-9)
	assert.InDelta(t, 157.5, s.Total, 1e-9)
}

func TestComputeSummaryDiscountTier(t *testing.T) {
	s := ComputeSummary([]Line{{ID: "1", Price: 125, Quantity: 2}})
	assert.Equal(t, 250.0, s.Subtotal)
	assert.Equal(t, 0.0, s.Shipping)
	assert.Equal(t, 30.0, s.Discount)
	assert.InDelta(t, 12.5, s.Tax, 1e-9)
	assert.InDelta(t, 232.5, s.Total, 1e-9)
}

func TestComputeSummarySmallOrderPaysShipping(t *testing.T) {
	s := ComputeSummary([]Line{{ID: "1", Price: 20, Quantity: 1}})
	assert.Equal(t, 9.99, s.Shipping)
	assert.InDelta(t, 20+9.99+1.0, s.Total, 1e-9)
}

func TestComputeSummaryBoundaryAt100(t *testing.T) {
	// shipping is free strictly above 100
	assert.Equal(t, 9.99, ComputeSummary([]Line{{Price: 100, Quantity: 1}}).Shipping)
	assert.Equal(t, 0.0, ComputeSummary([]Line{{Price: 100.01, Quantity: 1}}).Shipping)

	// discount applies strictly above 200
	assert.Equal(t, 0.0, ComputeSummary([]Line{{Price: 200, Quantity: 1}}).Discount)
	assert.Equal(t, 30.0, ComputeSummary([]Line{{Price: 200.01, Quantity: 1}}).Discount)
}

func TestComputeSummaryTotalIdentity(t *testing.T) {
	carts := [][]Line{
		nil,
		{{Price: 9.99, Quantity: 1}},
		{{Price: 33.33, Quantity: 3}, {Price: 5, Quantity: 10}},
		{{Price: 120, Quantity: 2}, {Price: 0.01, Quantity: 1}},
	}
	for _, lines := range carts {
		s := ComputeSummary(lines)
		assert.InDelta(t, s.Subtotal+s.Shipping+s.Tax-s.Discount, s.Total, 1e-9)
	}
}

func TestLineTotalUsesStoredPrice(t *testing.T) {
	line := Line{Price: 12.5, Quantity: 4}
	assert.Equal(t, 50.0, line.LineTotal())
}
