package catalog

import (
	"fmt"
	"math"
)

// PriceInfo is the presentation view of a price with an optional discount.
// The original price is back-computed from the discounted one; currency is
// rounded here, at presentation, never while accumulating.
type PriceInfo struct {
	IsOnSale      bool
	CurrentPrice  float64
	OriginalPrice float64
	DiscountLabel string
}

func GetPriceInfo(price, discountPercentage float64) PriceInfo {
	if price <= 0 {
		return PriceInfo{}
	}
	if discountPercentage <= 0 || discountPercentage >= 100 {
		return PriceInfo{CurrentPrice: price}
	}

	return PriceInfo{
		IsOnSale:      true,
		CurrentPrice:  price,
		OriginalPrice: price * 100 / (100 - discountPercentage),
		DiscountLabel: fmt.Sprintf("%g%% off", discountPercentage),
	}
}

// Stars breaks a 0-5 rating into whole, half and empty stars. A fractional
// part in [0.25, 0.75) shows a half star; at or above 0.75 it rounds up.
type Stars struct {
	Full  int
	Half  bool
	Empty int
}

func RatingStars(rating float64) Stars {
	const totalStars = 5

	rating = math.Max(0, math.Min(totalStars, rating))
	full := int(math.Floor(rating))
	decimal := rating - float64(full)

	s := Stars{Full: full}
	switch {
	case decimal >= 0.75:
		s.Full++
	case decimal >= 0.25:
		s.Half = true
	}

	s.Empty = totalStars - s.Full
	if s.Half {
		s.Empty--
	}
	return s
}
