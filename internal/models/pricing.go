package models

// DiscountedPrice returns the effective unit price for a base price in
// whole rupees with a percent discount applied, rounded half-up. A nil
// or zero discount leaves the price untouched.
func DiscountedPrice(price int64, discount *int) int64 {
	if discount == nil || *discount == 0 {
		return price
	}
	return (price*int64(100-*discount) + 50) / 100
}

// LineTotal is the effective unit price times quantity.
func LineTotal(price int64, discount *int, quantity uint) int64 {
	return DiscountedPrice(price, discount) * int64(quantity)
}
