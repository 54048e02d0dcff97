package ledger

import (
	"math"

	"firstcut/models"
)

// CommissionRate is the platform's fixed cut of a booking subtotal.
// Not runtime-configurable.
const CommissionRate = 0.10

// Split is the commission breakdown of a booking subtotal. The commission is
// absorbed from the shop's side: the customer is charged the plain subtotal.
// Invariant: Commission + ShopEarnings == Subtotal.
type Split struct {
	Subtotal     int
	Commission   int
	ShopEarnings int
}

// ComputeSplit sums the selected service prices and splits the subtotal into
// the platform commission (rounded half-up to the nearest whole unit) and the
// shop's earnings. The remainder after the single rounding step goes to the
// shop, so no unit is ever lost or created.
func ComputeSplit(services []models.Service, rate float64) Split {
	subtotal := 0
	for _, svc := range services {
		subtotal += svc.Price
	}
	commission := int(math.Round(float64(subtotal) * rate))
	return Split{
		Subtotal:     subtotal,
		Commission:   commission,
		ShopEarnings: subtotal - commission,
	}
}
