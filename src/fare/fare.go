// Package fare holds the pure pricing math for flight fares and hotel room
// rates. Nothing in here touches storage; callers round-trip the results
// into booking rows.
package fare

import (
	"math"

	"ctms/src/models"
	"ctms/src/types"
)

// Quote prices qty units of a base rate with a percentage discount.
// Gross and the discount amount are rounded to 2 decimals at the point they
// become authoritative; net is their rounded difference.
type Quote struct {
	Gross    float64
	Discount float64
	Net      float64
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func Price(baseRate, discountPercent float64, qty int) Quote {
	if qty < 1 {
		qty = 1
	}
	gross := Round2(baseRate * float64(qty))
	discount := Round2(baseRate * (discountPercent / 100) * float64(qty))
	return Quote{
		Gross:    gross,
		Discount: discount,
		Net:      Round2(gross - discount),
	}
}

// CabinRate resolves the requested cabin to the flight's price for it,
// falling back to economy when the tier is unknown or unpriced.
func CabinRate(flight *models.FlightInventory, cabin types.CabinClass) float64 {
	switch cabin {
	case types.CABIN_PREMIUM_ECONOMY:
		if flight.PremiumEconomyPrice != nil {
			return *flight.PremiumEconomyPrice
		}
	case types.CABIN_BUSINESS:
		if flight.BusinessPrice != nil {
			return *flight.BusinessPrice
		}
	case types.CABIN_FIRST:
		if flight.FirstPrice != nil {
			return *flight.FirstPrice
		}
	}
	return flight.EconomyPrice
}

// NormalizeCabin maps a free-form cabin string onto a known class,
// defaulting to the cheapest tier.
func NormalizeCabin(cabin string) types.CabinClass {
	switch types.CabinClass(cabin) {
	case types.CABIN_PREMIUM_ECONOMY, types.CABIN_BUSINESS, types.CABIN_FIRST:
		return types.CabinClass(cabin)
	}
	return types.CABIN_ECONOMY
}

// StayTotal sums the discounted price of one row per night and derives the
// per-night rate. rows must hold exactly the selected night rows.
func StayTotal(rows []*models.HotelRoomInventory) (total float64, perNight float64) {
	if len(rows) == 0 {
		return 0, 0
	}
	for _, row := range rows {
		total += row.DiscountedPrice
	}
	total = Round2(total)
	perNight = Round2(total / float64(len(rows)))
	return total, perNight
}
