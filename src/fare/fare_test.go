package fare

import (
	"ctms/src/models"
	"ctms/src/types"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 4500.26, Round2(4500.2567))
	assert.Equal(t, 4500.25, Round2(4500.254))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 100.0, Round2(99.999))
}

func TestPrice(t *testing.T) {
	quote := Price(5000, 10, 2)
	assert.Equal(t, 10000.0, quote.Gross)
	assert.Equal(t, 1000.0, quote.Discount)
	assert.Equal(t, 9000.0, quote.Net)

	// Zero discount passes the gross through untouched.
	quote = Price(4321.55, 0, 1)
	assert.Equal(t, quote.Gross, quote.Net)
	assert.Equal(t, 0.0, quote.Discount)

	// Passenger count below one is treated as one.
	quote = Price(1000, 5, 0)
	assert.Equal(t, 1000.0, quote.Gross)
	assert.Equal(t, 950.0, quote.Net)
}

func TestPriceRoundsConsistently(t *testing.T) {
	// Net must always equal gross minus discount after rounding, no
	// matter how awkward the inputs.
	cases := []struct {
		rate float64
		pct  float64
		qty  int
	}{
		{3333.33, 7.5, 3},
		{999.99, 12.5, 2},
		{10.01, 33.33, 7},
	}
	for _, c := range cases {
		quote := Price(c.rate, c.pct, c.qty)
		assert.InDelta(t, quote.Gross-quote.Discount, quote.Net, 0.01)
		assert.Equal(t, Round2(quote.Net), quote.Net)
	}
}

func TestCabinRate(t *testing.T) {
	business := 12000.0
	flight := &models.FlightInventory{
		EconomyPrice:  4000,
		BusinessPrice: &business,
	}
	assert.Equal(t, 4000.0, CabinRate(flight, types.CABIN_ECONOMY))
	assert.Equal(t, 12000.0, CabinRate(flight, types.CABIN_BUSINESS))
	// Cabins with no published price fall back to economy.
	assert.Equal(t, 4000.0, CabinRate(flight, types.CABIN_FIRST))
	assert.Equal(t, 4000.0, CabinRate(flight, types.CABIN_PREMIUM_ECONOMY))
}

func TestNormalizeCabin(t *testing.T) {
	assert.Equal(t, types.CABIN_BUSINESS, NormalizeCabin("business"))
	assert.Equal(t, types.CABIN_ECONOMY, NormalizeCabin(""))
	assert.Equal(t, types.CABIN_ECONOMY, NormalizeCabin("sleeper"))
}

func TestStayTotal(t *testing.T) {
	date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	rows := []*models.HotelRoomInventory{
		{Date: date, DiscountedPrice: 3200.50},
		{Date: date.AddDate(0, 0, 1), DiscountedPrice: 3400.25},
		{Date: date.AddDate(0, 0, 2), DiscountedPrice: 2999.99},
	}
	total, perNight := StayTotal(rows)
	assert.Equal(t, 9600.74, total)
	assert.Equal(t, 3200.25, perNight)

	total, perNight = StayTotal(nil)
	assert.Equal(t, 0.0, total)
	assert.Equal(t, 0.0, perNight)
}
