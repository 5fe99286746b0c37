package utils

import (
	"ctms/src/types"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTRFNumbers(t *testing.T) {
	number := NextTRFNumber(2026, 7)
	assert.Equal(t, "DRAFT-TRF202600007", number)
	assert.True(t, IsDraftNumber(number))

	submitted := SubmittedTRFNumber(number)
	assert.Equal(t, "TRF202600007", submitted)
	assert.False(t, IsDraftNumber(submitted))

	// Stripping twice is harmless.
	assert.Equal(t, submitted, SubmittedTRFNumber(submitted))
}

func TestGenerateBookingNumber(t *testing.T) {
	number := GenerateBookingNumber(42)
	assert.True(t, strings.HasPrefix(number, "TB"))
	assert.True(t, strings.HasSuffix(number, "42"))
	assert.Len(t, number, 2+14+2)
}

func TestGeneratePNR(t *testing.T) {
	pnr := GeneratePNR(15)
	assert.True(t, strings.HasPrefix(pnr, "PNR"))
	assert.True(t, strings.HasSuffix(pnr, "15"))
	assert.Equal(t, strings.ToUpper(pnr), pnr)
	assert.NotEqual(t, pnr, GeneratePNR(15))
}

func TestGenerateHotelConfirmation(t *testing.T) {
	conf := GenerateHotelConfirmation(3)
	assert.True(t, strings.HasPrefix(conf, "HB"))
	assert.True(t, strings.HasSuffix(conf, "3"))
	assert.NotEqual(t, conf, GenerateHotelConfirmation(3))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-10-15")
	assert.Nil(t, err)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), parsed)

	for _, bad := range []string{"15-10-2026", "2026/10/15", "2026-13-01", "yesterday", ""} {
		_, err := ParseDate(bad)
		assert.NotNil(t, err)
		assert.Equal(t, types.INVALID_DATE_FORMAT, types.CodeOf(err))
	}
}

func TestNights(t *testing.T) {
	checkIn := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, Nights(checkIn, checkIn.AddDate(0, 0, 1)))
	assert.Equal(t, 4, Nights(checkIn, checkIn.AddDate(0, 0, 4)))
	assert.Equal(t, 0, Nights(checkIn, checkIn))
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	night := time.Date(2026, 10, 1, 23, 30, 0, 0, time.UTC)
	assert.True(t, SameDay(morning, night))
	assert.False(t, SameDay(morning, morning.AddDate(0, 0, 1)))
}
