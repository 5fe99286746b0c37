package utils

import (
	"fmt"
	"strings"
	"time"

	"ctms/src/config"
	"ctms/src/types"

	"github.com/google/uuid"
)

const draftPrefix = "DRAFT-"

// NextTRFNumber builds the draft number for the n-th TRF of the year.
// Submission strips the draft marker via SubmittedTRFNumber.
func NextTRFNumber(year int, seq int64) string {
	return fmt.Sprintf("%sTRF%d%05d", draftPrefix, year, seq)
}

func SubmittedTRFNumber(draftNumber string) string {
	return strings.Replace(draftNumber, draftPrefix, "", 1)
}

func IsDraftNumber(number string) bool {
	return strings.HasPrefix(number, draftPrefix)
}

// Booking references follow the shapes the travel desk already prints on
// itineraries. A TRF reuses its active TravelBooking, so the timestamp+id
// booking number cannot collide; PNRs and hotel confirmations carry a uuid
// fragment instead since the same flight or hotel id can recur.
func GenerateBookingNumber(trfID uint) string {
	return fmt.Sprintf("TB%s%d", time.Now().UTC().Format("20060102150405"), trfID)
}

func GeneratePNR(flightID uint) string {
	return fmt.Sprintf("PNR%s%s", strings.ToUpper(uuid.NewString()[:8]), fmt.Sprint(flightID))
}

func GenerateHotelConfirmation(hotelID uint) string {
	return fmt.Sprintf("HB%s%s", strings.ToUpper(uuid.NewString()[:8]), fmt.Sprint(hotelID))
}

// ParseDate parses a strict YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(config.DATE_PARSE_FORMAT, value)
	if err != nil {
		return time.Time{}, types.NewAppError(types.INVALID_DATE_FORMAT, "invalid date format, use YYYY-MM-DD: %q", value)
	}
	return parsed, nil
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Nights counts the room-nights in [checkIn, checkOut).
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}
