package services

import (
	"ctms/src/fare"
	"ctms/src/models"
	"ctms/src/types"
	"ctms/src/utils"
	"errors"
	"time"

	"gorm.io/gorm"
)

// activeTravelBooking returns the latest reusable TravelBooking ledger row
// for the TRF, creating one when none is open. Cancelled ledgers are never
// reused.
func activeTravelBooking(tx *gorm.DB, trf *models.TravelRequisitionForm) (*models.TravelBooking, error) {
	var booking models.TravelBooking
	err := tx.
		Model(&models.TravelBooking{}).
		Where("trf_id = ? AND status IN ?", trf.ID, []types.BookingStatus{types.BOOKING_PENDING, types.BOOKING_CONFIRMED}).
		Order("booking_date DESC").
		First(&booking).
		Error
	if err == nil {
		return &booking, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	booking = models.TravelBooking{
		BookingNumber:      utils.GenerateBookingNumber(trf.ID),
		TRFID:              trf.ID,
		TravelerName:       trf.EmployeeName,
		TravelerEmail:      trf.EmployeeEmail,
		TravelerPhone:      trf.EmployeePhone,
		TravelerEmployeeID: trf.EmployeeID,
		Status:             types.BOOKING_PENDING,
	}
	if err := tx.Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// rollupBookingCosts re-derives the ledger totals after a confirmation was
// appended and marks the ledger confirmed.
func rollupBookingCosts(tx *gorm.DB, booking *models.TravelBooking, flightDelta, hotelDelta float64) error {
	now := time.Now()
	booking.TotalFlightCost = fare.Round2(booking.TotalFlightCost + flightDelta)
	booking.TotalHotelCost = fare.Round2(booking.TotalHotelCost + hotelDelta)
	booking.TotalCost = fare.Round2(booking.TotalFlightCost + booking.TotalHotelCost)
	booking.Status = types.BOOKING_CONFIRMED
	booking.ConfirmationDate = &now
	return tx.
		Model(&models.TravelBooking{}).
		Where("id = ?", booking.ID).
		Updates(map[string]any{
			"total_flight_cost": booking.TotalFlightCost,
			"total_hotel_cost":  booking.TotalHotelCost,
			"total_cost":        booking.TotalCost,
			"status":            booking.Status,
			"confirmation_date": booking.ConfirmationDate,
		}).
		Error
}

// trfForBooking loads a TRF by number and checks it is in a state the
// travel desk may book against.
func trfForBooking(tx *gorm.DB, trfNumber string) (*models.TravelRequisitionForm, error) {
	var trf models.TravelRequisitionForm
	err := tx.
		Model(&models.TravelRequisitionForm{}).
		Where("trf_number = ?", trfNumber).
		First(&trf).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewAppError(types.TRF_NOT_FOUND, "TRF %s not found", trfNumber)
		}
		return nil, err
	}
	if trf.Status != types.TRF_APPROVED && trf.Status != types.TRF_PROCESSING {
		return nil, types.NewAppError(types.INVALID_STATUS, "TRF %s is %s, bookings require an approved TRF", trfNumber, trf.Status)
	}
	return &trf, nil
}

// advanceToProcessing moves a freshly approved TRF into processing once the
// first confirmation lands. Losing the compare-and-set race is fine here: it
// means a concurrent confirmation already advanced the TRF.
func advanceToProcessing(tx *gorm.DB, trf *models.TravelRequisitionForm) error {
	if trf.Status != types.TRF_APPROVED {
		return nil
	}
	err := tx.
		Model(&models.TravelRequisitionForm{}).
		Where("id = ? AND status = ?", trf.ID, types.TRF_APPROVED).
		Update("status", types.TRF_PROCESSING).
		Error
	if err != nil {
		return err
	}
	trf.Status = types.TRF_PROCESSING
	return nil
}
