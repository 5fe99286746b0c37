package services

import (
	"ctms/src/fare"
	"ctms/src/models"
	"ctms/src/types"
	"ctms/src/utils"
	"errors"
	"log"
	"sort"
	"time"

	"gorm.io/gorm"
)

// HotelService searches the per-night room inventory and books stays for
// approved TRFs. A stay holds one room row per night; all nights commit
// together or not at all.
type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(handle *gorm.DB) *HotelService {
	return &HotelService{DB: handle}
}

// HotelOption is one priced search result covering the whole stay.
type HotelOption struct {
	HotelID      uint    `json:"hotel_id"`
	Name         string  `json:"name"`
	Chain        string  `json:"chain,omitempty"`
	City         string  `json:"city"`
	Rating       int     `json:"rating"`
	RoomType     string  `json:"room_type"`
	Nights       int     `json:"nights"`
	PerNightRate float64 `json:"per_night_rate"`
	TotalCost    float64 `json:"total_cost"`
	Amenities    any     `json:"amenities,omitempty"`
}

// Search lists hotels in the city that can cover every night of the stay,
// cheapest total first. A hotel missing availability for even one night is
// excluded.
func (s *HotelService) Search(city string, checkIn, checkOut time.Time, minRating, maxResults int) ([]HotelOption, error) {
	if !checkOut.After(checkIn) {
		return nil, types.NewAppError(types.INVALID_DATE_RANGE, "check-out must be after check-in")
	}
	if maxResults <= 0 {
		maxResults = defaultSearchResults
	}

	query := s.DB.
		Model(&models.Hotel{}).
		Where("city = ? AND is_active = ?", city, true)
	if minRating > 0 {
		query = query.Where("rating >= ?", minRating)
	}
	var hotels []models.Hotel
	if err := query.Find(&hotels).Error; err != nil {
		return nil, types.WrapSystemError(err)
	}

	options := make([]HotelOption, 0, len(hotels))
	for i := range hotels {
		rows, err := cheapestRoomsForStay(s.DB, hotels[i].ID, checkIn, checkOut)
		if err != nil {
			if types.CodeOf(err) == types.NO_ROOMS {
				continue
			}
			return nil, types.WrapSystemError(err)
		}
		total, perNight := fare.StayTotal(rows)
		options = append(options, HotelOption{
			HotelID:      hotels[i].ID,
			Name:         hotels[i].Name,
			Chain:        hotels[i].Chain,
			City:         hotels[i].City,
			Rating:       hotels[i].Rating,
			RoomType:     rows[0].RoomType,
			Nights:       len(rows),
			PerNightRate: perNight,
			TotalCost:    total,
			Amenities:    hotels[i].Amenities,
		})
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].TotalCost < options[j].TotalCost
	})
	if len(options) > maxResults {
		options = options[:maxResults]
	}
	return options, nil
}

// Confirm books the cheapest room for every night of the stay inside one
// transaction. Each night's row is reserved with a compare-and-set flip;
// losing any flip rolls back the nights already taken.
func (s *HotelService) Confirm(body *types.ConfirmHotelRequestBody) (*models.HotelBooking, error) {
	checkIn, err := utils.ParseDate(body.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := utils.ParseDate(body.CheckOut)
	if err != nil {
		return nil, err
	}
	if !checkOut.After(checkIn) {
		return nil, types.NewAppError(types.INVALID_DATE_RANGE, "check-out must be after check-in")
	}
	guests := body.Guests
	if guests < 1 {
		guests = 1
	}

	var booking models.HotelBooking
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		trf, err := trfForBooking(tx, body.TRFNumber)
		if err != nil {
			return err
		}

		var hotel models.Hotel
		err = tx.
			Model(&models.Hotel{}).
			Where("id = ? AND is_active = ?", body.HotelID, true).
			First(&hotel).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewAppError(types.NO_HOTELS, "hotel %d not found", body.HotelID)
			}
			return err
		}

		rows, err := cheapestRoomsForStay(tx, hotel.ID, checkIn, checkOut)
		if err != nil {
			return err
		}
		total, perNight := fare.StayTotal(rows)

		ledger, err := activeTravelBooking(tx, trf)
		if err != nil {
			return err
		}

		for _, row := range rows {
			res := tx.
				Model(&models.HotelRoomInventory{}).
				Where("id = ? AND is_available = ?", row.ID, true).
				Update("is_available", false)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return types.NewAppError(types.NO_ROOMS, "%s has no rooms left for %s", hotel.Name, row.Date.Format("2006-01-02"))
			}
		}

		booking = models.HotelBooking{
			ConfirmationNumber: utils.GenerateHotelConfirmation(hotel.ID),
			TravelBookingID:    ledger.ID,
			RoomID:             rows[0].ID,
			GuestName:          trf.EmployeeName,
			CheckInDate:        checkIn,
			CheckOutDate:       checkOut,
			NumberOfNights:     len(rows),
			NumberOfGuests:     guests,
			PerNightRate:       perNight,
			TotalRoomCost:      total,
			FinalCost:          total,
			Status:             types.BOOKING_CONFIRMED,
			SpecialRequests:    body.SpecialRequests,
			BookedAt:           time.Now(),
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		if err := rollupBookingCosts(tx, ledger, 0, total); err != nil {
			return err
		}
		return advanceToProcessing(tx, trf)
	})
	if err != nil {
		return nil, types.WrapSystemError(err)
	}
	log.Printf("confirmed hotel %d for TRF %s, confirmation %s", body.HotelID, body.TRFNumber, booking.ConfirmationNumber)
	return &booking, nil
}

// Calendar reports, per day, whether any hotel in the city has an available
// room and the lowest nightly rate.
func (s *HotelService) Calendar(city string, start time.Time, days int) ([]CalendarDay, error) {
	if days <= 0 {
		days = 7
	}
	if days > maxCalendarDays {
		days = maxCalendarDays
	}

	var hotelIDs []uint
	err := s.DB.
		Model(&models.Hotel{}).
		Where("city = ? AND is_active = ?", city, true).
		Pluck("id", &hotelIDs).
		Error
	if err != nil {
		return nil, types.WrapSystemError(err)
	}

	calendar := make([]CalendarDay, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		day := CalendarDay{Date: date.Format("2006-01-02")}
		if len(hotelIDs) > 0 {
			var row models.HotelRoomInventory
			err := s.DB.
				Model(&models.HotelRoomInventory{}).
				Where("hotel_id IN ? AND date = ? AND is_available = ?", hotelIDs, date, true).
				Order("discounted_price ASC").
				First(&row).
				Error
			if err == nil {
				day.Available = true
				day.LowestPrice = row.DiscountedPrice
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, types.WrapSystemError(err)
			}
		}
		calendar = append(calendar, day)
	}
	return calendar, nil
}

// cheapestRoomsForStay picks the cheapest available room row for each night
// of [checkIn, checkOut). A night with no availability fails the whole
// stay with NO_ROOMS.
func cheapestRoomsForStay(tx *gorm.DB, hotelID uint, checkIn, checkOut time.Time) ([]*models.HotelRoomInventory, error) {
	nights := utils.Nights(checkIn, checkOut)
	rows := make([]*models.HotelRoomInventory, 0, nights)
	for i := 0; i < nights; i++ {
		date := checkIn.AddDate(0, 0, i)
		var row models.HotelRoomInventory
		err := tx.
			Model(&models.HotelRoomInventory{}).
			Where("hotel_id = ? AND date = ? AND is_available = ?", hotelID, date, true).
			Order("discounted_price ASC").
			First(&row).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, types.NewAppError(types.NO_ROOMS, "no rooms available on %s", date.Format("2006-01-02"))
			}
			return nil, err
		}
		rows = append(rows, &row)
	}
	return rows, nil
}
