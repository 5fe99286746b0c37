package services

import (
	"ctms/src/fare"
	"ctms/src/models"
	"ctms/src/types"
	"ctms/src/utils"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	defaultSearchResults = 5
	maxCalendarDays      = 14
)

// FlightService searches the flight inventory and reserves seats for
// approved TRFs.
type FlightService struct {
	DB *gorm.DB
}

func NewFlightService(handle *gorm.DB) *FlightService {
	return &FlightService{DB: handle}
}

// FlightOption is one priced search result. Fares already include the
// airline's corporate discount.
type FlightOption struct {
	FlightID        uint             `json:"flight_id"`
	AirlineCode     string           `json:"airline_code"`
	AirlineName     string           `json:"airline_name"`
	FlightNumber    string           `json:"flight_number"`
	OriginCity      string           `json:"origin_city"`
	DestinationCity string           `json:"destination_city"`
	DepartureDate   string           `json:"departure_date"`
	DepartureTime   string           `json:"departure_time"`
	ArrivalTime     string           `json:"arrival_time"`
	DurationMinutes int              `json:"duration_minutes"`
	IsDirect        bool             `json:"is_direct"`
	CabinClass      types.CabinClass `json:"cabin_class"`
	BaseFare        float64          `json:"base_fare"`
	Discount        float64          `json:"discount"`
	FinalFare       float64          `json:"final_fare"`
}

// CalendarDay is one cell of the availability calendar shared by flight and
// hotel scans.
type CalendarDay struct {
	Date        string  `json:"date"`
	Available   bool    `json:"available"`
	LowestPrice float64 `json:"lowest_price,omitempty"`
}

// Search lists available flights on the route and date, cheapest first.
func (s *FlightService) Search(origin, destination string, date time.Time, cabin types.CabinClass, maxResults int) ([]FlightOption, error) {
	if maxResults <= 0 {
		maxResults = defaultSearchResults
	}
	var flights []models.FlightInventory
	err := s.DB.
		Model(&models.FlightInventory{}).
		Where("LOWER(origin_city) = ? AND LOWER(destination_city) = ? AND departure_date = ? AND is_available = ?",
			strings.ToLower(origin), strings.ToLower(destination), date, true).
		Preload("Airline").
		Find(&flights).
		Error
	if err != nil {
		return nil, types.WrapSystemError(err)
	}
	options := make([]FlightOption, 0, len(flights))
	for i := range flights {
		options = append(options, priceFlight(&flights[i], cabin, 1))
	}
	sortOptionsByFare(options)
	if len(options) > maxResults {
		options = options[:maxResults]
	}
	return options, nil
}

// Confirm books one flight against the TRF: it prices the fare, reserves
// the seat with a compare-and-set flip on is_available, and appends the
// result to the TRF's booking ledger. A lost flip aborts the transaction.
func (s *FlightService) Confirm(body *types.ConfirmFlightRequestBody) (*models.FlightBooking, error) {
	passengers := body.Passengers
	if passengers < 1 {
		passengers = 1
	}
	cabin := fare.NormalizeCabin(body.CabinClass)

	var booking models.FlightBooking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		trf, err := trfForBooking(tx, body.TRFNumber)
		if err != nil {
			return err
		}

		var flight models.FlightInventory
		err = tx.
			Model(&models.FlightInventory{}).
			Where("id = ?", body.FlightID).
			Preload("Airline").
			First(&flight).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NewAppError(types.NO_FLIGHTS, "flight %d not found", body.FlightID)
			}
			return err
		}
		if !flight.IsAvailable {
			return types.NewAppError(types.NO_FLIGHTS, "flight %s is no longer available", flight.FlightNumber)
		}
		if !strings.EqualFold(flight.OriginCity, trf.OriginCity) ||
			!strings.EqualFold(flight.DestinationCity, trf.DestinationCity) {
			return types.NewAppError(types.INVALID_STATUS, "flight %s does not match the TRF route %s to %s", flight.FlightNumber, trf.OriginCity, trf.DestinationCity)
		}
		if !utils.SameDay(flight.DepartureDate, trf.DepartureDate) {
			return types.NewAppError(types.INVALID_DATE_RANGE, "flight %s departs outside the TRF travel date", flight.FlightNumber)
		}

		quote := fare.Price(fare.CabinRate(&flight, cabin), flight.Airline.CorporateDiscount, passengers)

		ledger, err := activeTravelBooking(tx, trf)
		if err != nil {
			return err
		}

		res := tx.
			Model(&models.FlightInventory{}).
			Where("id = ? AND is_available = ?", flight.ID, true).
			Update("is_available", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return types.NewAppError(types.NO_FLIGHTS, "flight %s was booked concurrently", flight.FlightNumber)
		}

		booking = models.FlightBooking{
			PNR:             utils.GeneratePNR(flight.ID),
			TravelBookingID: ledger.ID,
			FlightID:        flight.ID,
			CabinClass:      cabin,
			PassengerName:   trf.EmployeeName,
			Passengers:      passengers,
			BaseFare:        quote.Gross,
			DiscountApplied: quote.Discount,
			FinalFare:       quote.Net,
			Status:          types.BOOKING_CONFIRMED,
			BookedAt:        time.Now(),
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		if err := rollupBookingCosts(tx, ledger, quote.Net, 0); err != nil {
			return err
		}
		return advanceToProcessing(tx, trf)
	})
	if err != nil {
		return nil, types.WrapSystemError(err)
	}
	log.Printf("confirmed flight %d for TRF %s, PNR %s", booking.FlightID, body.TRFNumber, booking.PNR)
	return &booking, nil
}

// Calendar scans day by day from start and reports the cheapest available
// fare per day. Days is clamped to the two-week window.
func (s *FlightService) Calendar(origin, destination string, start time.Time, days int, cabin types.CabinClass) ([]CalendarDay, error) {
	if days <= 0 {
		days = 7
	}
	if days > maxCalendarDays {
		days = maxCalendarDays
	}
	calendar := make([]CalendarDay, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		options, err := s.Search(origin, destination, date, cabin, 1)
		if err != nil {
			return nil, err
		}
		day := CalendarDay{Date: date.Format("2006-01-02")}
		if len(options) > 0 {
			day.Available = true
			day.LowestPrice = options[0].FinalFare
		}
		calendar = append(calendar, day)
	}
	return calendar, nil
}

func priceFlight(flight *models.FlightInventory, cabin types.CabinClass, passengers int) FlightOption {
	quote := fare.Price(fare.CabinRate(flight, cabin), flight.Airline.CorporateDiscount, passengers)
	return FlightOption{
		FlightID:        flight.ID,
		AirlineCode:     flight.Airline.Code,
		AirlineName:     flight.Airline.Name,
		FlightNumber:    flight.FlightNumber,
		OriginCity:      flight.OriginCity,
		DestinationCity: flight.DestinationCity,
		DepartureDate:   flight.DepartureDate.Format("2006-01-02"),
		DepartureTime:   flight.DepartureTime,
		ArrivalTime:     flight.ArrivalTime,
		DurationMinutes: flight.DurationMinutes,
		IsDirect:        flight.IsDirect,
		CabinClass:      cabin,
		BaseFare:        quote.Gross,
		Discount:        quote.Discount,
		FinalFare:       quote.Net,
	}
}

func sortOptionsByFare(options []FlightOption) {
	sort.Slice(options, func(i, j int) bool {
		return options[i].FinalFare < options[j].FinalFare
	})
}
