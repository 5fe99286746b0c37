package models

import (
	"ctms/src/types"
	"time"
)

// TravelBooking aggregates the travel desk's confirmations for one TRF and
// rolls up their costs. Successive confirmations append to the latest
// pending/confirmed row instead of opening a new one.
type TravelBooking struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	BookingNumber string `gorm:"uniqueIndex;size:50" json:"booking_number"`
	TRFID         uint   `gorm:"column:trf_id;index" json:"trf_id"`

	TravelerName       string `gorm:"size:200" json:"traveler_name"`
	TravelerEmail      string `gorm:"size:200" json:"traveler_email"`
	TravelerPhone      string `gorm:"size:20" json:"traveler_phone,omitempty"`
	TravelerEmployeeID string `gorm:"size:50" json:"traveler_employee_id,omitempty"`

	TravelDeskAgentName  string `gorm:"size:200" json:"travel_desk_agent_name,omitempty"`
	TravelDeskAgentEmail string `gorm:"size:200" json:"travel_desk_agent_email,omitempty"`

	Status types.BookingStatus `gorm:"size:20;default:'pending'" json:"status"`

	TotalFlightCost float64 `gorm:"default:0" json:"total_flight_cost"`
	TotalHotelCost  float64 `gorm:"default:0" json:"total_hotel_cost"`
	TotalCost       float64 `gorm:"default:0" json:"total_cost"`

	BookingDate      time.Time  `gorm:"autoCreateTime" json:"booking_date"`
	ConfirmationDate *time.Time `json:"confirmation_date,omitempty"`
	Notes            string     `gorm:"type:text" json:"notes,omitempty"`

	TRF            *TravelRequisitionForm `gorm:"foreignKey:TRFID" json:"trf,omitempty"`
	FlightBookings []*FlightBooking       `json:"flight_bookings,omitempty"`
	HotelBookings  []*HotelBooking        `json:"hotel_bookings,omitempty"`

	types.Timestamps
}

type FlightBooking struct {
	ID  uint   `gorm:"primarykey" json:"id"`
	PNR string `gorm:"uniqueIndex;size:20" json:"pnr"`

	TravelBookingID uint `gorm:"index" json:"travel_booking_id"`
	FlightID        uint `gorm:"index" json:"flight_id"`

	CabinClass    types.CabinClass `gorm:"size:20" json:"cabin_class"`
	PassengerName string           `gorm:"size:200" json:"passenger_name"`
	Passengers    int              `gorm:"default:1" json:"passengers"`
	SeatNumber    string           `gorm:"size:10" json:"seat_number,omitempty"`

	BaseFare        float64 `json:"base_fare"`
	Taxes           float64 `gorm:"default:0" json:"taxes"`
	DiscountApplied float64 `gorm:"default:0" json:"discount_applied"`
	FinalFare       float64 `json:"final_fare"`

	Status   types.BookingStatus `gorm:"size:20;default:'confirmed'" json:"status"`
	BookedAt time.Time           `gorm:"autoCreateTime" json:"booked_at"`

	TravelBooking *TravelBooking   `json:"travel_booking,omitempty"`
	Flight        *FlightInventory `gorm:"foreignKey:FlightID" json:"flight,omitempty"`

	types.Timestamps
}

// HotelBooking references the first night's inventory row; the remaining
// rows of the stay are consumed by the same transaction but tracked only as
// flipped availability.
type HotelBooking struct {
	ID                 uint   `gorm:"primarykey" json:"id"`
	ConfirmationNumber string `gorm:"uniqueIndex;size:50" json:"confirmation_number"`

	TravelBookingID uint `gorm:"index" json:"travel_booking_id"`
	RoomID          uint `gorm:"index" json:"room_id"`

	GuestName      string    `gorm:"size:200" json:"guest_name"`
	CheckInDate    time.Time `gorm:"type:date" json:"check_in_date"`
	CheckOutDate   time.Time `gorm:"type:date" json:"check_out_date"`
	NumberOfNights int       `json:"number_of_nights"`
	NumberOfGuests int       `gorm:"default:1" json:"number_of_guests"`

	PerNightRate    float64 `json:"per_night_rate"`
	TotalRoomCost   float64 `json:"total_room_cost"`
	DiscountApplied float64 `gorm:"default:0" json:"discount_applied"`
	Taxes           float64 `gorm:"default:0" json:"taxes"`
	FinalCost       float64 `json:"final_cost"`

	Status          types.BookingStatus `gorm:"size:20;default:'confirmed'" json:"status"`
	SpecialRequests string              `gorm:"type:text" json:"special_requests,omitempty"`
	BookedAt        time.Time           `gorm:"autoCreateTime" json:"booked_at"`

	TravelBooking *TravelBooking      `json:"travel_booking,omitempty"`
	Room          *HotelRoomInventory `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	types.Timestamps
}
