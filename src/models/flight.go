package models

import (
	"ctms/src/types"
	"time"
)

// FlightInventory is one bookable leg. Rows are created by external
// inventory generation and only ever flip is_available, never delete.
type FlightInventory struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	AirlineID    uint   `json:"airline_id"`
	FlightNumber string `gorm:"index;size:20" json:"flight_number"`

	OriginCode      string `gorm:"index;size:10" json:"origin_code"`
	DestinationCode string `gorm:"index;size:10" json:"destination_code"`
	OriginCity      string `gorm:"size:100" json:"origin_city"`
	DestinationCity string `gorm:"size:100" json:"destination_city"`

	DepartureDate   time.Time `gorm:"type:date;index" json:"departure_date"`
	DepartureTime   string    `gorm:"size:8" json:"departure_time"`
	ArrivalDate     time.Time `gorm:"type:date" json:"arrival_date"`
	ArrivalTime     string    `gorm:"size:8" json:"arrival_time"`
	DurationMinutes int       `json:"duration_minutes"`

	EconomyPrice        float64  `json:"economy_price"`
	PremiumEconomyPrice *float64 `json:"premium_economy_price,omitempty"`
	BusinessPrice       *float64 `json:"business_price,omitempty"`
	FirstPrice          *float64 `json:"first_price,omitempty"`

	IsDirect               bool   `gorm:"default:true" json:"is_direct"`
	LayoverCity            string `gorm:"size:100" json:"layover_city,omitempty"`
	LayoverDurationMinutes int    `json:"layover_duration_minutes,omitempty"`

	IsAvailable bool `gorm:"default:true;index" json:"is_available"`

	Airline        Airline          `json:"airline,omitempty"`
	FlightBookings []*FlightBooking `gorm:"foreignKey:FlightID" json:"flight_bookings,omitempty"`

	types.Timestamps
}
