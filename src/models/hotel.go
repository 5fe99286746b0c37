package models

import (
	"ctms/src/types"
	"time"

	"gorm.io/datatypes"
)

type Hotel struct {
	ID     uint   `gorm:"primarykey" json:"id"`
	Name   string `gorm:"size:200" json:"name"`
	Chain  string `gorm:"size:100" json:"chain,omitempty"`
	Rating int    `json:"rating,omitempty"`

	City    string `gorm:"index;size:100" json:"city"`
	Country string `gorm:"size:100" json:"country"`
	Address string `gorm:"type:text" json:"address,omitempty"`

	CityTierMultiplier float64 `gorm:"default:1" json:"city_tier_multiplier"`
	CorporateDiscount  float64 `gorm:"default:0" json:"corporate_discount"`

	Amenities datatypes.JSON `json:"amenities,omitempty"`
	Tags      datatypes.JSON `json:"tags,omitempty"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	RoomInventory []*HotelRoomInventory `gorm:"foreignKey:HotelID" json:"room_inventory,omitempty"`

	types.Timestamps
}

// HotelRoomInventory is one room for one calendar night. A stay of N nights
// consumes N rows, each flipped independently.
type HotelRoomInventory struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	HotelID   uint   `gorm:"index" json:"hotel_id"`
	RoomType  string `gorm:"size:100" json:"room_type"`
	Occupancy int    `gorm:"default:2" json:"occupancy"`

	Date            time.Time `gorm:"type:date;index" json:"date"`
	BasePrice       float64   `json:"base_price"`
	DiscountedPrice float64   `json:"discounted_price"`

	IsAvailable bool `gorm:"default:true;index" json:"is_available"`

	RoomAmenities datatypes.JSON `json:"room_amenities,omitempty"`

	Hotel         Hotel           `json:"hotel,omitempty"`
	HotelBookings []*HotelBooking `gorm:"foreignKey:RoomID" json:"hotel_bookings,omitempty"`

	types.Timestamps
}
