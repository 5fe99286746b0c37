package models

import "ctms/src/types"

type Airline struct {
	ID                uint    `gorm:"primarykey" json:"id"`
	Code              string  `gorm:"uniqueIndex;size:10" json:"code"`
	Name              string  `gorm:"size:200" json:"name"`
	Country           string  `gorm:"size:100" json:"country,omitempty"`
	IsPreferred       bool    `gorm:"default:false" json:"is_preferred"`
	CorporateDiscount float64 `gorm:"default:0" json:"corporate_discount"`
	IsActive          bool    `gorm:"default:true" json:"is_active"`

	Flights []*FlightInventory `json:"flights,omitempty"`

	types.Timestamps
}
