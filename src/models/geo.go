package models

import "ctms/src/types"

// City and Airport are reference data written by inventory generation,
// which lives outside this service. They are migrated here so a fresh
// database accepts seed rows.
type City struct {
	ID             uint    `gorm:"primarykey" json:"id"`
	City           string  `gorm:"uniqueIndex;size:100" json:"city"`
	Country        string  `gorm:"size:100" json:"country"`
	Currency       string  `gorm:"size:10" json:"currency"`
	TierMultiplier float64 `gorm:"default:1" json:"tier_multiplier"`

	types.Timestamps
}

type Airport struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Code     string `gorm:"uniqueIndex;size:10" json:"code"`
	City     string `gorm:"index;size:100" json:"city"`
	Country  string `gorm:"size:100" json:"country"`
	Timezone string `gorm:"size:50" json:"timezone,omitempty"`

	types.Timestamps
}
