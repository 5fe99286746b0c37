package models

import (
	"ctms/src/types"
	"time"
)

type TravelRequisitionForm struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	TRFNumber string `gorm:"column:trf_number;uniqueIndex;size:50" json:"trf_number"`

	// Employee snapshot, embedded with no foreign key.
	EmployeeID          string `gorm:"index;size:50" json:"employee_id"`
	EmployeeName        string `gorm:"size:200" json:"employee_name"`
	EmployeeEmail       string `gorm:"size:200" json:"employee_email"`
	EmployeePhone       string `gorm:"size:20" json:"employee_phone,omitempty"`
	EmployeeDepartment  string `gorm:"size:100" json:"employee_department,omitempty"`
	EmployeeDesignation string `gorm:"size:100" json:"employee_designation,omitempty"`
	EmployeeLocation    string `gorm:"size:100" json:"employee_location,omitempty"`

	IRMName  string `gorm:"size:200" json:"irm_name,omitempty"`
	IRMEmail string `gorm:"size:200" json:"irm_email,omitempty"`
	SRMName  string `gorm:"size:200" json:"srm_name,omitempty"`
	SRMEmail string `gorm:"size:200" json:"srm_email,omitempty"`

	TravelType      types.TravelType `gorm:"size:20" json:"travel_type"`
	Purpose         string           `gorm:"type:text" json:"purpose"`
	OriginCity      string           `gorm:"size:100" json:"origin_city"`
	DestinationCity string           `gorm:"size:100" json:"destination_city"`
	DepartureDate   time.Time        `gorm:"type:date" json:"departure_date"`
	ReturnDate      *time.Time       `gorm:"type:date" json:"return_date,omitempty"`
	EstimatedCost   *float64         `json:"estimated_cost,omitempty"`

	Status types.TRFStatus `gorm:"size:30;default:'draft';index" json:"status"`

	RejectionReason string     `gorm:"type:text" json:"rejection_reason,omitempty"`
	RejectedBy      string     `gorm:"size:50" json:"rejected_by,omitempty"`
	FinalApprovedAt *time.Time `json:"final_approved_at,omitempty"`

	Approvals      []*TRFApproval   `gorm:"foreignKey:TRFID" json:"approvals,omitempty"`
	TravelBookings []*TravelBooking `gorm:"foreignKey:TRFID" json:"travel_bookings,omitempty"`

	types.Timestamps
}

// TRFApproval is one signed step of the chain. A TRF holds at most one row
// per level; the level still owed is implied by the TRF status.
type TRFApproval struct {
	ID         uint                `gorm:"primarykey" json:"id"`
	TRFID      uint                `gorm:"column:trf_id;uniqueIndex:idx_trf_level" json:"trf_id"`
	Level      types.ApprovalLevel `gorm:"size:20;uniqueIndex:idx_trf_level" json:"level"`
	ApprovedAt time.Time           `json:"approved_at"`
	Comments   string              `gorm:"type:text" json:"comments,omitempty"`

	types.Timestamps
}
