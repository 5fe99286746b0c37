package types

import (
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type TravelType string

const (
	TRAVEL_DOMESTIC      TravelType = "domestic"
	TRAVEL_INTERNATIONAL TravelType = "international"
)

type TRFStatus string

const (
	TRF_DRAFT               TRFStatus = "draft"
	TRF_PENDING_IRM         TRFStatus = "pending_irm"
	TRF_PENDING_SRM         TRFStatus = "pending_srm"
	TRF_PENDING_BUH         TRFStatus = "pending_buh"
	TRF_PENDING_SSUH        TRFStatus = "pending_ssuh"
	TRF_PENDING_BGH         TRFStatus = "pending_bgh"
	TRF_PENDING_SSGH        TRFStatus = "pending_ssgh"
	TRF_PENDING_CFO         TRFStatus = "pending_cfo"
	TRF_PENDING_TRAVEL_DESK TRFStatus = "pending_travel_desk"
	TRF_APPROVED            TRFStatus = "approved"
	TRF_REJECTED            TRFStatus = "rejected"
	TRF_PROCESSING          TRFStatus = "processing"
	TRF_COMPLETED           TRFStatus = "completed"
)

type BookingStatus string

const (
	BOOKING_PENDING   BookingStatus = "pending"
	BOOKING_CONFIRMED BookingStatus = "confirmed"
	BOOKING_CANCELLED BookingStatus = "cancelled"
	BOOKING_COMPLETED BookingStatus = "completed"
)

type CabinClass string

const (
	CABIN_ECONOMY         CabinClass = "economy"
	CABIN_PREMIUM_ECONOMY CabinClass = "premium_economy"
	CABIN_BUSINESS        CabinClass = "business"
	CABIN_FIRST           CabinClass = "first"
)

type ApprovalLevel string

const (
	LEVEL_IRM         ApprovalLevel = "irm"
	LEVEL_SRM         ApprovalLevel = "srm"
	LEVEL_BUH         ApprovalLevel = "buh"
	LEVEL_SSUH        ApprovalLevel = "ssuh"
	LEVEL_BGH         ApprovalLevel = "bgh"
	LEVEL_SSGH        ApprovalLevel = "ssgh"
	LEVEL_CFO         ApprovalLevel = "cfo"
	LEVEL_TRAVEL_DESK ApprovalLevel = "travel_desk"
)

// ApprovalChain is the full approval sequence in signing order. Adding or
// removing a level here is the only change the workflow needs.
var ApprovalChain = []ApprovalLevel{
	LEVEL_IRM,
	LEVEL_SRM,
	LEVEL_BUH,
	LEVEL_SSUH,
	LEVEL_BGH,
	LEVEL_SSGH,
	LEVEL_CFO,
	LEVEL_TRAVEL_DESK,
}

// PendingStatus returns the TRF status that marks level as the current
// required approver.
func (l ApprovalLevel) PendingStatus() TRFStatus {
	return TRFStatus("pending_" + string(l))
}

func (l ApprovalLevel) Index() int {
	for i, level := range ApprovalChain {
		if level == l {
			return i
		}
	}
	return -1
}

func (l ApprovalLevel) Known() bool {
	return l.Index() >= 0
}

// NextStatus returns the status a TRF moves to once level signs off. The
// terminal level clears the chain and lands on TRF_APPROVED, the
// booking-eligible state.
func (l ApprovalLevel) NextStatus() TRFStatus {
	idx := l.Index()
	if idx < 0 {
		return ""
	}
	if idx == len(ApprovalChain)-1 {
		return TRF_APPROVED
	}
	return ApprovalChain[idx+1].PendingStatus()
}

// PendingStatuses lists every status in which a TRF is still waiting on an
// approver.
func PendingStatuses() []TRFStatus {
	statuses := make([]TRFStatus, 0, len(ApprovalChain))
	for _, level := range ApprovalChain {
		statuses = append(statuses, level.PendingStatus())
	}
	return statuses
}

type CreateTRFRequestBody struct {
	EmployeeID          string  `json:"employee_id" binding:"required"`
	EmployeeName        string  `json:"employee_name" binding:"required"`
	EmployeeEmail       string  `json:"employee_email" binding:"required,email"`
	EmployeePhone       string  `json:"employee_phone,omitempty"`
	EmployeeDepartment  string  `json:"employee_department,omitempty"`
	EmployeeDesignation string  `json:"employee_designation,omitempty"`
	EmployeeLocation    string  `json:"employee_location,omitempty"`
	IRMName             string  `json:"irm_name,omitempty"`
	IRMEmail            string  `json:"irm_email,omitempty"`
	SRMName             string  `json:"srm_name,omitempty"`
	SRMEmail            string  `json:"srm_email,omitempty"`
	TravelType          string  `json:"travel_type" binding:"required,oneof=domestic international"`
	Purpose             string  `json:"purpose" binding:"required"`
	OriginCity          string  `json:"origin_city" binding:"required"`
	DestinationCity     string  `json:"destination_city" binding:"required"`
	DepartureDate       string  `json:"departure_date" binding:"required,tripdate"`
	ReturnDate          string  `json:"return_date,omitempty" binding:"omitempty,tripdate"`
	EstimatedCost       float64 `json:"estimated_cost,omitempty"`
}

type ApproveTRFRequestBody struct {
	Level    string `json:"level" binding:"required"`
	Comments string `json:"comments,omitempty"`
}

type RejectTRFRequestBody struct {
	Level  string `json:"level" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

type CompleteTRFRequestBody struct {
	Comments string `json:"comments,omitempty"`
	Force    bool   `json:"force,omitempty"`
}

type TRFURIParams struct {
	Number string `uri:"number" binding:"required"`
}

type FlightSearchQuery struct {
	Origin      string `form:"origin" binding:"required"`
	Destination string `form:"destination" binding:"required"`
	Date        string `form:"date" binding:"required,tripdate"`
	CabinClass  string `form:"cabin_class,omitempty"`
	MaxResults  int    `form:"max_results,omitempty"`
}

type ConfirmFlightRequestBody struct {
	TRFNumber  string `json:"trf_number" binding:"required"`
	FlightID   uint   `json:"flight_id" binding:"required"`
	Passengers int    `json:"passengers,omitempty"`
	CabinClass string `json:"cabin_class,omitempty"`
}

type HotelSearchQuery struct {
	City       string `form:"city" binding:"required"`
	CheckIn    string `form:"check_in" binding:"required,tripdate"`
	CheckOut   string `form:"check_out" binding:"required,tripdate"`
	MinRating  int    `form:"min_rating,omitempty"`
	MaxResults int    `form:"max_results,omitempty"`
}

type ConfirmHotelRequestBody struct {
	TRFNumber       string `json:"trf_number" binding:"required"`
	HotelID         uint   `json:"hotel_id" binding:"required"`
	CheckIn         string `json:"check_in" binding:"required,tripdate"`
	CheckOut        string `json:"check_out" binding:"required,tripdate"`
	Guests          int    `json:"guests,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

type FlightCalendarQuery struct {
	Origin      string `form:"origin" binding:"required"`
	Destination string `form:"destination" binding:"required"`
	StartDate   string `form:"start_date" binding:"required,tripdate"`
	Days        int    `form:"days,omitempty"`
	CabinClass  string `form:"cabin_class,omitempty"`
}

type HotelCalendarQuery struct {
	City      string `form:"city" binding:"required"`
	StartDate string `form:"start_date" binding:"required,tripdate"`
	Days      int    `form:"days,omitempty"`
}

type TRFListQueryFilters struct {
	EmployeeID string `form:"employee_id" binding:"required"`
	Status     string `form:"status,omitempty"`
}
