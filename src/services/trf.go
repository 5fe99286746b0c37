package services

import (
	"ctms/src/models"
	"ctms/src/types"
	"ctms/src/utils"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
)

// TRFService owns the requisition lifecycle: draft, submission, the
// approval chain, rejection and completion.
type TRFService struct {
	DB *gorm.DB
}

func NewTRFService(handle *gorm.DB) *TRFService {
	return &TRFService{DB: handle}
}

func (s *TRFService) CreateDraft(body *types.CreateTRFRequestBody) (*models.TravelRequisitionForm, error) {
	departure, err := utils.ParseDate(body.DepartureDate)
	if err != nil {
		return nil, err
	}
	var returnDate *time.Time
	if body.ReturnDate != "" {
		parsed, err := utils.ParseDate(body.ReturnDate)
		if err != nil {
			return nil, err
		}
		if !parsed.After(departure) {
			return nil, types.NewAppError(types.INVALID_DATE_RANGE, "return date %s must be after departure date %s", body.ReturnDate, body.DepartureDate)
		}
		returnDate = &parsed
	}

	trf := models.TravelRequisitionForm{
		EmployeeID:          body.EmployeeID,
		EmployeeName:        body.EmployeeName,
		EmployeeEmail:       body.EmployeeEmail,
		EmployeePhone:       body.EmployeePhone,
		EmployeeDepartment:  body.EmployeeDepartment,
		EmployeeDesignation: body.EmployeeDesignation,
		EmployeeLocation:    body.EmployeeLocation,
		IRMName:             body.IRMName,
		IRMEmail:            body.IRMEmail,
		SRMName:             body.SRMName,
		SRMEmail:            body.SRMEmail,
		TravelType:          types.TravelType(body.TravelType),
		Purpose:             body.Purpose,
		OriginCity:          body.OriginCity,
		DestinationCity:     body.DestinationCity,
		DepartureDate:       departure,
		ReturnDate:          returnDate,
		Status:              types.TRF_DRAFT,
	}
	if body.EstimatedCost > 0 {
		cost := body.EstimatedCost
		trf.EstimatedCost = &cost
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.TravelRequisitionForm{}).Count(&count).Error; err != nil {
			return err
		}
		trf.TRFNumber = utils.NextTRFNumber(time.Now().Year(), count+1)
		return tx.Create(&trf).Error
	})
	if err != nil {
		return nil, types.WrapSystemError(err)
	}
	log.Printf("created TRF draft %s for employee %s", trf.TRFNumber, trf.EmployeeID)
	return &trf, nil
}

// Submit strips the draft prefix and hands the TRF to the first approver.
func (s *TRFService) Submit(trfNumber string) (*models.TravelRequisitionForm, error) {
	var trf models.TravelRequisitionForm
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := findTRF(tx, trfNumber, &trf); err != nil {
			return err
		}
		if trf.Status != types.TRF_DRAFT {
			return types.NewAppError(types.INVALID_STATUS, "TRF %s is %s, only drafts can be submitted", trfNumber, trf.Status)
		}
		submitted := utils.SubmittedTRFNumber(trf.TRFNumber)
		first := types.ApprovalChain[0].PendingStatus()
		res := tx.
			Model(&models.TravelRequisitionForm{}).
			Where("id = ? AND status = ?", trf.ID, types.TRF_DRAFT).
			Updates(map[string]any{"trf_number": submitted, "status": first})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return types.NewAppError(types.INVALID_STATUS, "TRF %s was submitted concurrently", trfNumber)
		}
		trf.TRFNumber = submitted
		trf.Status = first
		return nil
	})
	if err != nil {
		return nil, types.WrapSystemError(err)
	}
	log.Printf("TRF %s submitted, now %s", trf.TRFNumber, trf.Status)
	return &trf, nil
}

// Approve signs one level of the chain. The level must match the TRF's
// current pending status exactly; the compare-and-set update loses to any
// concurrent approval at the same level, which surfaces as INVALID_SEQUENCE.
func (s *TRFService) Approve(trfNumber string, level types.ApprovalLevel, comments string) (*models.TravelRequisitionForm, error) {
	if !level.Known() {
		return nil, types.NewAppError(types.INVALID_LEVEL, "unknown approval level: %s", level)
	}
	var trf models.TravelRequisitionForm
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := findTRF(tx, trfNumber, &trf); err != nil {
			return err
		}

		// Replaying the terminal approval after it already cleared the
		// chain refreshes the comments and nothing else.
		if level == types.LEVEL_TRAVEL_DESK &&
			(trf.Status == types.TRF_APPROVED || trf.Status == types.TRF_PROCESSING) {
			return tx.
				Model(&models.TRFApproval{}).
				Where("trf_id = ? AND level = ?", trf.ID, level).
				Update("comments", comments).
				Error
		}

		expected := level.PendingStatus()
		if trf.Status != expected {
			return types.NewAppError(types.INVALID_SEQUENCE, "TRF %s is %s, level %s cannot approve now", trfNumber, trf.Status, level)
		}
		next := level.NextStatus()
		res := tx.
			Model(&models.TravelRequisitionForm{}).
			Where("id = ? AND status = ?", trf.ID, expected).
			Update("status", next)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return types.NewAppError(types.INVALID_SEQUENCE, "TRF %s moved past %s concurrently", trfNumber, expected)
		}
		approval := models.TRFApproval{
			TRFID:      trf.ID,
			Level:      level,
			ApprovedAt: time.Now(),
			Comments:   comments,
		}
		if err := tx.Create(&approval).Error; err != nil {
			return err
		}
		trf.Status = next
		trf.Approvals = append(trf.Approvals, &approval)
		return nil
	})
	if err != nil {
		return nil, types.WrapSystemError(err)
	}
	log.Printf("TRF %s approved by %s, now %s", trf.TRFNumber, level, trf.Status)
	return &trf, nil
}

// Reject terminates the chain at any pending level. The reason is mandatory
// and has a minimum length so the audit trail stays useful.
func (s *TRFService) Reject(trfNumber string, level types.ApprovalLevel, reason string) (*models.TravelRequisitionForm, error) {
	if !level.Known() {
		return nil, types.NewAppError(types.INVALID_LEVEL, "unknown approval level: %s", level)
	}
	if len(strings.TrimSpace(reason)) < 10 {
		return nil, types.NewAppError(types.INVALID_REASON, "rejection reason must be at least 10 characters")
	}
	var trf models.TravelRequisitionForm
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := findTRF(tx, trfNumber, &trf); err != nil {
			return err
		}
		if trf.Status == types.TRF_COMPLETED || trf.Status == types.TRF_REJECTED {
			return types.NewAppError(types.INVALID_STATUS, "TRF %s is %s and can no longer be rejected", trfNumber, trf.Status)
		}
		annotated := fmt.Sprintf("[%s] %s", strings.ToUpper(string(level)), strings.TrimSpace(reason))
		res := tx.
			Model(&models.TravelRequisitionForm{}).
			Where("id = ? AND status NOT IN ?", trf.ID, []types.TRFStatus{types.TRF_COMPLETED, types.TRF_REJECTED}).
			Updates(map[string]any{
				"status":           types.TRF_REJECTED,
				"rejection_reason": annotated,
				"rejected_by":      string(level),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return types.NewAppError(types.INVALID_STATUS, "TRF %s reached a terminal state concurrently", trfNumber)
		}
		trf.Status = types.TRF_REJECTED
		trf.RejectionReason = annotated
		trf.RejectedBy = string(level)
		return nil
	})
	if err != nil {
		return nil, types.WrapSystemError(err)
	}
	log.Printf("TRF %s rejected at level %s", trf.TRFNumber, level)
	return &trf, nil
}

// MarkCompleted closes out a TRF once the travel desk has finished booking.
// Unless forced, at least one confirmed booking ledger must exist.
func (s *TRFService) MarkCompleted(trfNumber string, comments string, force bool) (*models.TravelRequisitionForm, error) {
	var trf models.TravelRequisitionForm
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := findTRF(tx, trfNumber, &trf); err != nil {
			return err
		}
		if trf.Status != types.TRF_APPROVED && trf.Status != types.TRF_PROCESSING {
			return types.NewAppError(types.INVALID_STATUS, "TRF %s is %s, completion requires an approved TRF", trfNumber, trf.Status)
		}
		if !force {
			var confirmed int64
			err := tx.
				Model(&models.TravelBooking{}).
				Where("trf_id = ? AND status = ?", trf.ID, types.BOOKING_CONFIRMED).
				Count(&confirmed).
				Error
			if err != nil {
				return err
			}
			if confirmed == 0 {
				return types.NewAppError(types.INVALID_STATUS, "TRF %s has no confirmed booking", trfNumber)
			}
		}
		now := time.Now()
		res := tx.
			Model(&models.TravelRequisitionForm{}).
			Where("id = ? AND status IN ?", trf.ID, []types.TRFStatus{types.TRF_APPROVED, types.TRF_PROCESSING}).
			Updates(map[string]any{"status": types.TRF_COMPLETED, "final_approved_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return types.NewAppError(types.INVALID_STATUS, "TRF %s changed state concurrently", trfNumber)
		}
		if comments != "" {
			err := tx.
				Model(&models.TRFApproval{}).
				Where("trf_id = ? AND level = ?", trf.ID, types.LEVEL_TRAVEL_DESK).
				Update("comments", comments).
				Error
			if err != nil {
				return err
			}
		}
		trf.Status = types.TRF_COMPLETED
		trf.FinalApprovedAt = &now
		return nil
	})
	if err != nil {
		return nil, types.WrapSystemError(err)
	}
	log.Printf("TRF %s marked completed", trf.TRFNumber)
	return &trf, nil
}

// Get returns the TRF with its approval history and booking ledgers.
func (s *TRFService) Get(trfNumber string) (*models.TravelRequisitionForm, error) {
	var trf models.TravelRequisitionForm
	err := s.DB.
		Model(&models.TravelRequisitionForm{}).
		Where("trf_number = ?", trfNumber).
		Preload("Approvals").
		Preload("TravelBookings").
		Preload("TravelBookings.FlightBookings").
		Preload("TravelBookings.FlightBookings.Flight").
		Preload("TravelBookings.HotelBookings").
		First(&trf).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewAppError(types.TRF_NOT_FOUND, "TRF %s not found", trfNumber)
		}
		return nil, types.WrapSystemError(err)
	}
	return &trf, nil
}

// TRFStatusOverview is the lightweight progress view: how far along the
// chain a TRF is and which level it waits on.
type TRFStatusOverview struct {
	TRFNumber      string                  `json:"trf_number"`
	Status         types.TRFStatus         `json:"status"`
	CurrentLevel   *types.ApprovalLevel    `json:"current_level,omitempty"`
	ApprovalsDone  int                     `json:"approvals_done"`
	ApprovalsTotal int                     `json:"approvals_total"`
	Approvals      []*models.TRFApproval   `json:"approvals"`
	Bookings       []*models.TravelBooking `json:"bookings,omitempty"`
}

func (s *TRFService) StatusOverview(trfNumber string) (*TRFStatusOverview, error) {
	var trf models.TravelRequisitionForm
	err := s.DB.
		Model(&models.TravelRequisitionForm{}).
		Where("trf_number = ?", trfNumber).
		Preload("Approvals", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("approved_at ASC")
		}).
		Preload("TravelBookings").
		First(&trf).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewAppError(types.TRF_NOT_FOUND, "TRF %s not found", trfNumber)
		}
		return nil, types.WrapSystemError(err)
	}
	overview := TRFStatusOverview{
		TRFNumber:      trf.TRFNumber,
		Status:         trf.Status,
		ApprovalsDone:  len(trf.Approvals),
		ApprovalsTotal: len(types.ApprovalChain),
		Approvals:      trf.Approvals,
		Bookings:       trf.TravelBookings,
	}
	for _, level := range types.ApprovalChain {
		if trf.Status == level.PendingStatus() {
			current := level
			overview.CurrentLevel = &current
			break
		}
	}
	return &overview, nil
}

// ListByEmployee returns an employee's TRFs, newest first. The status
// filter accepts a concrete status, "pending" for any waiting state, or
// "all".
func (s *TRFService) ListByEmployee(employeeID, status string) ([]models.TravelRequisitionForm, error) {
	query := s.DB.
		Model(&models.TravelRequisitionForm{}).
		Where("employee_id = ?", employeeID)
	switch status {
	case "", "all":
	case "pending":
		query = query.Where("status IN ?", types.PendingStatuses())
	default:
		query = query.Where("status = ?", types.TRFStatus(status))
	}
	var trfs []models.TravelRequisitionForm
	err := query.Order("created_at DESC").Find(&trfs).Error
	if err != nil {
		return nil, types.WrapSystemError(err)
	}
	return trfs, nil
}

// PendingForLevel is an approver's work queue. The travel desk queue also
// carries approved and processing TRFs since those still need booking work.
func (s *TRFService) PendingForLevel(level types.ApprovalLevel) ([]models.TravelRequisitionForm, error) {
	if !level.Known() {
		return nil, types.NewAppError(types.INVALID_LEVEL, "unknown approval level: %s", level)
	}
	statuses := []types.TRFStatus{level.PendingStatus()}
	if level == types.LEVEL_TRAVEL_DESK {
		statuses = append(statuses, types.TRF_APPROVED, types.TRF_PROCESSING)
	}
	var trfs []models.TravelRequisitionForm
	err := s.DB.
		Model(&models.TravelRequisitionForm{}).
		Where("status IN ?", statuses).
		Order("updated_at ASC").
		Find(&trfs).
		Error
	if err != nil {
		return nil, types.WrapSystemError(err)
	}
	return trfs, nil
}

// TrackAll returns every submitted TRF for the tracking board, drafts
// excluded.
func (s *TRFService) TrackAll() ([]models.TravelRequisitionForm, error) {
	var trfs []models.TravelRequisitionForm
	err := s.DB.
		Model(&models.TravelRequisitionForm{}).
		Where("status <> ?", types.TRF_DRAFT).
		Preload("Approvals").
		Order("updated_at DESC").
		Find(&trfs).
		Error
	if err != nil {
		return nil, types.WrapSystemError(err)
	}
	return trfs, nil
}

func findTRF(tx *gorm.DB, trfNumber string, out *models.TravelRequisitionForm) error {
	err := tx.
		Model(&models.TravelRequisitionForm{}).
		Where("trf_number = ?", trfNumber).
		First(out).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NewAppError(types.TRF_NOT_FOUND, "TRF %s not found", trfNumber)
		}
		return err
	}
	return nil
}
