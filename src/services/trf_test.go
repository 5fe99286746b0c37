package services

import (
	"ctms/src/types"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

const trfSelectQuery = `SELECT (.+) FROM "travel_requisition_forms" WHERE trf_number = (.+)`

func trfRow(id int, number string, status types.TRFStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "trf_number", "status", "employee_id", "employee_name", "employee_email", "origin_city", "destination_city"}).
		AddRow(id, number, string(status), "E1001", "Asha Rao", "asha.rao@example.com", "Mumbai", "Delhi")
}

func TestApproveUnknownLevel(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTRFService(db)

	_, err := svc.Approve("TRF202600001", types.ApprovalLevel("ceo"), "")
	assert.NotNil(t, err)
	assert.Equal(t, types.INVALID_LEVEL, types.CodeOf(err))
	// Validation happens before any storage work.
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestApproveNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTRFService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(trfSelectQuery).
		WillReturnRows(sqlmock.NewRows([]string{"id", "trf_number", "status"}))
	mock.ExpectRollback()

	_, err := svc.Approve("TRF209900001", types.LEVEL_IRM, "")
	assert.NotNil(t, err)
	assert.Equal(t, types.TRF_NOT_FOUND, types.CodeOf(err))
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestApproveOutOfSequence(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTRFService(db)

	// The TRF waits on the SRM; the CFO tries to jump the queue.
	mock.ExpectBegin()
	mock.ExpectQuery(trfSelectQuery).
		WillReturnRows(trfRow(1, "TRF202600001", types.TRF_PENDING_SRM))
	mock.ExpectRollback()

	_, err := svc.Approve("TRF202600001", types.LEVEL_CFO, "looks good")
	assert.NotNil(t, err)
	assert.Equal(t, types.INVALID_SEQUENCE, types.CodeOf(err))
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestApproveLosesCompareAndSet(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTRFService(db)

	// Status reads as pending_irm but a concurrent approval wins the
	// conditional update, so zero rows change.
	mock.ExpectBegin()
	mock.ExpectQuery(trfSelectQuery).
		WillReturnRows(trfRow(1, "TRF202600001", types.TRF_PENDING_IRM))
	mock.ExpectExec(`UPDATE "travel_requisition_forms"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.Approve("TRF202600001", types.LEVEL_IRM, "approved")
	assert.NotNil(t, err)
	assert.Equal(t, types.INVALID_SEQUENCE, types.CodeOf(err))
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestApproveTerminalReplay(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTRFService(db)

	// A repeated travel desk sign-off after the chain already cleared
	// refreshes the stored comments and nothing else: the status stays
	// approved, and no second approval row is written.
	mock.ExpectBegin()
	mock.ExpectQuery(trfSelectQuery).
		WillReturnRows(trfRow(1, "TRF202600001", types.TRF_APPROVED))
	mock.ExpectExec(`UPDATE "trf_approvals"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	trf, err := svc.Approve("TRF202600001", types.LEVEL_TRAVEL_DESK, "itinerary re-sent")
	assert.Nil(t, err)
	assert.Equal(t, types.TRF_APPROVED, trf.Status)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestSubmitRequiresDraft(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTRFService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(trfSelectQuery).
		WillReturnRows(trfRow(1, "TRF202600001", types.TRF_PENDING_IRM))
	mock.ExpectRollback()

	_, err := svc.Submit("TRF202600001")
	assert.NotNil(t, err)
	assert.Equal(t, types.INVALID_STATUS, types.CodeOf(err))
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestRejectShortReason(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTRFService(db)

	_, err := svc.Reject("TRF202600001", types.LEVEL_BUH, "too pricy")
	assert.NotNil(t, err)
	assert.Equal(t, types.INVALID_REASON, types.CodeOf(err))
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestRejectCompletedTRF(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTRFService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(trfSelectQuery).
		WillReturnRows(trfRow(1, "TRF202600001", types.TRF_COMPLETED))
	mock.ExpectRollback()

	_, err := svc.Reject("TRF202600001", types.LEVEL_TRAVEL_DESK, "itinerary no longer needed")
	assert.NotNil(t, err)
	assert.Equal(t, types.INVALID_STATUS, types.CodeOf(err))
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestMarkCompletedNeedsConfirmedBooking(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTRFService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(trfSelectQuery).
		WillReturnRows(trfRow(1, "TRF202600001", types.TRF_APPROVED))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "travel_bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	_, err := svc.MarkCompleted("TRF202600001", "", false)
	assert.NotNil(t, err)
	assert.Equal(t, types.INVALID_STATUS, types.CodeOf(err))
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestMarkCompletedRejectsPendingTRF(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTRFService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(trfSelectQuery).
		WillReturnRows(trfRow(1, "TRF202600001", types.TRF_PENDING_CFO))
	mock.ExpectRollback()

	_, err := svc.MarkCompleted("TRF202600001", "", true)
	assert.NotNil(t, err)
	assert.Equal(t, types.INVALID_STATUS, types.CodeOf(err))
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestPendingForLevelUnknown(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTRFService(db)

	_, err := svc.PendingForLevel(types.ApprovalLevel("intern"))
	assert.NotNil(t, err)
	assert.Equal(t, types.INVALID_LEVEL, types.CodeOf(err))
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestCreateDraftDateValidation(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewTRFService(db)

	body := &types.CreateTRFRequestBody{
		EmployeeID:      "E1001",
		EmployeeName:    "Asha Rao",
		EmployeeEmail:   "asha.rao@example.com",
		TravelType:      "domestic",
		Purpose:         "Quarterly review",
		OriginCity:      "Mumbai",
		DestinationCity: "Delhi",
		DepartureDate:   "15-10-2026",
	}
	_, err := svc.CreateDraft(body)
	assert.NotNil(t, err)
	assert.Equal(t, types.INVALID_DATE_FORMAT, types.CodeOf(err))

	body.DepartureDate = "2026-10-15"
	body.ReturnDate = "2026-10-15"
	_, err = svc.CreateDraft(body)
	assert.NotNil(t, err)
	assert.Equal(t, types.INVALID_DATE_RANGE, types.CodeOf(err))

	assert.Nil(t, mock.ExpectationsWereMet())
}
