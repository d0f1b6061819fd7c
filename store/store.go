package store

import (
	"errors"

	"attendance_backend/models"
)

var (
	// ErrNoRecord means no day-record matched the lookup.
	ErrNoRecord = errors.New("attendance record not found")
	// ErrDuplicateRecord means a day-record already exists for the
	// (employeeId, date) pair; the unique index is the arbiter.
	ErrDuplicateRecord = errors.New("attendance record already exists for this date")
)

// HistoryLimit caps the history query result set.
const HistoryLimit = 100

// AttendanceStore is the persistence boundary for day-records.
type AttendanceStore interface {
	// Insert writes a new day-record and fills in its id. Returns
	// ErrDuplicateRecord when one already exists for the same
	// (employeeId, date).
	Insert(rec *models.AttendanceRecord) error

	// GetByEmployeeAndDate looks up the single day-record for the
	// natural key. Returns ErrNoRecord when absent.
	GetByEmployeeAndDate(employeeID, date string) (*models.AttendanceRecord, error)

	// Save rewrites every mutable field of an existing record by id.
	Save(rec *models.AttendanceRecord) error

	// Patch applies the non-nil fields by id and returns the updated
	// record. Returns ErrNoRecord for an unknown id.
	Patch(id int, fields models.UpdateAttendanceRequest) (*models.AttendanceRecord, error)

	// History returns records matching the filter, newest date first,
	// capped at HistoryLimit.
	History(f models.HistoryFilter) ([]models.AttendanceRecord, error)

	// Team returns the records for one date, optionally scoped to a
	// supervisor, ordered by check-in time.
	Team(supervisorID, date string) ([]models.AttendanceRecord, error)

	// Week returns every record in the inclusive date range, optionally
	// scoped to one employee, oldest date first. Uncapped: summary math
	// must see the whole window.
	Week(employeeID, startDate, endDate string) ([]models.AttendanceRecord, error)

	// List returns one page of records plus the unpaginated total.
	List(f models.ListFilter) ([]models.AttendanceRecord, int, error)
}
