package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"attendance_backend/models"

	"github.com/lib/pq"
)

// PostgresStore implements AttendanceStore over database/sql.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const recordColumns = `id, employee_id, employee_name, department, date, status,
        check_in_time, check_out_time, is_checked_in, is_on_break,
        break_start_time, break_end_time, break_time, total_hours, supervisor_id`

func (s *PostgresStore) Insert(rec *models.AttendanceRecord) error {
	err := s.db.QueryRow(`
        INSERT INTO attendance_records
            (employee_id, employee_name, department, date, status,
             check_in_time, check_out_time, is_checked_in, is_on_break,
             break_start_time, break_end_time, break_time, total_hours, supervisor_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING id
    `, rec.EmployeeID, rec.EmployeeName, nullable(rec.Department), rec.Date, rec.Status,
		nullable(rec.CheckInTime), nullable(rec.CheckOutTime), rec.IsCheckedIn, rec.IsOnBreak,
		nullable(rec.BreakStartTime), nullable(rec.BreakEndTime), rec.BreakTime, rec.TotalHours,
		nullable(rec.SupervisorID)).Scan(&rec.ID)

	if isUniqueViolation(err) {
		return ErrDuplicateRecord
	}
	if err != nil {
		return fmt.Errorf("error inserting attendance record: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetByEmployeeAndDate(employeeID, date string) (*models.AttendanceRecord, error) {
	row := s.db.QueryRow(`
        SELECT `+recordColumns+`
        FROM attendance_records
        WHERE employee_id = $1 AND date = $2
    `, employeeID, date)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("error loading attendance record: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) Save(rec *models.AttendanceRecord) error {
	result, err := s.db.Exec(`
        UPDATE attendance_records
        SET employee_name = $1, department = $2, status = $3,
            check_in_time = $4, check_out_time = $5,
            is_checked_in = $6, is_on_break = $7,
            break_start_time = $8, break_end_time = $9,
            break_time = $10, total_hours = $11, supervisor_id = $12
        WHERE id = $13
    `, rec.EmployeeName, nullable(rec.Department), rec.Status,
		nullable(rec.CheckInTime), nullable(rec.CheckOutTime),
		rec.IsCheckedIn, rec.IsOnBreak,
		nullable(rec.BreakStartTime), nullable(rec.BreakEndTime),
		rec.BreakTime, rec.TotalHours, nullable(rec.SupervisorID), rec.ID)
	if err != nil {
		return fmt.Errorf("error saving attendance record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error saving attendance record: %w", err)
	}
	if affected == 0 {
		return ErrNoRecord
	}
	return nil
}

func (s *PostgresStore) Patch(id int, fields models.UpdateAttendanceRequest) (*models.AttendanceRecord, error) {
	set := []string{}
	params := []interface{}{}
	add := func(column string, value interface{}) {
		params = append(params, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(params)))
	}

	if fields.EmployeeName != nil {
		add("employee_name", *fields.EmployeeName)
	}
	if fields.Department != nil {
		add("department", nullable(*fields.Department))
	}
	if fields.Status != nil {
		add("status", *fields.Status)
	}
	if fields.CheckInTime != nil {
		add("check_in_time", nullable(*fields.CheckInTime))
	}
	if fields.CheckOutTime != nil {
		add("check_out_time", nullable(*fields.CheckOutTime))
	}
	if fields.IsCheckedIn != nil {
		add("is_checked_in", *fields.IsCheckedIn)
	}
	if fields.IsOnBreak != nil {
		add("is_on_break", *fields.IsOnBreak)
	}
	if fields.BreakStartTime != nil {
		add("break_start_time", nullable(*fields.BreakStartTime))
	}
	if fields.BreakEndTime != nil {
		add("break_end_time", nullable(*fields.BreakEndTime))
	}
	if fields.BreakTime != nil {
		add("break_time", *fields.BreakTime)
	}
	if fields.TotalHours != nil {
		add("total_hours", *fields.TotalHours)
	}
	if fields.SupervisorID != nil {
		add("supervisor_id", nullable(*fields.SupervisorID))
	}

	if len(set) == 0 {
		// Nothing to change; behave like a lookup so the caller still
		// gets NotFound for a bad id.
		row := s.db.QueryRow(`SELECT `+recordColumns+` FROM attendance_records WHERE id = $1`, id)
		rec, err := scanRecord(row)
		if err == sql.ErrNoRows {
			return nil, ErrNoRecord
		}
		if err != nil {
			return nil, fmt.Errorf("error loading attendance record: %w", err)
		}
		return rec, nil
	}

	params = append(params, id)
	query := fmt.Sprintf(`
        UPDATE attendance_records
        SET %s
        WHERE id = $%d
        RETURNING `+recordColumns,
		strings.Join(set, ", "), len(params))

	rec, err := scanRecord(s.db.QueryRow(query, params...))
	if err == sql.ErrNoRows {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("error updating attendance record: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) History(f models.HistoryFilter) ([]models.AttendanceRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM attendance_records`
	where := []string{}
	params := []interface{}{}

	if f.EmployeeID != "" {
		params = append(params, f.EmployeeID)
		where = append(where, fmt.Sprintf("employee_id = $%d", len(params)))
	}
	if f.StartDate != "" {
		params = append(params, f.StartDate)
		where = append(where, fmt.Sprintf("date >= $%d", len(params)))
	}
	if f.EndDate != "" {
		params = append(params, f.EndDate)
		where = append(where, fmt.Sprintf("date <= $%d", len(params)))
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT %d", HistoryLimit)

	return s.queryRecords(query, params...)
}

func (s *PostgresStore) Team(supervisorID, date string) ([]models.AttendanceRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM attendance_records WHERE date = $1`
	params := []interface{}{date}

	if supervisorID != "" {
		params = append(params, supervisorID)
		query += fmt.Sprintf(" AND supervisor_id = $%d", len(params))
	}
	query += " ORDER BY check_in_time ASC"

	return s.queryRecords(query, params...)
}

func (s *PostgresStore) Week(employeeID, startDate, endDate string) ([]models.AttendanceRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM attendance_records WHERE date >= $1 AND date <= $2`
	params := []interface{}{startDate, endDate}

	if employeeID != "" {
		params = append(params, employeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(params))
	}
	query += " ORDER BY date ASC"

	return s.queryRecords(query, params...)
}

func (s *PostgresStore) List(f models.ListFilter) ([]models.AttendanceRecord, int, error) {
	where := []string{}
	params := []interface{}{}

	if f.Date != "" {
		params = append(params, f.Date)
		where = append(where, fmt.Sprintf("date = $%d", len(params)))
	}
	if f.Department != "" {
		params = append(params, f.Department)
		where = append(where, fmt.Sprintf("department = $%d", len(params)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM attendance_records`+clause, params...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting attendance records: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+recordColumns+` FROM attendance_records%s
        ORDER BY date DESC, check_in_time ASC
        LIMIT %d OFFSET %d`, clause, f.Limit, (f.Page-1)*f.Limit)

	records, err := s.queryRecords(query, params...)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (s *PostgresStore) queryRecords(query string, params ...interface{}) ([]models.AttendanceRecord, error) {
	rows, err := s.db.Query(query, params...)
	if err != nil {
		return nil, fmt.Errorf("error querying attendance records: %w", err)
	}
	defer rows.Close()

	records := []models.AttendanceRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning attendance record: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading attendance records: %w", err)
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row scanner) (*models.AttendanceRecord, error) {
	var rec models.AttendanceRecord
	var department, checkIn, checkOut, breakStart, breakEnd, supervisor sql.NullString

	err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &department,
		&rec.Date, &rec.Status, &checkIn, &checkOut,
		&rec.IsCheckedIn, &rec.IsOnBreak, &breakStart, &breakEnd,
		&rec.BreakTime, &rec.TotalHours, &supervisor)
	if err != nil {
		return nil, err
	}

	rec.Department = department.String
	rec.CheckInTime = checkIn.String
	rec.CheckOutTime = checkOut.String
	rec.BreakStartTime = breakStart.String
	rec.BreakEndTime = breakEnd.String
	rec.SupervisorID = supervisor.String
	return &rec, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
