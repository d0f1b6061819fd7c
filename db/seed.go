package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedData populates the database with a week of demo attendance rows
// for local development. Existing rows are left alone.
func SeedData(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	type row struct {
		employeeID, name, department, supervisorID string
		status, checkIn, checkOut                  string
		breakTime                                  int
		totalHours                                 float64
	}
	demo := []row{
		{"E100", "Alice Okafor", "Operations", "S10", "present", "08:00", "17:00", 60, 8.00},
		{"E101", "Ben Carter", "Operations", "S10", "present", "08:30", "17:30", 45, 8.25},
		{"E102", "Chen Wei", "Maintenance", "S11", "half-day", "09:00", "13:00", 0, 4.00},
		{"E103", "Dina Haddad", "Maintenance", "S11", "leave", "", "", 0, 0},
	}

	for offset := 0; offset < 5; offset++ {
		date := time.Now().AddDate(0, 0, -offset-1).Format("2006-01-02")
		for _, r := range demo {
			_, err = tx.Exec(`
                INSERT INTO attendance_records
                    (employee_id, employee_name, department, date, status,
                     check_in_time, check_out_time, break_time, total_hours, supervisor_id)
                VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9, $10)
                ON CONFLICT (employee_id, date) DO NOTHING
            `, r.employeeID, r.name, r.department, date, r.status,
				r.checkIn, r.checkOut, r.breakTime, r.totalHours, r.supervisorID)
			if err != nil {
				tx.Rollback()
				return fmt.Errorf("error seeding attendance records: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
