package db

import (
	"database/sql"
	"fmt"
)

const Schema = `
-- Create attendance_records table
-- One row per (employee_id, date); the unique constraint is what turns
-- concurrent duplicate check-ins into a conflict for the second writer.
CREATE TABLE IF NOT EXISTS attendance_records (
    id SERIAL PRIMARY KEY,
    employee_id VARCHAR(50) NOT NULL,
    employee_name VARCHAR(255) NOT NULL,
    department VARCHAR(100),
    date VARCHAR(10) NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'present',
    check_in_time VARCHAR(5),
    check_out_time VARCHAR(5),
    is_checked_in BOOLEAN NOT NULL DEFAULT FALSE,
    is_on_break BOOLEAN NOT NULL DEFAULT FALSE,
    break_start_time VARCHAR(5),
    break_end_time VARCHAR(5),
    break_time INTEGER NOT NULL DEFAULT 0,
    total_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
    supervisor_id VARCHAR(50),
    created_at DATE DEFAULT CURRENT_DATE,
    UNIQUE (employee_id, date)
);

-- Query paths: per-employee ranges, per-day team views, department pages
CREATE INDEX IF NOT EXISTS idx_attendance_employee_date ON attendance_records (employee_id, date);
CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance_records (date);
CREATE INDEX IF NOT EXISTS idx_attendance_supervisor ON attendance_records (supervisor_id);
`

// InitSchema initializes the database schema
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	if err != nil {
		return fmt.Errorf("error initializing database schema: %w", err)
	}
	return nil
}
