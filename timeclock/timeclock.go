// Package timeclock holds the day-record state machine and its time
// arithmetic. Nothing in here touches the database or the wall clock:
// the acting date and current time are always passed in by the caller.
package timeclock

import (
	"errors"
	"math"
	"time"

	"attendance_backend/models"
)

var (
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrAlreadyOnBreak    = errors.New("already on break")
	ErrNotOnBreak        = errors.New("not currently on break")
	ErrNotCheckedIn      = errors.New("no check-in time on record")
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// Clock formats a time as the stored "15:04" representation.
func Clock(t time.Time) string {
	return t.Format(clockLayout)
}

// Day formats a time as the stored "2006-01-02" representation.
func Day(t time.Time) string {
	return t.Format(dateLayout)
}

// CheckIn builds the initial day-record for an employee. Uniqueness per
// (employee, date) is enforced by the store at insert time.
func CheckIn(employeeID, employeeName, department, supervisorID, date string, now time.Time) models.AttendanceRecord {
	return models.AttendanceRecord{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Department:   department,
		SupervisorID: supervisorID,
		Date:         date,
		Status:       models.StatusPresent,
		CheckInTime:  Clock(now),
		IsCheckedIn:  true,
	}
}

// CheckOut closes the day-record and computes total hours from the
// check-in time and the accumulated break minutes. A record still on
// break is accepted; its open segment simply does not count.
func CheckOut(rec *models.AttendanceRecord, now time.Time) error {
	if rec.CheckOutTime != "" {
		return ErrAlreadyCheckedOut
	}
	if rec.CheckInTime == "" {
		return ErrNotCheckedIn
	}
	rec.CheckOutTime = Clock(now)
	worked, err := minutesBetween(rec.CheckInTime, rec.CheckOutTime)
	if err != nil {
		return err
	}
	rec.TotalHours = round2(float64(worked)/60 - float64(rec.BreakTime)/60)
	rec.IsCheckedIn = false
	return nil
}

// BreakIn opens a break segment. A checked-out day is closed; breaks
// cannot reopen it.
func BreakIn(rec *models.AttendanceRecord, now time.Time) error {
	if rec.CheckOutTime != "" {
		return ErrAlreadyCheckedOut
	}
	if rec.IsOnBreak {
		return ErrAlreadyOnBreak
	}
	rec.BreakStartTime = Clock(now)
	rec.IsOnBreak = true
	return nil
}

// BreakOut closes the open break segment, folds its minutes into the
// running BreakTime total, and returns the segment's own duration.
func BreakOut(rec *models.AttendanceRecord, now time.Time) (int, error) {
	if !rec.IsOnBreak {
		return 0, ErrNotOnBreak
	}
	rec.BreakEndTime = Clock(now)
	segment, err := minutesBetween(rec.BreakStartTime, rec.BreakEndTime)
	if err != nil {
		return 0, err
	}
	rec.BreakTime += segment
	rec.IsOnBreak = false
	return segment, nil
}

// WeekWindow returns the Sunday and Saturday dates of the week
// containing anchor.
func WeekWindow(anchor string) (start, end string, err error) {
	d, err := time.Parse(dateLayout, anchor)
	if err != nil {
		return "", "", err
	}
	sunday := d.AddDate(0, 0, -int(d.Weekday()))
	return sunday.Format(dateLayout), sunday.AddDate(0, 0, 6).Format(dateLayout), nil
}

// Summarize aggregates a set of day-records into weekly totals.
// Average hours is taken over present and half days only, and is 0 for
// a week with neither.
func Summarize(records []models.AttendanceRecord) models.WeeklySummary {
	var s models.WeeklySummary
	for _, rec := range records {
		switch rec.Status {
		case models.StatusPresent:
			s.PresentDays++
		case models.StatusAbsent:
			s.AbsentDays++
		case models.StatusHalfDay:
			s.HalfDays++
		case models.StatusLeave:
			s.LeaveDays++
		}
		s.TotalHours += rec.TotalHours
	}
	s.TotalHours = round2(s.TotalHours)
	if worked := s.PresentDays + s.HalfDays; worked > 0 {
		s.AverageHours = round2(s.TotalHours / float64(worked))
	}
	return s
}

// minutesBetween subtracts two "15:04" values on the same calendar day.
// Shifts crossing midnight are not supported and come out negative.
func minutesBetween(from, to string) (int, error) {
	t1, err := time.Parse(clockLayout, from)
	if err != nil {
		return 0, err
	}
	t2, err := time.Parse(clockLayout, to)
	if err != nil {
		return 0, err
	}
	return int(t2.Sub(t1).Minutes()), nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
