package models

// Attendance status classifications
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusHalfDay = "half-day"
	StatusLeave   = "leave"
)

// AttendanceRecord is the single day-record for one employee and one
// calendar date. Dates are "2006-01-02" strings, clock fields are
// 24-hour "15:04" strings; an empty string means the field is unset.
type AttendanceRecord struct {
	ID             int     `json:"id"`
	EmployeeID     string  `json:"employeeId"`
	EmployeeName   string  `json:"employeeName"`
	Department     string  `json:"department,omitempty"`
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	CheckInTime    string  `json:"checkInTime,omitempty"`
	CheckOutTime   string  `json:"checkOutTime,omitempty"`
	IsCheckedIn    bool    `json:"isCheckedIn"`
	IsOnBreak      bool    `json:"isOnBreak"`
	BreakStartTime string  `json:"breakStartTime,omitempty"`
	BreakEndTime   string  `json:"breakEndTime,omitempty"`
	BreakTime      int     `json:"breakTime"`
	TotalHours     float64 `json:"totalHours"`
	SupervisorID   string  `json:"supervisorId,omitempty"`
}

type CheckInRequest struct {
	EmployeeID   string `json:"employeeId" binding:"required"`
	EmployeeName string `json:"employeeName" binding:"required"`
	Department   string `json:"department"`
	SupervisorID string `json:"supervisorId"`
}

type EmployeeActionRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
}

// ManualEntryRequest creates a day-record outside the normal check-in
// flow. Only the four required fields are validated; everything else is
// taken verbatim.
type ManualEntryRequest struct {
	EmployeeID   string  `json:"employeeId" binding:"required"`
	EmployeeName string  `json:"employeeName" binding:"required"`
	Department   string  `json:"department"`
	Date         string  `json:"date" binding:"required,datetime=2006-01-02"`
	Status       string  `json:"status" binding:"omitempty,oneof=present absent half-day leave"`
	CheckInTime  string  `json:"checkInTime" binding:"required,datetime=15:04"`
	CheckOutTime string  `json:"checkOutTime" binding:"omitempty,datetime=15:04"`
	BreakTime    int     `json:"breakTime"`
	TotalHours   float64 `json:"totalHours"`
	SupervisorID string  `json:"supervisorId"`
}

// UpdateAttendanceRequest is an arbitrary-field patch applied by id.
// Nil pointers are left untouched.
type UpdateAttendanceRequest struct {
	EmployeeName *string  `json:"employeeName,omitempty"`
	Department   *string  `json:"department,omitempty"`
	Status       *string  `json:"status,omitempty" binding:"omitempty,oneof=present absent half-day leave"`
	CheckInTime  *string  `json:"checkInTime,omitempty" binding:"omitempty,datetime=15:04"`
	CheckOutTime *string  `json:"checkOutTime,omitempty" binding:"omitempty,datetime=15:04"`
	IsCheckedIn  *bool    `json:"isCheckedIn,omitempty"`
	IsOnBreak    *bool    `json:"isOnBreak,omitempty"`
	// Live break markers; empty string clears the field.
	BreakStartTime *string `json:"breakStartTime,omitempty" binding:"omitempty,datetime=15:04"`
	BreakEndTime   *string `json:"breakEndTime,omitempty" binding:"omitempty,datetime=15:04"`
	BreakTime      *int    `json:"breakTime,omitempty"`
	TotalHours   *float64 `json:"totalHours,omitempty"`
	SupervisorID *string  `json:"supervisorId,omitempty"`
}

type HistoryFilter struct {
	EmployeeID string
	StartDate  string
	EndDate    string
}

type ListFilter struct {
	Page       int
	Limit      int
	Date       string
	Department string
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// WeeklySummary aggregates one Sunday-to-Saturday window.
type WeeklySummary struct {
	WeekStart    string  `json:"weekStart"`
	WeekEnd      string  `json:"weekEnd"`
	PresentDays  int     `json:"presentDays"`
	AbsentDays   int     `json:"absentDays"`
	HalfDays     int     `json:"halfDays"`
	LeaveDays    int     `json:"leaveDays"`
	TotalHours   float64 `json:"totalHours"`
	AverageHours float64 `json:"averageHours"`
}
