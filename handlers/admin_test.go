package handlers

import (
	"net/http"
	"testing"

	"attendance_backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAdminRouter(s *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewAdminHandler(s)
	r.POST("/attendance/admin/manual-entry", h.ManualEntry)
	r.PUT("/attendance/admin/:id", h.UpdateAttendance)

	return r
}

func TestManualEntry(t *testing.T) {
	s := newFakeStore()
	r := newAdminRouter(s)

	entry := map[string]interface{}{
		"employeeId":   "E1",
		"employeeName": "Alice",
		"date":         "2024-01-15",
		"checkInTime":  "08:00",
		"checkOutTime": "17:00",
		"breakTime":    60,
		"totalHours":   8.0,
	}

	w := doJSON(r, http.MethodPost, "/attendance/admin/manual-entry", entry)
	assert.Equal(t, http.StatusCreated, w.Code)
	rec := decode(t, w)["record"].(map[string]interface{})
	// Status defaults to present, supplied fields land verbatim
	assert.Equal(t, "present", rec["status"])
	assert.Equal(t, float64(60), rec["breakTime"])
	assert.Equal(t, float64(8), rec["totalHours"])

	// Same (employee, date) again is a duplicate
	w = doJSON(r, http.MethodPost, "/attendance/admin/manual-entry", entry)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])
}

func TestManualEntryValidation(t *testing.T) {
	r := newAdminRouter(newFakeStore())

	tests := []struct {
		name  string
		entry map[string]interface{}
	}{
		{
			name: "Missing checkInTime",
			entry: map[string]interface{}{
				"employeeId": "E1", "employeeName": "Alice", "date": "2024-01-15",
			},
		},
		{
			name: "Missing employeeName",
			entry: map[string]interface{}{
				"employeeId": "E1", "date": "2024-01-15", "checkInTime": "08:00",
			},
		},
		{
			name: "Malformed date",
			entry: map[string]interface{}{
				"employeeId": "E1", "employeeName": "Alice", "date": "15/01/2024", "checkInTime": "08:00",
			},
		},
		{
			name: "Unknown status",
			entry: map[string]interface{}{
				"employeeId": "E1", "employeeName": "Alice", "date": "2024-01-15",
				"checkInTime": "08:00", "status": "vacationing",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/attendance/admin/manual-entry", tt.entry)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUpdateAttendance(t *testing.T) {
	s := newFakeStore()
	s.Insert(&models.AttendanceRecord{
		EmployeeID: "E1", EmployeeName: "Alice", Date: "2024-01-15",
		Status: "present", CheckInTime: "08:00", TotalHours: 8,
	})
	r := newAdminRouter(s)

	w := doJSON(r, http.MethodPut, "/attendance/admin/1", map[string]interface{}{
		"status":     "half-day",
		"totalHours": 4.0,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	rec := decode(t, w)["record"].(map[string]interface{})
	assert.Equal(t, "half-day", rec["status"])
	assert.Equal(t, float64(4), rec["totalHours"])
	// Untouched fields survive the patch
	assert.Equal(t, "08:00", rec["checkInTime"])

	w = doJSON(r, http.MethodPut, "/attendance/admin/999", map[string]interface{}{"status": "leave"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPut, "/attendance/admin/abc", map[string]interface{}{"status": "leave"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAttendanceClearsStuckBreak(t *testing.T) {
	s := newFakeStore()
	s.Insert(&models.AttendanceRecord{
		EmployeeID: "E1", EmployeeName: "Alice", Date: "2024-01-15",
		Status: "present", CheckInTime: "08:00",
		IsOnBreak: true, BreakStartTime: "12:00",
	})
	r := newAdminRouter(s)

	w := doJSON(r, http.MethodPut, "/attendance/admin/1", map[string]interface{}{
		"isOnBreak":      false,
		"breakStartTime": "",
		"breakEndTime":   "12:30",
		"breakTime":      30,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	rec := decode(t, w)["record"].(map[string]interface{})
	assert.Equal(t, false, rec["isOnBreak"])
	assert.Nil(t, rec["breakStartTime"])
	assert.Equal(t, "12:30", rec["breakEndTime"])
	assert.Equal(t, float64(30), rec["breakTime"])
}
