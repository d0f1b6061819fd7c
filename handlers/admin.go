package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"attendance_backend/models"
	"attendance_backend/store"

	"github.com/gin-gonic/gin"
)

// AdminHandler carries the privileged override operations. These write
// caller-supplied values verbatim and skip the state machine on
// purpose; routes mounting them sit behind the admin auth guard.
type AdminHandler struct {
	store store.AttendanceStore
}

func NewAdminHandler(s store.AttendanceStore) *AdminHandler {
	return &AdminHandler{store: s}
}

func (h *AdminHandler) ManualEntry(c *gin.Context) {
	var req models.ManualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusPresent
	}

	rec := models.AttendanceRecord{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Department:   req.Department,
		Date:         req.Date,
		Status:       status,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		BreakTime:    req.BreakTime,
		TotalHours:   req.TotalHours,
		SupervisorID: req.SupervisorID,
	}

	if err := h.store.Insert(&rec); err != nil {
		if errors.Is(err, store.ErrDuplicateRecord) {
			fail(c, http.StatusConflict, "Attendance record already exists for this employee and date")
			return
		}
		log.Printf("Error creating manual attendance entry: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to create attendance record")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "record": rec})
}

func (h *AdminHandler) UpdateAttendance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid attendance record id")
		return
	}

	var req models.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.store.Patch(id, req)
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			fail(c, http.StatusNotFound, "Attendance record not found")
			return
		}
		log.Printf("Error updating attendance record: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to update attendance record")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "record": rec})
}
