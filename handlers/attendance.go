package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"attendance_backend/models"
	"attendance_backend/store"
	"attendance_backend/timeclock"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	store store.AttendanceStore
}

func NewAttendanceHandler(s store.AttendanceStore) *AttendanceHandler {
	return &AttendanceHandler{store: s}
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// asOfDate resolves the acting calendar date for a state-machine
// action: an explicit ?date=YYYY-MM-DD wins, otherwise server today.
func asOfDate(c *gin.Context) (string, error) {
	d := c.Query("date")
	if d == "" {
		return timeclock.Day(time.Now()), nil
	}
	if _, err := time.Parse("2006-01-02", d); err != nil {
		return "", err
	}
	return d, nil
}

func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req models.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	date, err := asOfDate(c)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	rec := timeclock.CheckIn(req.EmployeeID, req.EmployeeName, req.Department, req.SupervisorID, date, time.Now())

	// The unique index on (employee_id, date) decides the race between
	// two simultaneous check-ins; whoever loses gets the conflict.
	if err := h.store.Insert(&rec); err != nil {
		if errors.Is(err, store.ErrDuplicateRecord) {
			fail(c, http.StatusConflict, "Already checked in today")
			return
		}
		log.Printf("Error creating attendance record: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to check in")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "record": rec})
}

func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	rec, ok := h.loadDayRecord(c)
	if !ok {
		return
	}

	if err := timeclock.CheckOut(rec, time.Now()); err != nil {
		switch {
		case errors.Is(err, timeclock.ErrAlreadyCheckedOut):
			fail(c, http.StatusConflict, "Already checked out today")
		case errors.Is(err, timeclock.ErrNotCheckedIn):
			fail(c, http.StatusBadRequest, "No check-in time on record")
		default:
			log.Printf("Error computing check-out: %v", err)
			fail(c, http.StatusInternalServerError, "Failed to check out")
		}
		return
	}

	if !h.save(c, rec) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "record": rec})
}

func (h *AttendanceHandler) BreakIn(c *gin.Context) {
	rec, ok := h.loadDayRecord(c)
	if !ok {
		return
	}

	if err := timeclock.BreakIn(rec, time.Now()); err != nil {
		switch {
		case errors.Is(err, timeclock.ErrAlreadyOnBreak):
			fail(c, http.StatusConflict, "Already on break")
		case errors.Is(err, timeclock.ErrAlreadyCheckedOut):
			fail(c, http.StatusConflict, "Already checked out today")
		default:
			log.Printf("Error starting break: %v", err)
			fail(c, http.StatusInternalServerError, "Failed to start break")
		}
		return
	}

	if !h.save(c, rec) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "record": rec})
}

func (h *AttendanceHandler) BreakOut(c *gin.Context) {
	rec, ok := h.loadDayRecord(c)
	if !ok {
		return
	}

	segment, err := timeclock.BreakOut(rec, time.Now())
	if err != nil {
		if errors.Is(err, timeclock.ErrNotOnBreak) {
			fail(c, http.StatusBadRequest, "Not currently on break")
			return
		}
		log.Printf("Error ending break: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to end break")
		return
	}

	if !h.save(c, rec) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"record":        rec,
		"breakDuration": fmt.Sprintf("%d minutes", segment),
	})
}

// loadDayRecord binds the employee action body and fetches the
// day-record it refers to, replying on any failure.
func (h *AttendanceHandler) loadDayRecord(c *gin.Context) (*models.AttendanceRecord, bool) {
	var req models.EmployeeActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return nil, false
	}

	date, err := asOfDate(c)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return nil, false
	}

	rec, err := h.store.GetByEmployeeAndDate(req.EmployeeID, date)
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			fail(c, http.StatusNotFound, "No attendance record found for today")
			return nil, false
		}
		log.Printf("Error loading attendance record: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to load attendance record")
		return nil, false
	}
	return rec, true
}

func (h *AttendanceHandler) save(c *gin.Context, rec *models.AttendanceRecord) bool {
	if err := h.store.Save(rec); err != nil {
		log.Printf("Error saving attendance record: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to save attendance record")
		return false
	}
	return true
}

func (h *AttendanceHandler) GetTodayStatus(c *gin.Context) {
	employeeID := c.Query("employeeId")
	if employeeID == "" {
		fail(c, http.StatusBadRequest, "employeeId is required")
		return
	}

	date, err := asOfDate(c)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	rec, err := h.store.GetByEmployeeAndDate(employeeID, date)
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			// Absence of a day-record is a normal answer, not an error.
			c.JSON(http.StatusOK, gin.H{"success": true, "record": nil})
			return
		}
		log.Printf("Error loading attendance record: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to load attendance record")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "record": rec})
}

func (h *AttendanceHandler) GetHistory(c *gin.Context) {
	filter := models.HistoryFilter{
		EmployeeID: c.Query("employeeId"),
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
	}
	for _, d := range []string{filter.StartDate, filter.EndDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			fail(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
	}

	records, err := h.store.History(filter)
	if err != nil {
		log.Printf("Error fetching attendance history: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch attendance history")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "records": records})
}

func (h *AttendanceHandler) GetTeamAttendance(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = timeclock.Day(time.Now())
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		fail(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	records, err := h.store.Team(c.Query("supervisorId"), date)
	if err != nil {
		log.Printf("Error fetching team attendance: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch team attendance")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "records": records})
}

func (h *AttendanceHandler) GetAllAttendance(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		fail(c, http.StatusBadRequest, "Invalid page")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		fail(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	filter := models.ListFilter{
		Page:       page,
		Limit:      limit,
		Date:       c.Query("date"),
		Department: c.Query("department"),
	}
	if filter.Date != "" {
		if _, err := time.Parse("2006-01-02", filter.Date); err != nil {
			fail(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
	}

	records, total, err := h.store.List(filter)
	if err != nil {
		log.Printf("Error fetching attendance records: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch attendance records")
		return
	}

	pages := 0
	if total > 0 {
		pages = (total + limit - 1) / limit
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"records": records,
		"pagination": models.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	})
}

func (h *AttendanceHandler) GetWeeklySummary(c *gin.Context) {
	anchor := c.Query("weekStart")
	if anchor == "" {
		anchor = timeclock.Day(time.Now())
	}

	weekStart, weekEnd, err := timeclock.WeekWindow(anchor)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid weekStart, expected YYYY-MM-DD")
		return
	}

	records, err := h.store.Week(c.Query("employeeId"), weekStart, weekEnd)
	if err != nil {
		log.Printf("Error fetching weekly attendance: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to fetch weekly summary")
		return
	}

	summary := timeclock.Summarize(records)
	summary.WeekStart = weekStart
	summary.WeekEnd = weekEnd

	c.JSON(http.StatusOK, gin.H{"success": true, "records": records, "summary": summary})
}
