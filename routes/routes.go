package routes

import (
	"database/sql"

	"attendance_backend/handlers"
	"attendance_backend/middleware"
	"attendance_backend/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, db *sql.DB, jwtSecret []byte) {
	attendanceStore := store.NewPostgresStore(db)

	attendanceHandler := handlers.NewAttendanceHandler(attendanceStore)
	adminHandler := handlers.NewAdminHandler(attendanceStore)
	healthHandler := handlers.NewHealthHandler(db)

	r.GET("/health", healthHandler.HealthCheck)

	attendance := r.Group("/attendance")
	{
		// State-machine actions
		attendance.POST("/check-in", attendanceHandler.CheckIn)
		attendance.POST("/check-out", attendanceHandler.CheckOut)
		attendance.POST("/break-in", attendanceHandler.BreakIn)
		attendance.POST("/break-out", attendanceHandler.BreakOut)

		// Read-only reporting
		attendance.GET("/today", attendanceHandler.GetTodayStatus)
		attendance.GET("/history", attendanceHandler.GetHistory)
		attendance.GET("/team", attendanceHandler.GetTeamAttendance)
		attendance.GET("/all", attendanceHandler.GetAllAttendance)
		attendance.GET("/weekly-summary", attendanceHandler.GetWeeklySummary)
	}

	// Privileged overrides bypass the state machine and require an
	// admin or supervisor token.
	admin := r.Group("/attendance/admin")
	admin.Use(middleware.AdminAuth(jwtSecret))
	{
		admin.POST("/manual-entry", adminHandler.ManualEntry)
		admin.PUT("/:id", adminHandler.UpdateAttendance)
	}
}
