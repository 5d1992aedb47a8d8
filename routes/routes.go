package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/puttdental/backend-allotment/config"
	"github.com/puttdental/backend-allotment/handlers"
	"github.com/puttdental/backend-allotment/middleware"
	"github.com/puttdental/backend-allotment/services"
	"github.com/puttdental/backend-allotment/store"
)

func SetupRoutes(router *gin.Engine, st store.Store, cfg *config.Config, reminders *services.ReminderService) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg)
	scheduleHandler := handlers.NewScheduleHandler(st, cfg)
	allocationHandler := handlers.NewAllocationHandler(st, cfg)
	profileHandler := handlers.NewProfileHandler(st, cfg)
	attendanceHandler := handlers.NewAttendanceHandler(st, cfg)
	timeBlockHandler := handlers.NewTimeBlockHandler(st, cfg)
	dutyHandler := handlers.NewDutyHandler(st, cfg)
	patientHandler := handlers.NewPatientHandler(st, cfg)
	reminderHandler := handlers.NewReminderHandler(st, reminders)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"message": "Server is running",
			"backend": st.Name(),
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/auth/me", authHandler.GetMe)

			// Day grid
			schedule := protected.Group("/schedule")
			{
				schedule.GET("", scheduleHandler.GetSchedule)
				schedule.PUT("", scheduleHandler.SaveSchedule)
				schedule.POST("/rows", scheduleHandler.CreateRow)
				schedule.PUT("/rows/:id", scheduleHandler.UpdateRow)
				schedule.DELETE("/rows/:id", scheduleHandler.DeleteRow)
				schedule.POST("/rows/:id/allocate", scheduleHandler.AllocateRow)
				schedule.POST("/allocate", scheduleHandler.AllocateAll)
			}

			// Allocation status and rules
			alloc := protected.Group("/allocation")
			{
				alloc.GET("/status", allocationHandler.GetStatusBoard)
				alloc.GET("/config", allocationHandler.GetConfig)
				alloc.PUT("/config", middleware.RoleMiddleware("admin"), allocationHandler.UpdateConfig)
			}

			// Staff profiles
			profiles := protected.Group("/profiles")
			{
				profiles.GET("", profileHandler.GetProfiles)
				profiles.POST("", profileHandler.UpsertProfile)
				profiles.PUT("/:id", profileHandler.UpsertProfile)
				profiles.DELETE("/:id", middleware.RoleMiddleware("admin"), profileHandler.DeleteProfile)
			}

			// Attendance
			attendance := protected.Group("/attendance")
			{
				attendance.GET("", attendanceHandler.GetAttendance)
				attendance.POST("/punch-in", attendanceHandler.PunchIn)
				attendance.POST("/punch-out", attendanceHandler.PunchOut)
			}

			// Time blocks
			timeBlocks := protected.Group("/time-blocks")
			{
				timeBlocks.GET("", timeBlockHandler.GetTimeBlocks)
				timeBlocks.POST("", timeBlockHandler.CreateTimeBlock)
				timeBlocks.DELETE("/:id", timeBlockHandler.DeleteTimeBlock)
			}

			// Duties
			duties := protected.Group("/duties")
			{
				duties.GET("", dutyHandler.GetDuties)
				duties.POST("", dutyHandler.CreateDuty)
				duties.PUT("/:id", dutyHandler.UpdateDuty)
			}
			dutyAssignments := protected.Group("/duty-assignments")
			{
				dutyAssignments.GET("", dutyHandler.GetDutyAssignments)
				dutyAssignments.POST("", dutyHandler.CreateDutyAssignment)
			}
			dutyRuns := protected.Group("/duty-runs")
			{
				dutyRuns.GET("", dutyHandler.GetDutyRuns)
				dutyRuns.POST("/start", dutyHandler.StartDutyRun)
				dutyRuns.POST("/:id/complete", dutyHandler.CompleteDutyRun)
			}

			// Patients
			patients := protected.Group("/patients")
			{
				patients.GET("", patientHandler.GetPatients)
				patients.POST("", patientHandler.CreatePatient)
			}

			// Reminders
			protected.GET("/reminders", reminderHandler.GetReminders)
		}
	}
}
