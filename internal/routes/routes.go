package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/or-harmony/internal/config"
	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/events"
	"github.com/BruksfildServices01/or-harmony/internal/handlers"
	"github.com/BruksfildServices01/or-harmony/internal/infra/slotlock"
	"github.com/BruksfildServices01/or-harmony/internal/middleware"
	ucBoard "github.com/BruksfildServices01/or-harmony/internal/usecase/board"
	ucDirectory "github.com/BruksfildServices01/or-harmony/internal/usecase/directory"
	ucScheduling "github.com/BruksfildServices01/or-harmony/internal/usecase/scheduling"
	ucTimeOff "github.com/BruksfildServices01/or-harmony/internal/usecase/timeoff"
)

// Deps are the singletons built in main. Locker and Avatars may be nil.
type Deps struct {
	Config     *config.Config
	Log        *zap.Logger
	Repo       domain.Repository
	Locker     slotlock.Locker
	Avatars    ucDirectory.ObjectStore
	Dispatcher *events.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware(d.Config.CORSAllowedOrigins))

	// ======================================================
	// USE CASES
	// ======================================================
	facade := ucScheduling.NewFacade(d.Repo, d.Locker, d.Dispatcher)

	var avatars *ucDirectory.AvatarUploader
	if d.Avatars != nil {
		avatars = ucDirectory.NewAvatarUploader(d.Avatars)
	}
	doctors := ucDirectory.NewDoctors(d.Repo, avatars, d.Dispatcher)
	rooms := ucDirectory.NewRooms(d.Repo, d.Dispatcher)

	timeOff := ucTimeOff.NewService(d.Repo, d.Dispatcher)

	getBoard := ucBoard.NewGetBoard(d.Repo)
	getAbsences := ucBoard.NewGetAbsenceReport(d.Repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	doctorHandler := handlers.NewDoctorHandler(doctors, d.Log)
	roomHandler := handlers.NewRoomHandler(rooms, facade.AvailableSlots, d.Log)
	surgeryHandler := handlers.NewSurgeryHandler(facade, d.Log)
	assignmentHandler := handlers.NewAssignmentHandler(facade, d.Log)
	timeOffHandler := handlers.NewTimeOffHandler(timeOff, d.Log)
	dashboardHandler := handlers.NewDashboardHandler(getBoard, getAbsences, d.Config.Timezone, d.Log)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// DIRECTORY
		// ------------------------------
		api.GET("/doctors", doctorHandler.List)
		api.POST("/doctors", doctorHandler.Create)
		api.GET("/doctors/:id", doctorHandler.Get)
		api.PATCH("/doctors/:id", doctorHandler.Update)
		api.DELETE("/doctors/:id", doctorHandler.Delete)
		api.POST("/doctors/:id/deactivate", doctorHandler.Deactivate)
		api.POST("/doctors/:id/avatar", doctorHandler.UploadAvatar)

		api.GET("/operating-rooms", roomHandler.List)
		api.POST("/operating-rooms", roomHandler.Create)
		api.GET("/operating-rooms/:id", roomHandler.Get)
		api.PATCH("/operating-rooms/:id", roomHandler.Update)
		api.DELETE("/operating-rooms/:id", roomHandler.Delete)
		api.POST("/operating-rooms/:id/deactivate", roomHandler.Deactivate)
		api.GET("/operating-rooms/:id/available-slots", roomHandler.AvailableSlots)

		// ------------------------------
		// SURGERIES
		// ------------------------------
		api.GET("/surgeries", surgeryHandler.List)
		api.POST("/surgeries", surgeryHandler.Create)
		api.GET("/surgeries/conflict", surgeryHandler.Conflict)
		api.GET("/surgeries/:id", surgeryHandler.Get)
		api.PATCH("/surgeries/:id", surgeryHandler.Update)
		api.DELETE("/surgeries/:id", surgeryHandler.Delete)

		// ------------------------------
		// ASSIGNMENTS
		// ------------------------------
		api.GET("/assignments", assignmentHandler.List)
		api.POST("/assignments", assignmentHandler.Create)
		api.GET("/assignments/:id", assignmentHandler.Get)
		api.PATCH("/assignments/:id", assignmentHandler.Update)
		api.DELETE("/assignments/:id", assignmentHandler.Delete)

		api.GET("/availability/doctors", assignmentHandler.AvailableDoctors)

		// ------------------------------
		// TIME-OFF
		// ------------------------------
		api.GET("/time-off", timeOffHandler.List)
		api.POST("/time-off", timeOffHandler.Create)
		api.GET("/time-off/approved", timeOffHandler.Approved)
		api.GET("/time-off/:id", timeOffHandler.Get)
		api.PATCH("/time-off/:id/status", timeOffHandler.UpdateStatus)

		// ------------------------------
		// READ MODELS
		// ------------------------------
		api.GET("/dashboard", dashboardHandler.Board)
		api.GET("/reports/absences", dashboardHandler.Absences)
	}
}
