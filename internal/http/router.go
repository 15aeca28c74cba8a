package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(AccessLogMiddleware(logger))
	router.Use(SecurityHeadersMiddleware())

	if len(cfg.CORSAllowedOrigins) > 0 {
		router.Use(corsMiddleware(cfg.CORSAllowedOrigins))
	}

	workoutsController := NewWorkoutsController(cfg.WorkoutStore)
	exercisesController := NewExercisesController(cfg.ExerciseStore)
	tipsController := NewTipsController(cfg.TipGenerator)
	healthController := NewHealthController(cfg.Database, cfg.Version)
	pwaController := NewPWAController(cfg.FrontendDir)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, MessageResponse{Message: "pong"})
	})
	router.GET("/health", healthController.Status)

	router.GET("/workouts", workoutsController.ListWorkouts)
	router.POST("/workouts", workoutsController.CreateWorkout)
	router.DELETE("/workouts/:id", workoutsController.DeleteWorkout)

	router.POST("/generate-tip", tipsController.GenerateTip)

	router.GET("/exercises", exercisesController.ListExercises)
	router.GET("/analysis", exercisesController.GetAnalysis)

	router.Static("/static", cfg.FrontendDir)
	router.NoRoute(pwaController.Serve)

	return router
}
