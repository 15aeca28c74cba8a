package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/strength-log/internal/entities"
)

// WorkoutStore defines database operations for workout management.
type WorkoutStore interface {
	ListWorkouts(ctx context.Context) ([]entities.Workout, error)
	CreateWorkout(ctx context.Context, w entities.NewWorkout) (*entities.Workout, error)
	DeleteWorkout(ctx context.Context, id int64) (int64, error)
}

// createWorkoutRequest uses pointers so that zero values (a bodyweight
// exercise at 0 kg) pass while missing fields are rejected.
type createWorkoutRequest struct {
	ExerciseName string   `json:"exercise_name" binding:"required"`
	WeightKg     *float64 `json:"weight_kg" binding:"required"`
	Sets         *int     `json:"sets" binding:"required"`
	Reps         *int     `json:"reps" binding:"required"`
}

type WorkoutsController struct {
	store WorkoutStore
}

func NewWorkoutsController(store WorkoutStore) *WorkoutsController {
	return &WorkoutsController{store: store}
}

// ListWorkouts returns all workouts, newest first
// GET /workouts
func (wc *WorkoutsController) ListWorkouts(c *gin.Context) {
	workouts, err := wc.store.ListWorkouts(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list workouts")
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// CreateWorkout logs a new workout
// POST /workouts
func (wc *WorkoutsController) CreateWorkout(c *gin.Context) {
	var req createWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	workout, err := wc.store.CreateWorkout(c.Request.Context(), entities.NewWorkout{
		ExerciseName: req.ExerciseName,
		WeightKg:     *req.WeightKg,
		Sets:         *req.Sets,
		Reps:         *req.Reps,
	})
	if err != nil {
		respondInternalError(c, err, "create workout")
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout removes a workout by ID
// DELETE /workouts/:id
func (wc *WorkoutsController) DeleteWorkout(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	affected, err := wc.store.DeleteWorkout(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "delete workout")
		return
	}
	if affected == 0 {
		respondNotFound(c, "Workout not found")
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Workout deleted"})
}
