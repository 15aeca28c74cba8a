package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/strength-log/internal/entities"
)

// ExerciseStore defines the read operations behind the analysis view.
type ExerciseStore interface {
	ListExerciseNames(ctx context.Context) ([]string, error)
	GetProgression(ctx context.Context, exerciseName string) (*entities.Progression, error)
}

type ExercisesController struct {
	store ExerciseStore
}

func NewExercisesController(store ExerciseStore) *ExercisesController {
	return &ExercisesController{store: store}
}

// ListExercises returns distinct exercise names, alphabetically
// GET /exercises
func (ec *ExercisesController) ListExercises(c *gin.Context) {
	names, err := ec.store.ListExerciseNames(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list exercises")
		return
	}
	c.JSON(http.StatusOK, names)
}

// GetAnalysis returns the weight progression for one exercise
// GET /analysis?exercise=NAME
func (ec *ExercisesController) GetAnalysis(c *gin.Context) {
	exercise, ok := c.GetQuery("exercise")
	if !ok {
		respondValidationError(c, "exercise is required")
		return
	}

	progression, err := ec.store.GetProgression(c.Request.Context(), exercise)
	if err != nil {
		respondInternalError(c, err, "get analysis")
		return
	}
	c.JSON(http.StatusOK, progression)
}
