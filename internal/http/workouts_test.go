package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/strength-log/internal/entities"
)

type mockWorkoutStore struct {
	workouts  []entities.Workout
	created   []entities.NewWorkout
	deleted   []int64
	deleteHit int64
	err       error
}

func (m *mockWorkoutStore) ListWorkouts(ctx context.Context) ([]entities.Workout, error) {
	return m.workouts, m.err
}

func (m *mockWorkoutStore) CreateWorkout(ctx context.Context, w entities.NewWorkout) (*entities.Workout, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, w)
	return &entities.Workout{
		ID:           int64(len(m.created)),
		ExerciseName: w.ExerciseName,
		WeightKg:     w.WeightKg,
		Sets:         w.Sets,
		Reps:         w.Reps,
		LogDate:      1700000000,
	}, nil
}

func (m *mockWorkoutStore) DeleteWorkout(ctx context.Context, id int64) (int64, error) {
	m.deleted = append(m.deleted, id)
	return m.deleteHit, m.err
}

func setupWorkoutsRouter(store *mockWorkoutStore) *gin.Engine {
	controller := NewWorkoutsController(store)
	router := gin.New()
	router.GET("/workouts", controller.ListWorkouts)
	router.POST("/workouts", controller.CreateWorkout)
	router.DELETE("/workouts/:id", controller.DeleteWorkout)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestWorkoutsController_ListWorkouts(t *testing.T) {
	t.Run("returns workouts as stored", func(t *testing.T) {
		store := &mockWorkoutStore{workouts: []entities.Workout{
			{ID: 2, ExerciseName: "Squat", WeightKg: 100, Sets: 5, Reps: 5, LogDate: 1700086400},
			{ID: 1, ExerciseName: "Bench", WeightKg: 60, Sets: 3, Reps: 8, LogDate: 1700000000},
		}}
		router := setupWorkoutsRouter(store)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/workouts", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var got []entities.Workout
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, store.workouts, got)
	})

	t.Run("empty log is an empty array", func(t *testing.T) {
		router := setupWorkoutsRouter(&mockWorkoutStore{workouts: []entities.Workout{}})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/workouts", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("store failure is a 500 with detail", func(t *testing.T) {
		router := setupWorkoutsRouter(&mockWorkoutStore{err: errors.New("database is locked")})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/workouts", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"detail":"database is locked"}`, w.Body.String())
	})
}

func TestWorkoutsController_CreateWorkout(t *testing.T) {
	t.Run("creates and echoes the workout", func(t *testing.T) {
		store := &mockWorkoutStore{}
		router := setupWorkoutsRouter(store)

		w := postJSON(router, "/workouts", `{"exercise_name":"Squat","weight_kg":100.5,"sets":5,"reps":5}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var got entities.Workout
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, "Squat", got.ExerciseName)
		assert.Equal(t, 100.5, got.WeightKg)
		assert.Equal(t, int64(1700000000), got.LogDate)
		require.Len(t, store.created, 1)
	})

	t.Run("zero weight is accepted", func(t *testing.T) {
		store := &mockWorkoutStore{}
		router := setupWorkoutsRouter(store)

		w := postJSON(router, "/workouts", `{"exercise_name":"Pull-up","weight_kg":0,"sets":3,"reps":10}`)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, store.created, 1)
		assert.Equal(t, 0.0, store.created[0].WeightKg)
	})

	invalid := []struct {
		name string
		body string
	}{
		{"missing weight", `{"exercise_name":"Squat","sets":5,"reps":5}`},
		{"missing sets", `{"exercise_name":"Squat","weight_kg":100,"reps":5}`},
		{"missing reps", `{"exercise_name":"Squat","weight_kg":100,"sets":5}`},
		{"missing name", `{"weight_kg":100,"sets":5,"reps":5}`},
		{"weight as text", `{"exercise_name":"Squat","weight_kg":"heavy","sets":5,"reps":5}`},
		{"fractional sets", `{"exercise_name":"Squat","weight_kg":100,"sets":2.5,"reps":5}`},
		{"malformed json", `{"exercise_name":`},
	}
	for _, tt := range invalid {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			store := &mockWorkoutStore{}
			router := setupWorkoutsRouter(store)

			w := postJSON(router, "/workouts", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, w.Body.String(), `"detail"`)
			assert.Empty(t, store.created)
		})
	}

	t.Run("store failure is a 500", func(t *testing.T) {
		router := setupWorkoutsRouter(&mockWorkoutStore{err: errors.New("no such table: workout")})

		w := postJSON(router, "/workouts", `{"exercise_name":"Squat","weight_kg":100,"sets":5,"reps":5}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"detail":"no such table: workout"}`, w.Body.String())
	})
}

func TestWorkoutsController_DeleteWorkout(t *testing.T) {
	t.Run("deletes an existing workout", func(t *testing.T) {
		store := &mockWorkoutStore{deleteHit: 1}
		router := setupWorkoutsRouter(store)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("DELETE", "/workouts/7", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Workout deleted"}`, w.Body.String())
		assert.Equal(t, []int64{7}, store.deleted)
	})

	t.Run("missing workout is a 404", func(t *testing.T) {
		router := setupWorkoutsRouter(&mockWorkoutStore{deleteHit: 0})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("DELETE", "/workouts/999", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail":"Workout not found"}`, w.Body.String())
	})

	t.Run("non-numeric id is a 422", func(t *testing.T) {
		store := &mockWorkoutStore{}
		router := setupWorkoutsRouter(store)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("DELETE", "/workouts/abc", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Empty(t, store.deleted)
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		router := setupWorkoutsRouter(&mockWorkoutStore{err: errors.New("connection refused")})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("DELETE", "/workouts/1", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
