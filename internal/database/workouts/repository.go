// Package workouts provides the data access operations for logged workouts.
//
// Every operation borrows one connection and runs exactly one statement.
// Statements use '?' placeholders; the backend dialect rebinds them.
//
// # Usage
//
//	repo := workouts.NewRepository(db)
//	w, err := repo.CreateWorkout(ctx, entities.NewWorkout{ExerciseName: "Squat", WeightKg: 100, Sets: 5, Reps: 5})
package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/mrlokans/strength-log/internal/database"
	"github.com/mrlokans/strength-log/internal/entities"
)

const (
	selectWorkouts = `SELECT id, exercise_name, weight_kg, sets, reps, log_date
		FROM workout ORDER BY log_date DESC, id DESC`

	insertWorkout = `INSERT INTO workout (exercise_name, weight_kg, sets, reps, log_date)
		VALUES (?, ?, ?, ?, ?) RETURNING id, log_date`

	deleteWorkout = `DELETE FROM workout WHERE id = ?`

	selectExerciseNames = `SELECT DISTINCT exercise_name FROM workout ORDER BY exercise_name`

	selectProgression = `SELECT log_date, weight_kg FROM workout
		WHERE exercise_name = ? ORDER BY log_date ASC, id ASC`
)

// Repository handles all workout database operations.
type Repository struct {
	db       *database.Database
	now      func() time.Time
	location *time.Location
}

type Option func(*Repository)

// WithClock overrides the source of log_date timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

// WithLocation sets the time zone used for progression date labels.
func WithLocation(loc *time.Location) Option {
	return func(r *Repository) { r.location = loc }
}

// NewRepository creates a new workouts repository.
func NewRepository(db *database.Database, opts ...Option) *Repository {
	r := &Repository{
		db:       db,
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ListWorkouts returns every workout, newest first.
func (r *Repository) ListWorkouts(ctx context.Context) ([]entities.Workout, error) {
	workouts := []entities.Workout{}
	err := r.db.WithConn(ctx, func(conn *database.Conn) error {
		rows, err := conn.Query(selectWorkouts)
		if err != nil {
			return err
		}
		for _, row := range rows {
			w, err := workoutFromRow(row)
			if err != nil {
				return err
			}
			workouts = append(workouts, w)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	return workouts, nil
}

// CreateWorkout stamps the workout with the current time and stores it.
func (r *Repository) CreateWorkout(ctx context.Context, nw entities.NewWorkout) (*entities.Workout, error) {
	w := &entities.Workout{
		ExerciseName: nw.ExerciseName,
		WeightKg:     nw.WeightKg,
		Sets:         nw.Sets,
		Reps:         nw.Reps,
	}

	err := r.db.WithConn(ctx, func(conn *database.Conn) error {
		rows, err := conn.Query(insertWorkout, nw.ExerciseName, nw.WeightKg, nw.Sets, nw.Reps, r.now().Unix())
		if err != nil {
			return err
		}
		if len(rows) != 1 {
			return fmt.Errorf("insert returned %d rows", len(rows))
		}
		if w.ID, err = rows[0].Int64("id"); err != nil {
			return err
		}
		w.LogDate, err = rows[0].Int64("log_date")
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}
	return w, nil
}

// DeleteWorkout removes a workout by ID and returns the number of rows removed.
func (r *Repository) DeleteWorkout(ctx context.Context, id int64) (int64, error) {
	var affected int64
	err := r.db.WithConn(ctx, func(conn *database.Conn) error {
		var err error
		affected, err = conn.Exec(deleteWorkout, id)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete workout %d: %w", id, err)
	}
	return affected, nil
}

// ListExerciseNames returns each distinct exercise name once, alphabetically.
func (r *Repository) ListExerciseNames(ctx context.Context) ([]string, error) {
	names := []string{}
	err := r.db.WithConn(ctx, func(conn *database.Conn) error {
		rows, err := conn.Query(selectExerciseNames)
		if err != nil {
			return err
		}
		for _, row := range rows {
			name, err := row.Text("exercise_name")
			if err != nil {
				return err
			}
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise names: %w", err)
	}
	return names, nil
}

// GetProgression returns the weight series for one exercise, oldest first,
// labelled by calendar day.
func (r *Repository) GetProgression(ctx context.Context, exerciseName string) (*entities.Progression, error) {
	progression := &entities.Progression{
		Labels: []string{},
		Data:   []float64{},
	}
	err := r.db.WithConn(ctx, func(conn *database.Conn) error {
		rows, err := conn.Query(selectProgression, exerciseName)
		if err != nil {
			return err
		}
		for _, row := range rows {
			logDate, err := row.Int64("log_date")
			if err != nil {
				return err
			}
			weight, err := row.Float64("weight_kg")
			if err != nil {
				return err
			}
			progression.Labels = append(progression.Labels, time.Unix(logDate, 0).In(r.location).Format(time.DateOnly))
			progression.Data = append(progression.Data, weight)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get progression for %q: %w", exerciseName, err)
	}
	return progression, nil
}

func workoutFromRow(row database.Row) (entities.Workout, error) {
	var w entities.Workout
	var err error

	if w.ID, err = row.Int64("id"); err != nil {
		return w, err
	}
	if w.ExerciseName, err = row.Text("exercise_name"); err != nil {
		return w, err
	}
	if w.WeightKg, err = row.Float64("weight_kg"); err != nil {
		return w, err
	}
	sets, err := row.Int64("sets")
	if err != nil {
		return w, err
	}
	reps, err := row.Int64("reps")
	if err != nil {
		return w, err
	}
	if w.LogDate, err = row.Int64("log_date"); err != nil {
		return w, err
	}
	w.Sets, w.Reps = int(sets), int(reps)
	return w, nil
}
