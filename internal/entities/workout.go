package entities

// Workout is one logged exercise entry. ID and LogDate are assigned by the server.
type Workout struct {
	ID           int64   `json:"id"`
	ExerciseName string  `json:"exercise_name"`
	WeightKg     float64 `json:"weight_kg"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	LogDate      int64   `json:"log_date"` // Unix seconds
}

// NewWorkout holds the client-supplied fields of a workout.
type NewWorkout struct {
	ExerciseName string
	WeightKg     float64
	Sets         int
	Reps         int
}

// Progression is the weight time series for one exercise, shaped for charting.
// Labels and Data always have the same length.
type Progression struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}
