package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/strength-log/internal/database"
	"github.com/mrlokans/strength-log/internal/database/workouts"
	"github.com/mrlokans/strength-log/internal/http"
	"github.com/mrlokans/strength-log/internal/tips"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ http.WorkoutStore = (*workouts.Repository)(nil)
var _ http.ExerciseStore = (*workouts.Repository)(nil)

// Health checks
var _ http.Pinger = (*database.Database)(nil)

// Storage backends
var _ database.Dialect = (*database.SQLite)(nil)
var _ database.Dialect = (*database.Postgres)(nil)

// =============================================================================
// External Services
// =============================================================================

var _ tips.Generator = (*tips.GeminiGenerator)(nil)
var _ tips.Generator = tips.Disabled{}
var _ http.TipGenerator = (*tips.GeminiGenerator)(nil)
var _ http.TipGenerator = tips.Disabled{}
