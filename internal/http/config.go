package http

import "go.uber.org/zap"

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	WorkoutStore  WorkoutStore
	ExerciseStore ExerciseStore
	TipGenerator  TipGenerator
	Database      Pinger

	// UI paths
	FrontendDir string

	// Application info
	Version string

	// Empty disables CORS
	CORSAllowedOrigins []string

	Logger *zap.Logger
}
