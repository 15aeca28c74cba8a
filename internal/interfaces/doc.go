// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - WorkoutStore: Workout log CRUD (internal/http/workouts.go)
//   - ExerciseStore: Exercise names and progression (internal/http/exercises.go)
//   - Pinger: Storage connectivity for /health (internal/http/health.go)
//   - Dialect: One storage backend (internal/database/dialect.go)
//
// ## External Service Interfaces
//
//   - Generator: Training tips (internal/tips/client.go)
//
// # Adding a New Storage Backend
//
//  1. Implement Dialect in internal/database/
//
//     type MySQL struct { DSN string }
//
//     func (d *MySQL) Name() string
//     func (d *MySQL) Dialector() gorm.Dialector
//     func (d *MySQL) NeedsInit() (bool, error)
//     func (d *MySQL) Discard() error
//     func (d *MySQL) Normalize(column string, value any) (any, error)
//
//  2. Add its URL scheme to ParseURL and its schema to internal/database/schema/
//
//  3. Add a compile-time check to checks.go
//
// # Adding a New Tip Provider
//
//  1. Implement Generator in internal/tips/
//
//     func (g *OllamaGenerator) GenerateTip(ctx context.Context, prompt string) (string, error)
//     func (g *OllamaGenerator) Name() string
//
//  2. Select it in entrypoint.go
//
// # Compile-Time Interface Checks
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for examples.
package interfaces
