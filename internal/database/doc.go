// Package database is the storage adapter for the workout log.
//
// # Backends
//
// A Dialect is chosen once from the connection string:
//
//	dialect, err := database.ParseURL(cfg.Database.URL)
//
// SQLite is the embedded default and is schema-initialized on first run.
// PostgreSQL is expected to be initialized already (see the init-db command).
//
// # Connections
//
// Open returns a pooled Database. Callers borrow one connection per unit of
// work through WithConn, which releases it on every exit path:
//
//	err := db.WithConn(ctx, func(conn *database.Conn) error {
//		rows, err := conn.Query("SELECT * FROM workout WHERE id = ?", id)
//		...
//	})
//
// Rows come back as Row values keyed by column name, with backend quirks
// (decimal text from PostgreSQL, []byte text) already normalized by the dialect.
//
// # Domain repositories
//
// Sub-packages (workouts/) hold the statements for one domain and depend only
// on Database, Conn and Row.
package database
