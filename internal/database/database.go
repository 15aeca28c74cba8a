package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options configures logging for connections opened by this package.
type Options struct {
	Logger   *zap.Logger
	LogLevel string // gorm SQL log level: silent, error, warn, info
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

type Database struct {
	DB      *gorm.DB
	dialect Dialect
}

// Open connects to the backend selected by dialect. gorm pings on open,
// so an unreachable server fails here rather than on the first request.
func Open(dialect Dialect, opts Options) (*Database, error) {
	db, err := gorm.Open(dialect.Dialector(), &gorm.Config{
		Logger: newGormLogger(opts),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", dialect.Name(), err)
	}

	opts.logger().Info("database connected", zap.String("backend", dialect.Name()))

	return &Database{DB: db, dialect: dialect}, nil
}

func (d *Database) Dialect() Dialect {
	return d.dialect
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// WithConn borrows a single connection from the pool for the duration of fn.
// The connection is returned to the pool whether fn succeeds, fails or panics.
func (d *Database) WithConn(ctx context.Context, fn func(conn *Conn) error) error {
	return d.DB.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		return fn(&Conn{
			db:      tx.Session(&gorm.Session{NewDB: true}),
			dialect: d.dialect,
		})
	})
}

// Conn is one borrowed connection. It is only valid inside WithConn.
type Conn struct {
	db      *gorm.DB
	dialect Dialect
}

// Query runs a statement that returns rows (SELECT, INSERT ... RETURNING).
func (c *Conn) Query(query string, args ...any) ([]Row, error) {
	rows, err := c.db.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRows(rows, c.dialect)
}

// Exec runs a statement without result rows and reports rows affected.
func (c *Conn) Exec(query string, args ...any) (int64, error) {
	result := c.db.Exec(query, args...)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
