package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// LoadSchema opens the schema file at path, or the embedded schema for the
// dialect's backend when path is empty.
func LoadSchema(dialect Dialect, path string) (io.ReadCloser, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open schema file: %w", err)
		}
		return f, nil
	}

	f, err := schemaFS.Open("schema/" + dialect.Name() + ".sql")
	if err != nil {
		return nil, fmt.Errorf("no embedded schema for %s: %w", dialect.Name(), err)
	}
	return f, nil
}

// Initialize applies a schema on a dedicated connection. All statements run in
// one transaction: committed together or rolled back together. The connection
// is closed on every path.
func Initialize(ctx context.Context, dialect Dialect, schema io.Reader, opts Options) error {
	log := opts.logger()
	log.Info("initializing database", zap.String("backend", dialect.Name()))

	content, err := io.ReadAll(schema)
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}
	statements := splitStatements(string(content))
	if len(statements) == 0 {
		return errors.New("schema contains no statements")
	}

	db, err := gorm.Open(dialect.Dialector(), &gorm.Config{
		Logger: newGormLogger(opts),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", dialect.Name(), err)
	}
	defer func() {
		sqlDB, dbErr := db.DB()
		if dbErr == nil {
			dbErr = sqlDB.Close()
		}
		if dbErr != nil {
			log.Warn("failed to close initialization connection", zap.Error(dbErr))
		}
	}()

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range statements {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("statement %q: %w", firstLine(stmt), err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error("error initializing database, rolled back", zap.Error(err))
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Info("database initialized", zap.Int("statements", len(statements)))
	return nil
}

// InitializeIfNeeded applies the schema only when the dialect reports first run.
// A failed first run discards the half-created store so the next start retries.
func InitializeIfNeeded(ctx context.Context, dialect Dialect, schemaPath string, opts Options) (bool, error) {
	needed, err := dialect.NeedsInit()
	if err != nil {
		return false, err
	}
	if !needed {
		return false, nil
	}

	schema, err := LoadSchema(dialect, schemaPath)
	if err != nil {
		return false, err
	}
	defer schema.Close()

	if err := Initialize(ctx, dialect, schema, opts); err != nil {
		if discardErr := dialect.Discard(); discardErr != nil {
			opts.logger().Warn("failed to discard partially initialized database", zap.Error(discardErr))
		}
		return false, err
	}
	return true, nil
}

// splitStatements breaks a script on ';', dropping '--' comment lines and blanks.
func splitStatements(script string) []string {
	var lines []string
	for _, line := range strings.Split(script, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		lines = append(lines, line)
	}

	var statements []string
	for _, stmt := range strings.Split(strings.Join(lines, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func firstLine(stmt string) string {
	if i := strings.IndexByte(stmt, '\n'); i >= 0 {
		return stmt[:i]
	}
	return stmt
}
