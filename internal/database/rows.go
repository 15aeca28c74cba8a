package database

import (
	"database/sql"
	"fmt"
	"strconv"
)

// Row maps column names to normalized values.
type Row map[string]any

// scanRows drains rows into Row values, passing every value through the dialect.
func scanRows(rows *sql.Rows, dialect Dialect) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var result []Row
	for rows.Next() {
		values := make([]any, len(columns))
		targets := make([]any, len(columns))
		for i := range values {
			targets[i] = &values[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, err
		}

		row := make(Row, len(columns))
		for i, column := range columns {
			v, err := dialect.Normalize(column, values[i])
			if err != nil {
				return nil, err
			}
			row[column] = v
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r Row) Int64(column string) (int64, error) {
	switch v := r[column].(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("column %s: %w", column, err)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("column %s: missing or null", column)
	default:
		return 0, fmt.Errorf("column %s: unexpected type %T", column, v)
	}
}

func (r Row) Float64(column string) (float64, error) {
	switch v := r[column].(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("column %s: %w", column, err)
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("column %s: missing or null", column)
	default:
		return 0, fmt.Errorf("column %s: unexpected type %T", column, v)
	}
}

func (r Row) Text(column string) (string, error) {
	switch v := r[column].(type) {
	case string:
		return v, nil
	case nil:
		return "", fmt.Errorf("column %s: missing or null", column)
	default:
		return fmt.Sprint(v), nil
	}
}
