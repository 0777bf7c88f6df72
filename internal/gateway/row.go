// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

package gateway

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Row is one result row with its column names in result order.
type Row struct {
	Columns []string
	Values  []any
}

// NewRow pairs alternating column names and values, e.g.
// NewRow("session_id", 1, "session_name", "OH practice").
func NewRow(pairs ...any) Row {
	var r Row
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Columns = append(r.Columns, fmt.Sprint(pairs[i]))
		r.Values = append(r.Values, pairs[i+1])
	}
	return r
}

// Get returns the value of column name.
func (r Row) Get(name string) (any, bool) {
	for i, c := range r.Columns {
		if c == name && i < len(r.Values) {
			return r.Values[i], true
		}
	}
	return nil, false
}

// First returns the value of the first column, or nil for an empty row.
func (r Row) First() any {
	if len(r.Values) == 0 {
		return nil
	}
	return r.Values[0]
}

// String renders the row as "col: value, col: value".
func (r Row) String() string {
	var b strings.Builder
	for i, c := range r.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c)
		b.WriteString(": ")
		if i < len(r.Values) {
			b.WriteString(FormatValue(r.Values[i]))
		}
	}
	return b.String()
}

// normalize converts driver-specific values into plain Go values for display.
func normalize(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case [16]byte:
		// UUID format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
		return fmt.Sprintf("%x-%x-%x-%x-%x", val[0:4], val[4:6], val[6:8], val[8:10], val[10:16])
	case []byte:
		return fmt.Sprintf("\\x%x", val)
	case string, bool, int16, int32, int64, float32, float64, time.Time:
		return val
	case driver.Valuer:
		// pgtype.Numeric, pgtype.Interval, etc.
		out, err := val.Value()
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return normalize(out)
	default:
		return val
	}
}

// FormatValue converts a value to its display representation.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case time.Time:
		return val.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Int64 extracts an integer id from a row value.
func Int64(v any) (int64, bool) {
	switch val := v.(type) {
	case int64:
		return val, true
	case int32:
		return int64(val), true
	case int16:
		return int64(val), true
	case int:
		return int64(val), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		return n, err == nil
	case driver.Valuer:
		out, err := val.Value()
		if err != nil || out == nil {
			return 0, false
		}
		return Int64(out)
	default:
		return 0, false
	}
}
