package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Row is one storage-native record.
type Row map[string]any

func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func (r Row) ID() string { return r.String("id") }

// String reads a text column. NULL reads as "".
func (r Row) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.UTC().Format(TimeFormat)
	default:
		return fmt.Sprint(v)
	}
}

// Float reads a numeric column; drivers hand numbers back as float64, int64 or text.
func (r Row) Float(key string) float64 {
	f, _ := toFloat(r[key])
	return f
}

func (r Row) Int(key string) int {
	return int(r.Float(key))
}

// Flag reads a boolean flag column stored as a numeric string.
func (r Row) Flag(key string) bool {
	return r.Float(key) > 0
}

// Time parses a timestamp column written with TimeFormat.
func (r Row) Time(key string) time.Time {
	switch v := r[key].(type) {
	case time.Time:
		return v
	case nil:
		return time.Time{}
	default:
		s := r.String(key)
		for _, layout := range []string{TimeFormat, time.RFC3339Nano, "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
		return time.Time{}
	}
}

// FlagValue is the storage form of a boolean flag.
func FlagValue(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// NullString stores optional text as NULL when empty.
func NullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	case []byte:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
