package logger

import (
	"time"

	"go.uber.org/zap"
)

// Standard HTTP fields

// RequestID creates a field for the request id.
func RequestID(v string) zap.Field {
	return zap.String("request_id", v)
}

// Method creates a field for the HTTP method.
func Method(v string) zap.Field {
	return zap.String("method", v)
}

// Path creates a field for the request path.
func Path(v string) zap.Field {
	return zap.String("path", v)
}

// Status creates a field for the HTTP status code.
func Status(v int) zap.Field {
	return zap.Int("status", v)
}

// Duration creates a field for the request duration.
func Duration(v time.Duration) zap.Field {
	return zap.Duration("duration", v)
}

// DurationMs creates a field for the duration in milliseconds.
func DurationMs(v int64) zap.Field {
	return zap.Int64("duration_ms", v)
}

// Bytes creates a field for the response size.
func Bytes(v int) zap.Field {
	return zap.Int("bytes", v)
}

// Business fields

// UserID creates a field for a user id.
func UserID(v string) zap.Field {
	return zap.String("user_id", v)
}

// HouseID creates a field for a house id.
func HouseID(v string) zap.Field {
	return zap.String("house_id", v)
}

// OwnerID creates a field for a house owner id.
func OwnerID(v string) zap.Field {
	return zap.String("owner_id", v)
}

// System fields

// Component creates a field for the component/module name.
func Component(v string) zap.Field {
	return zap.String("component", v)
}

// Op creates a field for the current operation.
func Op(v string) zap.Field {
	return zap.String("op", v)
}

// Err creates a field for an error.
func Err(err error) zap.Field {
	return zap.Error(err)
}

// Generic fields

// Count creates a field for a count.
func Count(v int) zap.Field {
	return zap.Int("count", v)
}

// String creates a generic string field.
func String(key, v string) zap.Field {
	return zap.String(key, v)
}

// Int creates a generic int field.
func Int(key string, v int) zap.Field {
	return zap.Int(key, v)
}

// Any creates a generic field for any value.
func Any(key string, v any) zap.Field {
	return zap.Any(key, v)
}
