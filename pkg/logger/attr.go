package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Gate records a gate name under the key "gate".
func Gate(name string) slog.Attr {
	return slog.String("gate", name)
}

// GateID records the gate identifier under the key "gate_id".
// If id is nil, it returns an empty Attr.
func GateID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("gate_id", id)
}

// Attempts records the poll attempt count under the key "attempts".
func Attempts(count int) slog.Attr {
	return slog.Int("attempts", count)
}

// Timeout records a wait deadline under the key "timeout".
func Timeout(d time.Duration) slog.Attr {
	return slog.Duration("timeout", d)
}

// Duration records an elapsed duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
