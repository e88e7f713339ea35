package logger

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"time"
)

// ServiceHandler implements slog.Handler, emitting one JSON object per
// record: severity, message, time, plus a data map with the attributes.
type ServiceHandler struct {
	level slog.Level
	out   io.Writer
	attrs []slog.Attr
}

func NewServiceHandler(level slog.Level) slog.Handler {
	return &ServiceHandler{level: level, out: os.Stdout}
}

func (h *ServiceHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

func (h *ServiceHandler) Handle(_ context.Context, r slog.Record) error {
	event := map[string]any{
		"severity": severity(r.Level),
		"message":  r.Message,
		"time":     r.Time.Format(time.RFC3339Nano),
	}

	data := make(map[string]any)
	for _, a := range h.attrs {
		data[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})
	if len(data) > 0 {
		event["data"] = data
	}

	b, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = h.out.Write(append(b, '\n'))
	return err
}

func (h *ServiceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

func (h *ServiceHandler) WithGroup(_ string) slog.Handler {
	// flat event format, groups are not represented
	return h
}

// ---- Helpers ----

func severity(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARNING"
	case slog.LevelError:
		return "ERROR"
	default:
		return "DEFAULT"
	}
}
