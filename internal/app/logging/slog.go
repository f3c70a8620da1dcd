package logging

import (
	"context"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapHandler sends slog records to a zap core so that the services, which
// log through slog, share the CLI's zap output
type zapHandler struct {
	core   zapcore.Core
	fields []zapcore.Field
	group  string
}

// NewSlogLogger wraps logger as a *slog.Logger
func NewSlogLogger(logger *zap.Logger) *slog.Logger {
	return slog.New(&zapHandler{core: logger.Core()})
}

func (h *zapHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.core.Enabled(zapLevel(level))
}

func (h *zapHandler) Handle(_ context.Context, r slog.Record) error {
	entry := zapcore.Entry{
		Level:   zapLevel(r.Level),
		Time:    r.Time,
		Message: r.Message,
	}
	ce := h.core.Check(entry, nil)
	if ce == nil {
		return nil
	}

	fields := make([]zapcore.Field, 0, len(h.fields)+r.NumAttrs())
	fields = append(fields, h.fields...)
	r.Attrs(func(a slog.Attr) bool {
		fields = append(fields, h.field(a))
		return true
	})
	ce.Write(fields...)
	return nil
}

func (h *zapHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := make([]zapcore.Field, 0, len(h.fields)+len(attrs))
	fields = append(fields, h.fields...)
	for _, a := range attrs {
		fields = append(fields, h.field(a))
	}
	return &zapHandler{core: h.core, fields: fields, group: h.group}
}

func (h *zapHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &zapHandler{core: h.core, fields: h.fields, group: group}
}

func (h *zapHandler) field(a slog.Attr) zapcore.Field {
	key := a.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return zap.String(key, v.String())
	case slog.KindInt64:
		return zap.Int64(key, v.Int64())
	case slog.KindUint64:
		return zap.Uint64(key, v.Uint64())
	case slog.KindFloat64:
		return zap.Float64(key, v.Float64())
	case slog.KindBool:
		return zap.Bool(key, v.Bool())
	case slog.KindDuration:
		return zap.Duration(key, v.Duration())
	case slog.KindTime:
		return zap.Time(key, v.Time())
	default:
		if err, ok := v.Any().(error); ok {
			return zap.NamedError(key, err)
		}
		return zap.Any(key, v.Any())
	}
}

func zapLevel(level slog.Level) zapcore.Level {
	switch {
	case level >= slog.LevelError:
		return zapcore.ErrorLevel
	case level >= slog.LevelWarn:
		return zapcore.WarnLevel
	case level >= slog.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
