package log

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// MaskValue replaces redacted attribute values.
const MaskValue = "***REDACTED***"

// redactedKeys are attribute keys whose values are always masked.
var redactedKeys = map[string]bool{
	"password":   true,
	"passwd":     true,
	"pwd":        true,
	"pass":       true,
	"passphrase": true,
	"candidate":  true,
	"input":      true,
	"line":       true,
	"pin":        true,
	"secret":     true,
	"token":      true,
	"credential": true,
}

// redactedKeywords mask any key that contains them, such as "new_password".
var redactedKeywords = []string{
	"password", "passwd", "passphrase", "secret", "credential", "candidate",
}

// SecureHandler is an slog.Handler that masks password-bearing attributes
// before delegating to another handler. Groups are masked recursively.
type SecureHandler struct {
	handler slog.Handler
	extra   map[string]bool
}

// SecureHandlerOption configures a SecureHandler.
type SecureHandlerOption func(*SecureHandler)

// WithRedactedKeys masks additional attribute keys, compared case-insensitively.
func WithRedactedKeys(keys ...string) SecureHandlerOption {
	return func(h *SecureHandler) {
		for _, k := range keys {
			h.extra[strings.ToLower(k)] = true
		}
	}
}

// NewSecureHandler wraps handler. A nil handler wraps slog.Default().Handler().
func NewSecureHandler(handler slog.Handler, opts ...SecureHandlerOption) *SecureHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	h := &SecureHandler{handler: handler, extra: make(map[string]bool)}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Enabled delegates to the wrapped handler.
func (h *SecureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it on.
func (h *SecureHandler) Handle(ctx context.Context, r slog.Record) error {
	masked := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(h.mask(a))
		return true
	})
	return h.handler.Handle(ctx, masked)
}

// WithAttrs masks attrs before attaching them to the wrapped handler.
func (h *SecureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = h.mask(a)
	}
	return &SecureHandler{handler: h.handler.WithAttrs(masked), extra: h.extra}
}

// WithGroup returns a handler that nests subsequent attributes under name.
func (h *SecureHandler) WithGroup(name string) slog.Handler {
	return &SecureHandler{handler: h.handler.WithGroup(name), extra: h.extra}
}

func (h *SecureHandler) mask(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		masked := make([]slog.Attr, len(group))
		for i, ga := range group {
			masked[i] = h.mask(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(masked...)}
	}

	if h.isRedacted(a.Key) {
		return slog.String(a.Key, MaskValue)
	}
	return a
}

func (h *SecureHandler) isRedacted(key string) bool {
	k := strings.ToLower(key)
	if redactedKeys[k] || h.extra[k] {
		return true
	}
	for _, kw := range redactedKeywords {
		if strings.Contains(k, kw) {
			return true
		}
	}
	return false
}

// level maps the verbose flag to a minimum level: Debug when verbose, Warn otherwise.
func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewSecureLogger returns a text logger writing to w.
func NewSecureLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(verbose)}
	return slog.New(NewSecureHandler(slog.NewTextHandler(w, opts)))
}

// NewSecureJSONLogger returns a JSON logger writing to w.
func NewSecureJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(verbose)}
	return slog.New(NewSecureHandler(slog.NewJSONHandler(w, opts)))
}
