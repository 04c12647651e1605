package middleware

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"hotel-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	ctxRequestIDKey = "request_id"
	maxRequestIDLen = 64
)

// NewLogger builds the process logger and installs it as slog's default.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	loc := logLocation(cfg)
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.TimeKey {
				return a
			}
			if t, ok := a.Value.Any().(time.Time); ok {
				a.Value = slog.StringValue(t.In(loc).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// logLocation prefers a named zone and falls back to the fixed offset.
func logLocation(cfg config.LogConfig) *time.Location {
	if loc, err := time.LoadLocation(cfg.TimeZone); err == nil {
		return loc
	}
	return time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
}

// RequestLogger tags every request with an id and logs its outcome.
// Health probes are not logged.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := incomingRequestID(c)
		c.Set(ctxRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		start := time.Now()
		base := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		logger.LogAttrs(c.Request.Context(), slog.LevelDebug, "Request started", base...)

		c.Next()

		status := c.Writer.Status()
		attrs := append(base,
			slog.String("route", c.FullPath()),
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
		)
		if id, ok := GetUserID(c); ok {
			attrs = append(attrs, slog.String("user_id", id.String()))
		}
		if roles, ok := GetUserRoles(c); ok {
			attrs = append(attrs, slog.String("roles", strings.Join(roles.Strings(), ",")))
		}
		for _, p := range c.Params {
			attrs = append(attrs, slog.String("param_"+p.Key, p.Value))
		}
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		logger.LogAttrs(c.Request.Context(), levelForStatus(status), "Request completed", attrs...)
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// incomingRequestID trusts a caller-supplied id only when it is short and printable.
func incomingRequestID(c *gin.Context) string {
	id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
	if id == "" || len(id) > maxRequestIDLen || strings.ContainsFunc(id, func(r rune) bool { return r < 0x21 || r > 0x7e }) {
		return uuid.NewString()
	}
	return id
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}
