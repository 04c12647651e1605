package middleware

import (
	"log/slog"
	"slices"

	"hotel-reservation/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware applies cfg and always lets browsers send and read the
// request id, and read Retry-After from throttled auth calls.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allow := withHeaders(cfg.AllowHeaders, RequestIDHeader)
	expose := withHeaders(cfg.ExposeHeaders, RequestIDHeader, "Retry-After")

	slog.Info("CORS configured", "origins", cfg.AllowOrigins, "credentials", cfg.AllowCredentials)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allow,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

func withHeaders(base []string, extra ...string) []string {
	out := slices.Clone(base)
	for _, h := range extra {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
