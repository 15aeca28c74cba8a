package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderRequestID = "X-Request-ID"

	ContextKeyRequestID = "request_id"
	ContextKeyLogger    = "logger"
)

// RequestIDMiddleware propagates the caller's X-Request-ID or assigns a new one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// AccessLogMiddleware stores a request-scoped logger in the context and
// writes one entry per request once the handler chain finishes.
func AccessLogMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLogger := logger.With(zap.String("request_id", c.GetString(ContextKeyRequestID)))
		c.Set(ContextKeyLogger, reqLogger)

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		switch {
		case status >= 500:
			reqLogger.Error("request", fields...)
		case status >= 400:
			reqLogger.Warn("request", fields...)
		default:
			reqLogger.Info("request", fields...)
		}
	}
}

// requestLogger returns the logger set by AccessLogMiddleware, or a no-op logger.
func requestLogger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(ContextKeyLogger); ok {
		if logger, ok := v.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.NewNop()
}

// SecurityHeadersMiddleware adds security headers to all responses.
// The CSP allows the chart library CDN used by the analysis view.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self' https://cdn.jsdelivr.net; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' data:; "+
				"connect-src 'self'; "+
				"manifest-src 'self'; "+
				"worker-src 'self'; "+
				"frame-ancestors 'none'")
		c.Next()
	}
}

// corsMiddleware allows the given origins; a single "*" allows any origin.
func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", HeaderRequestID},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
