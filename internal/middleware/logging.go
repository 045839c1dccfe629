package middleware

import (
	"net/http"
	"time"

	"pet-daycare/internal/platform/logger"
	"pet-daycare/internal/platform/metrics"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLog escribe una línea por request con el logger del ctx.
// 5xx salen en error, 4xx en warn, el resto en info.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		fields := map[string]any{
			"method":      r.Method,
			"route":       metrics.RoutePattern(r),
			"path":        r.URL.Path,
			"status":      status,
			"bytes":       ww.BytesWritten(),
			"duration_ms": time.Since(start).Milliseconds(),
		}

		l := logger.FromContext(r.Context())
		switch {
		case status >= 500:
			l.Error("http request", fields)
		case status >= 400:
			l.Warn("http request", fields)
		default:
			l.Info("http request", fields)
		}
	})
}
