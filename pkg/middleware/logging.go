package middleware

import (
	"context"
	"net/http"
	"time"

	"smarttour/pkg/logger"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	bytes      int
	written    bool
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

func RequestLogging(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			id := requestID(r)

			r = r.WithContext(context.WithValue(r.Context(), RequestIDKey, id))
			w.Header().Set(RequestIDHeader, id)

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			reqLog := log.With("request_id", id, "method", r.Method, "path", r.URL.Path)

			reqLog.Debug("HTTP request started", "remote_addr", r.RemoteAddr)

			next.ServeHTTP(wrapped, r)

			attrs := []any{
				"status", wrapped.statusCode,
				"bytes", wrapped.bytes,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			switch {
			case wrapped.statusCode >= http.StatusInternalServerError:
				reqLog.Error("HTTP request completed", attrs...)
			case wrapped.statusCode >= http.StatusBadRequest:
				reqLog.Warn("HTTP request completed", attrs...)
			default:
				reqLog.Info("HTTP request completed", attrs...)
			}
		})
	}
}
