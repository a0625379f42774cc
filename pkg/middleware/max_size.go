package middleware

import (
	"net/http"

	apperrors "smarttour/pkg/errors"
	httputil "smarttour/pkg/http"
)

// MaxRequestSize rejects bodies that declare a length above limit and caps
// the rest with http.MaxBytesReader, which DecodeBody maps to 413.
func MaxRequestSize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				_ = httputil.WriteError(w, apperrors.PayloadTooLarge(limit))
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
