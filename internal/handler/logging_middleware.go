package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs path, elapsed seconds and status code for every request.
func RequestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				// handler never called WriteHeader
				status = http.StatusOK
			}

			logger.Printf("Path: %s | Execution Time: %.4fs | Status Code: %d",
				r.URL.Path,
				time.Since(start).Seconds(),
				status,
			)
		})
	}
}
