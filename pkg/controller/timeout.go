package controller

import (
	"net/http"
	"time"
)

// TimeoutBody is the response body of requests cut off by WithTimeout.
const TimeoutBody = `{"code":"TIMEOUT","message":"request timed out"}`

// jsonTimeoutWriter labels the 503 written by http.TimeoutHandler as JSON.
type jsonTimeoutWriter struct {
	http.ResponseWriter
}

func (w *jsonTimeoutWriter) WriteHeader(code int) {
	if code == http.StatusServiceUnavailable && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *jsonTimeoutWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// WithTimeout bounds the handling of each request by d. Requests running
// longer get 503 Service Unavailable with TimeoutBody. A non-positive d
// returns next unchanged.
func WithTimeout(next http.Handler, d time.Duration) http.Handler {
	if d <= 0 {
		return next
	}

	th := http.TimeoutHandler(next, d, TimeoutBody)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		th.ServeHTTP(&jsonTimeoutWriter{ResponseWriter: w}, r)
	})
}
