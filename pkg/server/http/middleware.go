package http

import (
	"net/http"
	"time"

	"github.com/netfold/nautobot-mcp-server/pkg/logging"
)

// loggingResponseWriter captures the status code written by the wrapped
// handler. WriteHeader is recorded once; later calls are ignored.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.statusCode = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// RequestMiddleware logs every request with its method, path, status and
// duration. Health probes log at debug so they do not drown the log.
func RequestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(lrw, r)

		duration := time.Since(start)
		if r.URL.Path == healthEndpoint {
			logging.Debug("%s %s %d %s", r.Method, r.URL.Path, lrw.statusCode, duration)
			return
		}
		logging.Info("%s %s %d %s", r.Method, r.URL.Path, lrw.statusCode, duration)
	})
}
