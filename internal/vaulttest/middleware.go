package vaulttest

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// HeaderRequestID is the request correlation header echoed by [Server].
const HeaderRequestID = "X-Request-ID"

// statusWriter records the status code and body size written by a handler.
type statusWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (w *statusWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// withRequestID reuses the caller's request id, or generates one, records it,
// echoes it back and attaches a request-scoped logger to the context.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID != "" {
			s.mu.Lock()
			s.requestIDs = append(s.requestIDs, requestID)
			s.mu.Unlock()
		} else {
			requestID = uuid.NewString()
		}

		l := s.Logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(HeaderRequestID, requestID)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContextOr(r.Context(), s.Logger)
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		log.Debug().
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Int("status", sw.status).
			Dur("duration", time.Since(start)).
			Int("size", sw.size).
			Send()
	})
}
