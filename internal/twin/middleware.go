package twin

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/bobmcallan/finqa/internal/common"
)

const bearerPrefix = "Bearer "

// responseWriter wraps http.ResponseWriter to capture status code and bytes written.
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += n
	return n, err
}

// recoveryMiddleware catches panics and returns 500.
func recoveryMiddleware(logger *common.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error().
						Str("panic", fmt.Sprintf("%v", rec)).
						Str("path", r.URL.Path).
						Msg("Panic recovered in HTTP handler")
					writeInternalError(w, errors.New("Internal server error"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// correlationIDMiddleware extracts or generates a correlation ID.
func correlationIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		corrID := r.Header.Get("X-Request-ID")
		if corrID == "" {
			corrID = r.Header.Get("X-Correlation-ID")
		}
		if corrID == "" {
			corrID = uuid.New().String()[:8]
		}
		w.Header().Set("X-Correlation-ID", corrID)
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests.
func loggingMiddleware(logger *common.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			event := logger.Debug()
			if rw.statusCode >= 500 {
				event = logger.Error()
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.statusCode).
				Int("bytes", rw.bytesWritten).
				Dur("duration", time.Since(start)).
				Str("correlation_id", w.Header().Get("X-Correlation-ID")).
				Msg("HTTP request")
		})
	}
}

// requireBearer authenticates the request from its Authorization header and
// stores the user in the request context. Failures are answered with the
// token error bodies.
func (t *Twin) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			t.catalog.Write(w, errMissingBearerToken)
			return
		}
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			t.catalog.Write(w, errInvalidTokenType)
			return
		}

		claims, err := t.tokens.validate(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				t.catalog.Write(w, errExpiredBearerToken)
				return
			}
			t.catalog.Write(w, errInvalidTokenFormat)
			return
		}

		if tokenType, _ := claims["type"].(string); tokenType != tokenTypeAccess {
			t.catalog.Write(w, errInvalidTokenFormat)
			return
		}
		sub, _ := claims["sub"].(string)
		user, ok := t.store.User(sub)
		if !ok {
			t.catalog.Write(w, errInvalidTokenFormat)
			return
		}

		uc := &common.UserContext{UserID: user.ID, Name: user.Name, Email: user.Email}
		next.ServeHTTP(w, r.WithContext(common.WithUserContext(r.Context(), uc)))
	})
}
