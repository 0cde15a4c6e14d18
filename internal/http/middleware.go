package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ctxKey int

const (
	visitorIDKey ctxKey = iota
)

const (
	visitorHeader = "X-Visitor-ID"
	visitorCookie = "visitor_id"
	visitorMaxAge = 365 * 24 * 60 * 60
)

// VisitorMiddleware identifies the browser profile a cart belongs to. The id
// comes from the X-Visitor-ID header or the visitor_id cookie; anything that
// is not a UUID is replaced with a fresh one and set as a cookie.
func VisitorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visitorID := r.Header.Get(visitorHeader)
		if visitorID == "" {
			if c, err := r.Cookie(visitorCookie); err == nil {
				visitorID = c.Value
			}
		}

		if _, err := uuid.Parse(visitorID); err != nil {
			visitorID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     visitorCookie,
				Value:    visitorID,
				Path:     "/",
				MaxAge:   visitorMaxAge,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), visitorIDKey, visitorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDMiddleware echoes the request id assigned by chi's RequestID middleware.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requestID := middleware.GetReqID(r.Context()); requestID != "" {
			w.Header().Set("X-Request-ID", requestID)
		}
		next.ServeHTTP(w, r)
	})
}

// LoggerMiddleware writes one structured line per request.
func LoggerMiddleware(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"duration":   time.Since(start).String(),
				"request_id": middleware.GetReqID(r.Context()),
			}).Info("request handled")
		})
	}
}

func getVisitorIDFromContext(ctx context.Context) string {
	if visitorID, ok := ctx.Value(visitorIDKey).(string); ok {
		return visitorID
	}
	return ""
}
