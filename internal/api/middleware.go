package api

import (
	"context"
	"net/http"

	"github.com/golang/glog"
	"github.com/google/uuid"
)

type contextKey string

const correlationIDKey contextKey = "correlationId"

// correlationIDMiddleware stamps every request with an id, reusing an
// incoming X-Request-Id header when present, and threads it through the
// request context so handlers can log against it.
func correlationIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", id)

		ctx := context.WithValue(r.Context(), correlationIDKey, id)
		glog.V(1).Infof("request start: correlation_id=%s method=%s path=%s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func correlationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// corsMiddleware mirrors the original service's permissive "allow
// everything, tighten later" posture: any origin, the common verbs, and
// the correlation-id header.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-Id")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
