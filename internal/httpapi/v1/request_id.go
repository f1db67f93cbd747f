package v1

import (
    "context"
    "net/http"

    chimw "github.com/go-chi/chi/v5/middleware"
    "github.com/google/uuid"
)

// RequestIDHeader carries the request correlation ID in both directions.
const RequestIDHeader = "X-Request-ID"

// requestID reuses an incoming X-Request-ID or generates a UUID, echoes it on
// the response and stores it under chi's request-id key.
func requestID(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        id := r.Header.Get(RequestIDHeader)
        if id == "" || len(id) > 128 {
            id = uuid.NewString()
        }
        w.Header().Set(RequestIDHeader, id)
        ctx := context.WithValue(r.Context(), chimw.RequestIDKey, id)
        next.ServeHTTP(w, r.WithContext(ctx))
    })
}

func requestIDFrom(ctx context.Context) string { return chimw.GetReqID(ctx) }
