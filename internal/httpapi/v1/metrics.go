package v1

import (
    "errors"
    "net/http"
    "strconv"
    "time"

    chimw "github.com/go-chi/chi/v5/middleware"
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
    "github.com/prometheus/client_golang/prometheus/promhttp"

    "github.com/tinoosan/employees/internal/errs"
)

var (
    httpRequestsTotal = promauto.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "employees",
            Name:      "http_requests_total",
            Help:      "Total number of HTTP requests",
        },
        []string{"method", "status"},
    )
    httpRequestDuration = promauto.NewHistogramVec(
        prometheus.HistogramOpts{
            Namespace: "employees",
            Name:      "http_request_duration_seconds",
            Help:      "Duration of HTTP requests in seconds",
            Buckets:   prometheus.DefBuckets,
        },
        []string{"method", "status"},
    )
    employeeOpsTotal = promauto.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "employees",
            Name:      "store_operations_total",
            Help:      "Employee store operations by outcome",
        },
        []string{"op", "outcome"},
    )
)

func metricsHandler() http.Handler {
    return promhttp.Handler()
}

func metricsMiddleware(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
        start := time.Now()
        next.ServeHTTP(ww, r)
        status := strconv.Itoa(ww.Status())
        httpRequestsTotal.WithLabelValues(r.Method, status).Inc()
        httpRequestDuration.WithLabelValues(r.Method, status).Observe(time.Since(start).Seconds())
    })
}

// observeOp counts a service call as ok, not_found, invalid or error.
func observeOp(op string, err error) {
    outcome := "ok"
    switch {
    case err == nil:
    case errors.Is(err, errs.ErrNotFound):
        outcome = "not_found"
    case errors.Is(err, errs.ErrInvalid):
        outcome = "invalid"
    default:
        outcome = "error"
    }
    employeeOpsTotal.WithLabelValues(op, outcome).Inc()
}
