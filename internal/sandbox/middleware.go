package sandbox

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

const sandboxTracer = "mihalio25/yandex-market-partner-api/sandbox"

type ContextKey string

const (
	ContextKeyReqID ContextKey = "req_id"

	HeaderKeyAPIKey string = "Api-Key"
	HeaderKeyOAuth  string = "Authorization"
)

func logRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(res http.ResponseWriter, req *http.Request) {
				requestID := uuid.New()

				ctx := context.WithValue(req.Context(), ContextKeyReqID, requestID)
				logger := log.With().
					Str("request_id", requestID.String()).
					Logger()

				start := time.Now()
				next.ServeHTTP(res, req.WithContext(logger.WithContext(ctx)))

				logger.Info().
					Str("method", req.Method).
					Str("path", req.URL.String()).
					Str("duration", time.Since(start).String()).
					Msg("request handled")
			},
		)
	}
}

func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(res http.ResponseWriter, req *http.Request) {
			tr := otel.Tracer(sandboxTracer)
			ctx, span := tr.Start(req.Context(), fmt.Sprintf("%s %s", req.Method, req.RequestURI))
			defer span.End()

			next.ServeHTTP(res, req.WithContext(ctx))
		},
	)
}

// AuthenticateMiddleware accepts any non-empty Api-Key or OAuth credential.
// The emulator checks presence, not value.
func AuthenticateMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(res http.ResponseWriter, req *http.Request) {
				if req.Method == http.MethodOptions {
					next.ServeHTTP(res, req)
					return
				}

				tr := otel.Tracer(sandboxTracer)

				_, authSpan := tr.Start(req.Context(), "authentication")
				defer authSpan.End()

				if req.Header.Get(HeaderKeyAPIKey) == "" && req.Header.Get(HeaderKeyOAuth) == "" {
					authSpan.SetStatus(codes.Error, ErrUnauthorized.Error())
					authSpan.RecordError(ErrUnauthorized)

					writeError(res, http.StatusUnauthorized, ErrUnauthorized)

					return
				}

				next.ServeHTTP(res, req)
			},
		)
	}
}

func SetContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(res http.ResponseWriter, req *http.Request) {
			res.Header().Set("Content-Type", "application/json; charset=utf-8")
			next.ServeHTTP(res, req)
		},
	)
}

func MetricsMiddleware(metrics *Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(res http.ResponseWriter, req *http.Request) {
				start := time.Now()
				recorder := &statusRecorder{ResponseWriter: res, status: http.StatusOK}

				next.ServeHTTP(recorder, req)

				route := chi.RouteContext(req.Context()).RoutePattern()
				status := strconv.Itoa(recorder.status)

				metrics.HTTPRequestTotal.WithLabelValues(route, status).Inc()
				metrics.HTTPRequestDuration.
					WithLabelValues(route, req.Method, status).
					Observe(time.Since(start).Seconds())
			},
		)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}
