// Package admin служебный HTTP: метрики Prometheus, проверка хранилища и
// операторская деактивация записей.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc/codes"

	"github.com/Leganyst/rentlok/internal/apperr"
	"github.com/Leganyst/rentlok/internal/health"
	"github.com/Leganyst/rentlok/internal/model"
	"github.com/Leganyst/rentlok/internal/service"
)

const RequestIDHeader = "X-Request-ID"

type ctxKey struct{}

// RequestID возвращает id запроса, выставленный middleware.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Deactivator деактивирует запись с каскадом (см. service.Services).
type Deactivator interface {
	Deactivate(ctx context.Context, kind model.Kind, id model.ID) (int64, error)
}

func NewRouter(gatherer prometheus.Gatherer, store health.Pinger, records Deactivator, logger *slog.Logger) *mux.Router {
	if logger == nil {
		logger = slog.Default()
	}

	r := mux.NewRouter()
	r.Use(requestID, accessLog(logger))
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.HandleFunc("/healthz", healthz(store)).Methods(http.MethodGet)
	r.HandleFunc("/v1/{kind}/{id:[0-9]+}/deactivate", deactivate(records)).Methods(http.MethodPost)
	return r
}

func NewServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

func accessLog(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			next.ServeHTTP(w, r)
			logger.DebugContext(r.Context(), "admin request",
				slog.String("request_id", RequestID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Duration("took", time.Since(started)),
			)
		})
	}
}

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func healthz(store health.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp, code := healthResponse{Status: "ok"}, http.StatusOK
		if err := store.PingContext(ctx); err != nil {
			resp, code = healthResponse{Status: "unavailable", Error: err.Error()}, http.StatusServiceUnavailable
		}
		writeJSON(w, code, resp)
	}
}

type deactivateResponse struct {
	Entity   string `json:"entity"`
	ID       uint64 `json:"id"`
	Affected int64  `json:"affected"`
}

type errorResponse struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}

func deactivate(records Deactivator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		id, err := strconv.ParseUint(vars["id"], 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		affected, err := records.Deactivate(r.Context(), model.Kind(vars["kind"]), model.ID(id))
		if err != nil {
			writeJSON(w, httpStatus(err), errorResponse{Code: string(apperr.CodeOf(err)), Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, deactivateResponse{Entity: vars["kind"], ID: id, Affected: affected})
	}
}

// httpStatus переводит ошибку ядра в HTTP-код через её gRPC-код.
func httpStatus(err error) int {
	if errors.Is(err, service.ErrUnknownKind) {
		return http.StatusNotFound
	}
	code := apperr.CodeOf(err)
	if code == "" {
		return http.StatusInternalServerError
	}
	switch code.GRPCCode() {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.FailedPrecondition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
