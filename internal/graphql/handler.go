package graphql

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	gql "github.com/graphql-go/graphql"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/merqado/storefront/pkg/logger"
)

// Handler serves the GraphQL endpoint.
type Handler struct {
	schema gql.Schema

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewHandler creates a new GraphQL handler
func NewHandler(schema gql.Schema) *Handler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_graphql_requests_total",
			Help: "Total number of GraphQL requests",
		},
		[]string{"operation", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_graphql_request_duration_seconds",
			Help:    "Duration of GraphQL requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &Handler{
		schema:         schema,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// ServeGraphQL handles POST /graphql
func (h *Handler) ServeGraphQL(w http.ResponseWriter, r *http.Request) {
	var req graphqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Query == "" {
		h.respondError(w, http.StatusBadRequest, "Missing query")
		return
	}

	operation := req.OperationName
	if operation == "" {
		operation = "anonymous"
	}

	start := time.Now()
	result := gql.Do(gql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        r.Context(),
	})
	duration := time.Since(start).Seconds()

	status := "ok"
	if len(result.Errors) > 0 {
		status = "error"
		logger.Warn(r.Context()).
			Str("operation", operation).
			Int("error_count", len(result.Errors)).
			Msg("GraphQL request completed with errors")
	}
	h.requestLatency.WithLabelValues(operation).Observe(duration)
	h.requestCounter.WithLabelValues(operation, status).Inc()

	h.respondJSON(w, http.StatusOK, result)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			h.respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		h.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

// respondJSON sends a JSON response
func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// RegisterRoutes registers the GraphQL endpoint
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/graphql", h.ServeGraphQL).Methods("POST")
}

// RegisterHealthCheck registers health check endpoint
func (h *Handler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", h.HealthCheck(db)).Methods("GET")
}
