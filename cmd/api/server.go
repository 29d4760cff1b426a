package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"stablecard/internal/issuers"
	"stablecard/internal/metrics"
	"stablecard/internal/model"
)

type Server struct {
	port     int
	service  issuers.Service
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	newRelic *newrelic.Application

	allowedOrigins    []string
	staticDir         string
	readHeaderTimeout time.Duration

	httpServer *http.Server
}

type Option func(*Server)

// WithMetrics shares m with the server and exposes gatherer on /metrics.
func WithMetrics(m *metrics.Metrics, gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = gatherer
	}
}

// WithNewRelic reports every route as a New Relic transaction. A nil app
// leaves handlers untouched.
func WithNewRelic(app *newrelic.Application) Option {
	return func(s *Server) {
		s.newRelic = app
	}
}

func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		s.allowedOrigins = origins
	}
}

// WithStaticDir serves the built frontend from dir for every path no API
// route claims.
func WithStaticDir(dir string) Option {
	return func(s *Server) {
		s.staticDir = dir
	}
}

func WithReadHeaderTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.readHeaderTimeout = d
	}
}

func NewServer(port int, service issuers.Service, opts ...Option) *Server {
	registry := prometheus.NewRegistry()
	s := &Server{
		port:              port,
		service:           service,
		metrics:           metrics.New(registry),
		gatherer:          registry,
		allowedOrigins:    []string{"*"},
		readHeaderTimeout: 5 * time.Second,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%v", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.readHeaderTimeout,
	}

	return s
}

// Handler builds the full HTTP handler: routes plus the middleware chain.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	s.handle(router, "/issuers", s.listIssuers)
	s.handle(router, "/issuers/{id}", s.getIssuer)
	s.handle(router, "/compare", s.compare)
	s.handle(router, "/metadata", s.metadata)
	s.handle(router, "/health", s.health)
	router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	if s.staticDir != "" {
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(s.staticDir))).Methods(http.MethodGet)
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins(s.allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "X-Request-ID"}),
		handlers.ExposedHeaders([]string{"X-Request-ID"}),
	)

	return recoverPanics(requestID(logRequests(cors(router))))
}

func (s *Server) handle(router *mux.Router, route string, h http.HandlerFunc) {
	pattern, wrapped := newrelic.WrapHandleFunc(s.newRelic, route, s.observe(route, h))
	router.HandleFunc(pattern, wrapped).Methods(http.MethodGet)
}

func (s *Server) Run() error {
	log.Printf("listening requests at %v", s.httpServer.Addr)

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) listIssuers(w http.ResponseWriter, r *http.Request) {
	list := s.service.List(r.Context(), criteriaFromQuery(r.URL.Query()))
	if list == nil {
		list = []model.Issuer{}
	}

	writeJSON(w, http.StatusOK, list)
}

func (s *Server) getIssuer(w http.ResponseWriter, r *http.Request) {
	issuer, err := s.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, issuer)
}

func (s *Server) compare(w http.ResponseWriter, r *http.Request) {
	response := s.service.Compare(r.Context(), compareQueryFromQuery(r.URL.Query()))
	if response.Matches == nil {
		response.Matches = []model.ComparisonResult{}
	}

	writeJSON(w, http.StatusOK, response)
}

func (s *Server) metadata(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Metadata(r.Context()))
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:       "ok",
		IssuersCount: s.service.Count(),
	})
}
