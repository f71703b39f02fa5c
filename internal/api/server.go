// Package api configures and exposes the HTTP server of the car lot: the
// GraphQL endpoint, the v1 REST API with its docs, metrics and pprof.
package api

import (
	"carlot/internal/api/graph"
	"carlot/internal/api/handler/v1handler"
	"carlot/internal/config"
	"carlot/internal/garage"
	"carlot/pkg/controller"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/graph-gophers/graphql-go/relay"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const (
	v1Prefix    = "/v1"
	pprofPrefix = "/debug/pprof/"
)

// Options holds configuration for the HTTP server.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds the handling of a single request. Zero disables it.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string

	// GraphQLPath is the HTTP path of the GraphQL endpoint.
	GraphQLPath string
	// GraphQLMaxDepth limits the nesting depth of GraphQL queries.
	GraphQLMaxDepth int
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,

		GraphQLPath:     cfg.GraphQL.Path,
		GraphQLMaxDepth: cfg.GraphQL.MaxDepth,
	}
}

type Deps struct {
	Garage garage.Garage
	// Gatherer is served on the metrics path.
	Gatherer prometheus.Gatherer
	// MeterProvider receives the request metrics.
	MeterProvider metric.MeterProvider
}

// NewServer wires up and returns a configured *http.Server. It mounts:
//   - the GraphQL endpoint (GraphQLPath)
//   - the v1 REST API, its embedded OpenAPI document and a Swagger UI
//   - the Prometheus metrics endpoint (MetricsPath)
//   - pprof endpoints for profiling
//
// The mux is wrapped with CORS, request metrics and access logging, and every
// request except pprof is bounded by RequestTimeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	if deps.Garage == nil {
		return nil, errors.New("garage is required")
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	mux := http.NewServeMux()

	// prometheus metrics
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))

	// graphql
	schema, err := graph.NewSchema(deps.Garage, graph.Options{MaxDepth: opts.GraphQLMaxDepth})
	if err != nil {
		return nil, fmt.Errorf("could not create graphql schema: %w", err)
	}
	mux.Handle(opts.GraphQLPath, &relay.Handler{Schema: schema})

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle(v1Prefix+"/docs/", v5emb.New(
		"Car Lot",
		"/specs/v1.yaml",
		v1Prefix+"/docs/",
	))
	// v1 api
	mux.Handle(v1Prefix+"/", v1handler.New(v1handler.Deps{Garage: deps.Garage}).Routes(v1Prefix))

	// pprof profiles sample for longer than RequestTimeout, so they bypass it
	root := http.NewServeMux()
	root.Handle(pprofPrefix, controller.PprofMux(pprofPrefix))
	root.Handle("/", controller.WithTimeout(mux, opts.RequestTimeout))

	// cors
	handler := controller.WithCORS(root)

	// metrics
	if deps.MeterProvider != nil {
		withMetrics, err := controller.WithMetrics(deps.MeterProvider)
		if err != nil {
			return nil, fmt.Errorf("could not create metrics middleware: %w", err)
		}
		handler = withMetrics(handler)
	}

	// logger
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
