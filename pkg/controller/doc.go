// Package controller contains the HTTP middlewares and helper handlers shared
// by every endpoint of the server.
//
// Middlewares:
//   - WithCORS: permissive CORS headers and OPTIONS preflight handling, so the
//     GraphQL endpoint can be queried from browser playgrounds.
//   - WithLogger: request ID propagation and structured access logs.
//   - WithMetrics: request counters and latency histograms through OpenTelemetry.
//
// Helpers:
//   - PprofMux: net/http/pprof handlers mounted under a prefix.
package controller
