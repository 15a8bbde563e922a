// Package metrics exposes Prometheus metrics describing the applicant
// registry. Metrics receives registry change events like any other event
// handler and serves the collected values over HTTP.
package metrics
