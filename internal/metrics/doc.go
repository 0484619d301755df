// Package metrics exposes compression attempts and results as Prometheus
// metrics on a private registry. A CLI run has no scrape endpoint, so the
// registry is flushed to a node_exporter textfile instead.
package metrics
