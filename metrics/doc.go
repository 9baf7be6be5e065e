// Package metrics wraps a channel's occupancy and wait state as Prometheus
// gauges, using the same promauto registration style the rest of the
// dependency stack uses for its own instrumentation. It never reaches into
// ring or wakeup's internals; every gauge here reads through the same
// exported snapshot methods (Readable, Writable, Waiting) an application
// could call itself.
package metrics
