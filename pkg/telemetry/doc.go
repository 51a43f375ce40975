// Package telemetry provides structured logging and metrics for chandrakit.
//
// Logging wraps zerolog with component child loggers, context attachment,
// and field helpers for the identifiers that recur across the analysis
// pipeline (run id, source label, observation id). Metrics are Prometheus
// counters over configuration operations: documents read and written,
// validation failures by kind, renders produced by tool stage.
package telemetry
