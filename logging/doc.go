// Package logging provides structured logging using Go's standard library log/slog.
// It outputs logs in JSON format and supplies the logger to Uber's Fx container,
// where the config modules use it for their debug records.
package logging
