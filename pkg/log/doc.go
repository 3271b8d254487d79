// Package log implements the structured logger shared by all hdelivery
// components. Loggers carry typed fields, bridge through log/slog, and
// write through pluggable formatters and outputs.
package log
