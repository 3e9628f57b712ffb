// Package server runs the HTTP transport of the safe service: startup,
// signal handling, and graceful shutdown bounded by the configured
// shutdown timeout.
package server
