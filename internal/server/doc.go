// Package server wires and runs the application's HTTP server.
//
// It provides lifecycle orchestration: startup, stop-signal handling, and
// graceful shutdown of in-flight requests.
package server
