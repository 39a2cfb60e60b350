// Package server wires and runs the VIP Motors HTTP server.
//
// It owns the process lifecycle: the HTTP listener and the background
// workers start together, and a stop signal or a failure of either shuts
// both down within the configured shutdown timeout.
package server
