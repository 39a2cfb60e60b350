package server

import "context"

// Server defines the lifecycle contract of the process entry point.
//
// [RunServer] blocks until ctx is cancelled, a stop signal arrives or a
// component fails. [Shutdown] stops serving and releases resources.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server. Requests still in flight when
	// ctx expires are dropped.
	Shutdown(ctx context.Context) error
}
