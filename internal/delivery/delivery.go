// Package delivery defines the contract every transport entry point
// (HTTP server, future workers) must satisfy.
package delivery

import "context"

// Delivery is a long-running entry point of the application.
type Delivery interface {
	// Serve blocks until the delivery stops or the context is cancelled.
	Serve(ctx context.Context) error
}
