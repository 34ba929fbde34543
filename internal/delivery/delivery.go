// Package delivery defines the contract every transport entry point
// implements, so the application can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport (an HTTP server, a worker loop)
// started by the application and stopped through its lifecycle hooks.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
