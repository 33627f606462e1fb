// Package workers runs a list of named units of work in order and reports
// every failure. The demo client uses it to walk through the endpoints.
package workers

import "context"

// Worker is a single named unit of work.
//
// Example implementation:
//
//	type ping struct{}
//
//	func (ping) Name() string                  { return "ping" }
//	func (ping) Run(ctx context.Context) error { return nil }
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}
