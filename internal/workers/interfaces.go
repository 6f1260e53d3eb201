// Package workers runs background jobs next to the HTTP server, such as
// periodically re-resolving the configured declaration file.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
