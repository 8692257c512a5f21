// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and is expected to spawn its goroutine internally;
// Stop signals it to finish and blocks until it has.
type Worker interface {
	Run()
	Stop()
}
