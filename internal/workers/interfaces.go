// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker. Implementations spawn their goroutines internally
// and return immediately. Stop blocks until the worker has drained its
// pending work and exited; calling Stop more than once is allowed.
//
// Example implementation:
//
//	type MyWorker struct{ done chan struct{} }
//
//	func (w *MyWorker) Run()  { go w.loop() }
//	func (w *MyWorker) Stop() { close(w.done) }
type Worker interface {
	Run()
	Stop()
}
