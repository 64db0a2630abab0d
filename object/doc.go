// Package object defines the collaborator capabilities the runtime core
// consumes from the surrounding object model.
//
// The core never knows concrete object types. A sequence iterator needs an
// Indexable subject (and optionally a Sized one); a callable iterator needs a
// Callable and a sentinel compared with Equal. List is a small, concurrency
// safe Indexable used by tests and by embedders that have no object model yet.
package object
