// Package mocks provides mock implementations of the store and service
// interfaces for testing. Each mock exposes per-method Fn fields so test
// cases can override exactly the behavior they exercise, with struct-level
// defaults used when no override is set.
package mocks
