// Package server wires and runs the application's HTTP transport.
//
// It provides orchestration for the server lifecycle, including startup,
// signal handling, and graceful shutdown: registered shutdown hooks (such as
// stopping the background sync job) run before the listener drains.
package server
