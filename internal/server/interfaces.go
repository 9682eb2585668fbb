package server

// Server defines the lifecycle contract of the application server.
//
// [RunServer] blocks until a termination signal arrives or the listener
// fails. [Shutdown] stops accepting requests and waits for in-flight ones
// within the configured shutdown timeout.
type Server interface {
	RunServer()
	Shutdown()
}
