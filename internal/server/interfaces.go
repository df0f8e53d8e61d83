package server

// Server defines the lifecycle of the transport server.
//
// [RunServer] blocks until a stop signal arrives and the server has shut
// down, or until the listener fails, in which case the error is returned.
// [Shutdown] may also be called directly.
type Server interface {
	RunServer() error
	Shutdown()
}
