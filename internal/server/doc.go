// Package server runs the HTTP server of the note keeper, including startup,
// signal handling and graceful shutdown.
package server
