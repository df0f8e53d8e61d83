// Package http implements the HTTP transport layer of the note keeper.
//
// It exposes route wiring, form handlers and middleware. Cross-cutting
// concerns such as session identification, request tracing, access logging,
// panic recovery and response compression are handled in this package before
// requests are delegated to the service layer. Handlers produce
// presentation-neutral [models.View] values; a [Renderer] turns them into the
// response body.
package http
