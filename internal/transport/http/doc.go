// Package http contains the HTTP handlers for the observation
// analysis API. Handlers are thin: they decode and validate the
// request, delegate to the services layer, and render the response
// with go-chi/render. Errors are reported as RFC 7807 problem
// documents through the shared error handler.
package http
