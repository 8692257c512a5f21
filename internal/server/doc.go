// Package server owns the transport lifecycle: it starts the HTTP server
// and shuts it down gracefully on SIGINT, SIGTERM, or SIGQUIT.
package server
