// Package server runs the resolver HTTP server and shuts it down gracefully
// on SIGINT, SIGTERM or SIGQUIT.
package server
