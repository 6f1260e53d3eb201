// Package http serves variant resolution over REST.
//
// Clients post a declaration and get back the resolved variants, or read
// the variants resolved from the declaration file the server was started
// with. Request tracing, access logging and gzip handling are applied as
// middleware before a request reaches the variant service.
package http
