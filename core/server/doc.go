// Package server holds the HTTP server configuration.
//
// The start command reads Config to choose the listening port, the request body
// limit for uploads and the API key enforced by the auth middleware.
package server
